package huffman

import "sort"

// Entry is one (left, right) pair of a flattened table.
type Entry struct {
	Left  uint8
	Right uint8
}

// Flatten returns the trie's nodes as an array addressed by node index.
func (t *Trie) Flatten() []Entry {
	nodes := make([]*Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Index < nodes[j].Index })

	entries := make([]Entry, 0, len(nodes)+1)
	if len(nodes) == 0 || nodes[0].Index != 0 {
		// Entry 0 is the root even when nothing was ever assigned to it.
		entries = append(entries, Entry{})
	}
	for _, n := range nodes {
		entries = append(entries, Entry{Left: n.Left, Right: n.Right})
	}
	return entries
}
