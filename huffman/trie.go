package huffman

import (
	"fmt"
)

// rootPrefix keys the root node: no bits consumed yet.
const rootPrefix = ""

// Node is a trie node. Left and Right hold 0, a child node index, or a
// tagged symbol.
type Node struct {
	Index int
	Left  uint8
	Right uint8
}

func (n *Node) slot(digit byte) uint8 {
	if digit == '0' {
		return n.Left
	}
	return n.Right
}

// Trie is the decode tree for a single root key. Nodes are keyed by the
// code prefix leading to them.
type Trie struct {
	Key   RootKey
	nodes map[string]*Node
	next  int

	// codes records every inserted code in insertion order, for tracing.
	codes []Record
	seen  map[string]struct{}
}

func NewTrie(key RootKey) *Trie {
	return &Trie{
		Key:   key,
		nodes: make(map[string]*Node),
		next:  1,
		seen:  make(map[string]struct{}),
	}
}

// Len returns the number of nodes created so far.
func (t *Trie) Len() int { return len(t.nodes) }

// NextIndex returns the index the next internal node will be assigned.
func (t *Trie) NextIndex() int { return t.next }

// Codes returns the inserted codes in insertion order.
func (t *Trie) Codes() []Record { return t.codes }

// Node returns the node reached by prefix, "" being the root.
func (t *Trie) Node(prefix string) (Node, bool) {
	n, ok := t.nodes[prefix]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Insert adds code, decoding to value, to the trie.
//
// A code identical to one already inserted fails with ErrDuplicatePath. A
// code that is a prefix of an existing code, or has one as its prefix, fails
// with ErrPathConflict. The trie is unchanged when Insert fails.
func (t *Trie) Insert(code string, value Symbol) error {
	if err := checkCode(code); err != nil {
		return err
	}
	if _, ok := t.seen[code]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, code)
	}
	created, err := t.check(code)
	if err != nil {
		return err
	}
	if last := t.next + created - 1; last >= LiteralTag {
		return fmt.Errorf("%w: node index %d", ErrTableTooLarge, last)
	}

	t.next = t.insert(t.next, code, value.Tagged())
	t.seen[code] = struct{}{}
	t.codes = append(t.codes, Record{Root: t.Key, Code: code, Value: value})
	return nil
}

// check walks code from the root and returns the number of internal nodes
// inserting it would create.
func (t *Trie) check(code string) (int, error) {
	created := 0
	for k := 1; k <= len(code); k++ {
		node, ok := t.nodes[code[:k-1]]
		if !ok {
			if k > 1 {
				created++
			}
			continue
		}
		v := node.slot(code[k-1])
		if k == len(code) && v != 0 {
			// Something already hangs below this code.
			return 0, fmt.Errorf("%w: %s", ErrPathConflict, code)
		}
		if v&LiteralTag != 0 {
			// A shorter code already ends here.
			return 0, fmt.Errorf("%w: %s is prefixed by %s", ErrPathConflict, code, code[:k])
		}
	}
	return created, nil
}

// insert places ooc, an offset or tagged char, in the slot selected by the
// last bit of code. index is the next free node index; the updated value is
// returned.
func (t *Trie) insert(index int, code string, ooc uint8) int {
	digit := code[len(code)-1]
	prefix := code[:len(code)-1]

	nodeIndex := 0
	if prefix != rootPrefix {
		nodeIndex = index
	}

	node, ok := t.nodes[prefix]
	if !ok {
		node = &Node{Index: nodeIndex}
		t.nodes[prefix] = node
		if nodeIndex != 0 {
			index++
		}
		if prefix != rootPrefix {
			// Link the new node into its parent, creating ancestors as needed.
			index = t.insert(index, prefix, uint8(nodeIndex))
		}
	}

	if digit == '0' {
		node.Left = ooc
	} else {
		node.Right = ooc
	}
	return index
}
