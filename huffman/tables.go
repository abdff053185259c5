package huffman

import (
	"bufio"
	"io"
	"sort"
)

// Tables holds one trie per root key.
type Tables struct {
	tries map[RootKey]*Trie
}

func NewTables() *Tables {
	return &Tables{tries: make(map[RootKey]*Trie)}
}

// Add inserts rec, creating the trie for its root key on first use.
func (ts *Tables) Add(rec Record) error {
	t, ok := ts.tries[rec.Root]
	if !ok {
		t = NewTrie(rec.Root)
		ts.tries[rec.Root] = t
	}
	return t.Insert(rec.Code, rec.Value)
}

// Trie returns the trie for key, or nil.
func (ts *Tables) Trie(key RootKey) *Trie { return ts.tries[key] }

// Keys returns the populated root keys in ascending order.
func (ts *Tables) Keys() []RootKey {
	keys := make([]RootKey, 0, len(ts.tries))
	for k := range ts.tries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Flatten flattens every trie. The result is indexed by root key and has
// MaxRootKeys entries; keys without a trie are nil.
func (ts *Tables) Flatten() [][]Entry {
	flat := make([][]Entry, MaxRootKeys)
	for k, t := range ts.tries {
		flat[k] = t.Flatten()
	}
	return flat
}

// Verify traces every inserted code through the flattened tables.
func (ts *Tables) Verify(flat [][]Entry) error {
	for _, k := range ts.Keys() {
		if err := ts.tries[k].Verify(flat[k]); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a complete code table. Any malformed line fails the whole load.
func Load(r io.Reader) (*Tables, error) {
	ts := NewTables()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		rec, ok, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
		if !ok {
			continue
		}
		if err := ts.Add(rec); err != nil {
			return nil, &LineError{Line: lineNo, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ts, nil
}
