package huffman

/*

# Huffman table primitives for Freesat text decoding

This package builds the static lookup tables used by logi's Freesat (and
Freeview HD) string decoder from the published `freesat.t1` / `freesat.t2`
code tables.

Each line of a code table names a previous symbol (the root key), a code
written as a string of bits, and the symbol the code decodes to:

	START:00:T:
	T:1010:h:
	h:0x3a:...

There is one binary trie per root key. Decoding starts in the trie for the
START token, and the decoded symbol selects the trie used for the next
symbol. That is why there are at most 128 tries.

## Node layout

A trie is flattened into an array of (left, right) byte pairs. Entry 0 is
always the root. Each slot holds one of:

- 0, an absent branch
- 1..0x7f, the index of the child entry in the same array
- 0x80|symbol, a decoded symbol

Because indices and symbols share a byte, a single trie may not need more
than 127 internal nodes.

## Construction

Codes are inserted last bit first. The node that owns the last bit is keyed
by the code with that bit removed. If the node is new it is given the next
free index and is linked into its parent by recursively inserting the
shorter prefix with the new index as the slot value. Ancestors are therefore
created on demand and parents are back-filled bottom up, so node indices
follow the order in which prefixes are first seen in the table file.

*/
