package huffman

import (
	"errors"
	"fmt"
)

// LiteralTag marks a slot value as a decoded symbol rather than a node index.
const LiteralTag = 0x80

// MaxRootKeys is the number of slots in the dispatch array.
const MaxRootKeys = 128

// Reserved symbol values.
const (
	StartToken  Symbol = 0
	StopToken   Symbol = 0
	EscapeToken Symbol = 1
)

// Symbol is a 7-bit code used both as a root key and as a decoded value.
type Symbol uint8

// RootKey selects the trie a decode step starts in.
type RootKey = Symbol

// Tagged returns the slot value emitting s.
func (s Symbol) Tagged() uint8 { return uint8(s) | LiteralTag }

var (
	ErrBadSymbol     = errors.New("huffman: symbol field is not START, STOP, ESCAPE, 0x<hex> or a single character")
	ErrSymbolRange   = errors.New("huffman: symbol out of range")
	ErrBadPath       = errors.New("huffman: code must be a non empty string of 0 and 1")
	ErrFieldCount    = errors.New("huffman: a table line must have three colon separated fields")
	ErrDuplicatePath = errors.New("huffman: duplicate code")
	ErrPathConflict  = errors.New("huffman: code conflicts with a previously inserted code")
	ErrTableTooLarge = errors.New("huffman: trie has too many nodes to address in a byte")
	ErrVerifyFailed  = errors.New("huffman: code does not decode to its symbol")
)

// LineError reports the table line that could not be loaded.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
