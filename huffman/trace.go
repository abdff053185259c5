package huffman

import "fmt"

// Trace follows code through a flattened table from entry 0, MSB first, and
// returns the slot value it ends on.
func Trace(entries []Entry, code string) (uint8, error) {
	if err := checkCode(code); err != nil {
		return 0, err
	}
	offset := 0
	for i := 0; i < len(code); i++ {
		if offset >= len(entries) {
			return 0, fmt.Errorf("%w: %s: offset %d outside table of %d", ErrVerifyFailed, code, offset, len(entries))
		}
		var v uint8
		if code[i] == '0' {
			v = entries[offset].Left
		} else {
			v = entries[offset].Right
		}
		if i == len(code)-1 {
			return v, nil
		}
		if v&LiteralTag != 0 || v == 0 {
			return 0, fmt.Errorf("%w: %s: ends early at bit %d", ErrVerifyFailed, code, i)
		}
		offset = int(v)
	}
	return 0, nil
}

// Verify checks every code inserted into t decodes to its symbol in the
// flattened table.
func (t *Trie) Verify(entries []Entry) error {
	for _, rec := range t.codes {
		v, err := Trace(entries, rec.Code)
		if err != nil {
			return fmt.Errorf("table %02x: %w", t.Key, err)
		}
		if v != rec.Value.Tagged() {
			return fmt.Errorf("%w: table %02x: %s gave 0x%02x, want 0x%02x",
				ErrVerifyFailed, t.Key, rec.Code, v, rec.Value.Tagged())
		}
	}
	return nil
}
