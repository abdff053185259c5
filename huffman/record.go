package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	tokStart  = "START"
	tokStop   = "STOP"
	tokEscape = "ESCAPE"
	hexPrefix = "0x"
)

// Record is one parsed code table line.
type Record struct {
	Root  RootKey
	Code  string
	Value Symbol
}

// ParseLine parses a single code table line. ok is false for blank and
// comment lines.
func ParseLine(line string) (rec Record, ok bool, err error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return Record{}, false, nil
	}

	fields := strings.Split(line, ":")
	// The published tables terminate each record with a colon.
	if len(fields) == 4 && fields[3] == "" {
		fields = fields[:3]
	}
	if len(fields) != 3 {
		return Record{}, false, fmt.Errorf("%w: got %d in %q", ErrFieldCount, len(fields), line)
	}

	if rec.Root, err = ParseRootKey(fields[0]); err != nil {
		return Record{}, false, err
	}
	if err = checkCode(fields[1]); err != nil {
		return Record{}, false, err
	}
	rec.Code = fields[1]
	if rec.Value, err = ParseValue(fields[2]); err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

// ParseRootKey resolves the first field of a table line.
func ParseRootKey(field string) (RootKey, error) {
	if field == tokStart {
		return StartToken, nil
	}
	return ParseValue(field)
}

// ParseValue resolves the decoded symbol field of a table line. START is not
// a valid decoded symbol.
func ParseValue(field string) (Symbol, error) {
	switch {
	case field == tokStop:
		return StopToken, nil
	case field == tokEscape:
		return EscapeToken, nil
	case strings.HasPrefix(field, hexPrefix) && len(field) > len(hexPrefix):
		v, err := strconv.ParseUint(field[len(hexPrefix):], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadSymbol, field)
		}
		if v >= MaxRootKeys {
			return 0, fmt.Errorf("%w: %q", ErrSymbolRange, field)
		}
		return Symbol(v), nil
	case len(field) == 1:
		if field[0] >= MaxRootKeys {
			return 0, fmt.Errorf("%w: %q", ErrSymbolRange, field)
		}
		return Symbol(field[0]), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadSymbol, field)
}

func checkCode(code string) error {
	if code == "" {
		return fmt.Errorf("%w: empty", ErrBadPath)
	}
	for i := 0; i < len(code); i++ {
		if code[i] != '0' && code[i] != '1' {
			return fmt.Errorf("%w: %q", ErrBadPath, code)
		}
	}
	return nil
}
