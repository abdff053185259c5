package tablegen

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/realh/logi/huffman"
)

var (
	ErrUnknownFormat = errors.New("tablegen: unknown output format")
	ErrBadSuffix     = errors.New("tablegen: variant suffix must be a single letter or digit")
	ErrTableCount    = errors.New("tablegen: expected one slot per root key")
)

// Generator renders flattened tables as source text.
type Generator struct {
	log  logger.Logger
	opts Options
}

func NewGenerator(log logger.Logger, opts ...Option) *Generator {
	return &Generator{log: log, opts: NewOptions(opts...)}
}

// Generate renders flat, indexed by root key as returned by
// huffman.Tables.Flatten, in the requested format. suffix distinguishes the
// dispatch array of each table variant, eg '1' for freesat.t1.
func (g *Generator) Generate(format Format, suffix byte, flat [][]huffman.Entry) ([]byte, error) {
	if len(flat) != huffman.MaxRootKeys {
		return nil, fmt.Errorf("%w: got %d", ErrTableCount, len(flat))
	}
	if !isAlnum(suffix) {
		return nil, fmt.Errorf("%w: %q", ErrBadSuffix, suffix)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatCPP:
		renderCPP(&buf, g.opts, suffix, flat)
	case FormatGo:
		renderGo(&buf, g.opts, suffix, flat)
	case FormatCBOR:
		err = renderCBOR(&buf, suffix, flat)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	g.log.Debugf("rendered %d tables as %s, %d bytes", countTables(flat), format, buf.Len())
	return buf.Bytes(), nil
}

func countTables(flat [][]huffman.Entry) int {
	n := 0
	for _, entries := range flat {
		if entries != nil {
			n++
		}
	}
	return n
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
