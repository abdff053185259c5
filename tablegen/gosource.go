package tablegen

import (
	"bytes"
	"fmt"

	"github.com/realh/logi/huffman"
)

func renderGo(buf *bytes.Buffer, opts Options, suffix byte, flat [][]huffman.Entry) {
	name := fmt.Sprintf("%s%c", opts.tableName(defaultGoTableName), suffix)

	buf.WriteString("// Code generated by huff2c. DO NOT EDIT.\n\n")
	fmt.Fprintf(buf, "package %s\n\n", opts.GoPackage)

	for key, entries := range flat {
		if entries == nil {
			continue
		}
		fmt.Fprintf(buf, "var %sKey%02x = []%s{", name, key, opts.GoNodeType)
		for i, e := range entries {
			if i%entriesPerLine == 0 {
				buf.WriteString("\n\t")
			} else {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "{0x%02x, 0x%02x},", e.Left, e.Right)
		}
		buf.WriteString("\n}\n\n")
	}

	fmt.Fprintf(buf, "var %s = [%d][]%s{\n", name, huffman.MaxRootKeys, opts.GoNodeType)
	for key, entries := range flat {
		if entries == nil {
			continue
		}
		fmt.Fprintf(buf, "\t0x%02x: %sKey%02x,\n", key, name, key)
	}
	buf.WriteString("}\n")
}
