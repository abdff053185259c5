package tablegen

import (
	"bytes"
	"fmt"

	"github.com/realh/logi/huffman"
)

const entriesPerLine = 4

// renderCPP writes the layout logi's decoder has always been built from.
func renderCPP(buf *bytes.Buffer, opts Options, suffix byte, flat [][]huffman.Entry) {
	fmt.Fprintf(buf, "/* This file was auto-generated for logi by huff2c */\n\n")
	fmt.Fprintf(buf, "#include \"%s\"\n\n", opts.Include)
	fmt.Fprintf(buf, "namespace %s\n{\n\n", opts.Namespace)

	for key, entries := range flat {
		if entries == nil {
			continue
		}
		fmt.Fprintf(buf, "static HuffmanNode table%02x[] = {", key)
		for i, e := range entries {
			if i%entriesPerLine == 0 {
				buf.WriteString("\n   ")
			}
			fmt.Fprintf(buf, " {0x%02x, 0x%02x}", e.Left, e.Right)
			if i < len(entries)-1 {
				buf.WriteByte(',')
			}
		}
		buf.WriteString("\n};\n\n")
	}

	fmt.Fprintf(buf, "HuffmanNode *%s%c[] = {", opts.tableName(defaultCPPTableName), suffix)
	for key, entries := range flat {
		if key%entriesPerLine == 0 {
			buf.WriteString("\n   ")
		}
		if entries != nil {
			fmt.Fprintf(buf, "table%02x", key)
		} else {
			buf.WriteString("NULL   ")
		}
		if key < len(flat)-1 {
			buf.WriteString(", ")
		}
	}
	buf.WriteString("\n};\n\n}\n")
}
