package tablegen

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"
	"github.com/realh/logi/huffman"
)

// Document is the CBOR form of a table variant. Tables maps root key to
// (left, right) pairs.
type Document struct {
	Suffix string               `cbor:"1,keyasint"`
	Tables map[uint8][][2]uint8 `cbor:"2,keyasint"`
}

func NewDocument(suffix byte, flat [][]huffman.Entry) Document {
	doc := Document{
		Suffix: string(suffix),
		Tables: make(map[uint8][][2]uint8),
	}
	for key, entries := range flat {
		if entries == nil {
			continue
		}
		pairs := make([][2]uint8, len(entries))
		for i, e := range entries {
			pairs[i] = [2]uint8{e.Left, e.Right}
		}
		doc.Tables[uint8(key)] = pairs
	}
	return doc
}

func renderCBOR(buf *bytes.Buffer, suffix byte, flat [][]huffman.Entry) error {
	// Core deterministic encoding sorts the map keys, so output is stable.
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	data, err := em.Marshal(NewDocument(suffix, flat))
	if err != nil {
		return err
	}
	_, err = buf.Write(data)
	return err
}

// DecodeDocument parses a document written in the cbor format.
func DecodeDocument(data []byte) (Document, error) {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := dm.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
