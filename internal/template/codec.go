package template

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// DecodeJSON reads the parser's JSON AST. The root must be a Block.
func DecodeJSON(r io.Reader) (*Block, error) {
	var raw rawNode
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode template json: %w", err)
	}
	return root(&raw)
}

// EncodeJSON writes root in the parser's JSON AST shape.
func EncodeJSON(w io.Writer, root *Block) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(encodeBlock(root))
}

// schemaVersion guards the msgpack layout; bump it when rawNode changes.
const schemaVersion uint16 = 1

type packedTree struct {
	Schema uint16
	Root   *rawNode
}

// EncodeMsgpack writes root in the compact binary form.
func EncodeMsgpack(w io.Writer, root *Block) error {
	enc := msgpack.NewEncoder(w)
	enc.SetOmitEmpty(true)
	return enc.Encode(&packedTree{Schema: schemaVersion, Root: encodeBlock(root)})
}

// DecodeMsgpack reads a tree written by EncodeMsgpack.
func DecodeMsgpack(r io.Reader) (*Block, error) {
	var tree packedTree
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("decode template msgpack: %w", err)
	}
	if tree.Schema != schemaVersion {
		return nil, fmt.Errorf("decode template msgpack: schema %d, want %d", tree.Schema, schemaVersion)
	}
	return root(tree.Root)
}
