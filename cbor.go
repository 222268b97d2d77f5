package huffman

import (
	"github.com/fxamacker/cbor/v2"
)

// cborEncoded is the CBOR shape of an Encoded: a three element array holding
// the serialized tree, the pad count and the payload.
type cborEncoded struct {
	_    struct{} `cbor:",toarray"`
	Tree []byte
	Pad  uint8
	Data []byte
}

// MarshalCBOR encodes enc as a CBOR array [tree, pad, payload], where tree
// is the output of Tree.MarshalBinary.
func (enc Encoded) MarshalCBOR() ([]byte, error) {
	tree, err := enc.Tree.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(cborEncoded{Tree: tree, Pad: enc.Pad, Data: enc.Data})
}

// UnmarshalCBOR is the inverse of MarshalCBOR.
func (enc *Encoded) UnmarshalCBOR(raw []byte) error {
	var v cborEncoded
	if err := cbor.Unmarshal(raw, &v); err != nil {
		return err
	}

	var tree Tree
	if err := tree.UnmarshalBinary(v.Tree); err != nil {
		return err
	}
	out := Encoded{Tree: tree, Pad: v.Pad, Data: v.Data}
	if _, err := out.Codewords(); err != nil {
		return err
	}
	*enc = out
	return nil
}

var (
	_ cbor.Marshaler   = Encoded{}
	_ cbor.Unmarshaler = (*Encoded)(nil)
)
