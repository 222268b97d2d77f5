package huffman

import (
	"encoding"
	"fmt"
	"io"
)

// Encoded is the compressed form of a byte sequence.
//
// The container layout written by MarshalBinary and WriteTo is:
//
//     node count   uint16, little-endian
//     nodes        count × {value uint8, left int16, right int16}, little-endian
//     pad count    uint8
//     payload      all remaining bytes
//
type Encoded struct {
	// Tree is the decode tree.
	Tree Tree

	// Pad is the number of zero bits at the start of Data that precede
	// the first codeword.  Always in the range [0, 7].
	Pad uint8

	// Data holds the packed codewords, most significant bit first.
	Data []byte
}

// Codewords returns the bits of Data that follow the pad bits.
func (enc Encoded) Codewords() (Bits, error) {
	if enc.Pad > 7 {
		return Bits{}, fmt.Errorf("%w: pad count %d exceeds 7", ErrInvalidPayload, enc.Pad)
	}
	total := 8 * len(enc.Data)
	if int(enc.Pad) > total {
		return Bits{}, fmt.Errorf("%w: pad count %d with only %d payload bits", ErrInvalidPayload, enc.Pad, total)
	}
	return MakeBits(enc.Data, total).Skip(int(enc.Pad)), nil
}

// BinarySize returns the length of the container.
func (enc Encoded) BinarySize() int {
	return enc.Tree.BinarySize() + 1 + len(enc.Data)
}

// AppendBinary appends the container to dst.
func (enc Encoded) AppendBinary(dst []byte) ([]byte, error) {
	dst, err := enc.Tree.AppendBinary(dst)
	if err != nil {
		return dst, err
	}
	dst = append(dst, enc.Pad)
	dst = append(dst, enc.Data...)
	return dst, nil
}

// MarshalBinary returns the container.
func (enc Encoded) MarshalBinary() ([]byte, error) {
	return enc.AppendBinary(make([]byte, 0, enc.BinarySize()))
}

// UnmarshalBinary parses a container.  The tree is validated, and the pad
// count is checked against the payload length.
func (enc *Encoded) UnmarshalBinary(raw []byte) error {
	tree, rest, err := ParseTree(raw)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: missing pad count", ErrInvalidPayload)
	}

	out := Encoded{
		Tree: tree,
		Pad:  rest[0],
		Data: make([]byte, len(rest)-1),
	}
	copy(out.Data, rest[1:])
	if _, err := out.Codewords(); err != nil {
		return err
	}
	*enc = out
	return nil
}

// WriteTo writes the container to w.
func (enc Encoded) WriteTo(w io.Writer) (int64, error) {
	raw, err := enc.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(raw)
	return int64(n), err
}

// ReadFrom reads a container from r, up to EOF.
func (enc *Encoded) ReadFrom(r io.Reader) (int64, error) {
	raw, err := io.ReadAll(r)
	n := int64(len(raw))
	if err != nil {
		return n, err
	}
	return n, enc.UnmarshalBinary(raw)
}

var (
	_ encoding.BinaryMarshaler   = Encoded{}
	_ encoding.BinaryUnmarshaler = (*Encoded)(nil)
	_ io.WriterTo                = Encoded{}
	_ io.ReaderFrom              = (*Encoded)(nil)
)
