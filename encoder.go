package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder implements an encoder for tree-serialized Huffman codes.
type Encoder struct {
	tree  WorkingTree
	codes CodeTable
}

// Init initializes this Encoder from the frequency (i.e. number of
// occurrences) of each byte value.  Byte values with a frequency of 0 get no
// codeword and cannot be encoded.
//
// Init returns ErrEmptyInput if every frequency is 0.
//
func (e *Encoder) Init(freq FrequencyTable) error {
	tree, err := BuildTree(freq)
	if err != nil {
		return err
	}
	*e = Encoder{
		tree:  tree,
		codes: NewCodeTable(tree),
	}
	return nil
}

// Encode packs data into a Payload.  Every byte of data must have been
// counted by the FrequencyTable passed to Init.
func (e *Encoder) Encode(data []byte) Payload {
	return Pack(data, &e.codes)
}

// Tree returns the decode tree matching this Encoder's codewords.
func (e *Encoder) Tree() Tree {
	return Compact(e.tree)
}

// Codes returns this Encoder's code table.
func (e *Encoder) Codes() *CodeTable {
	return &e.codes
}

// MinSize is the bit length of the shortest codeword.
func (e *Encoder) MinSize() int {
	return e.codes.MinSize()
}

// MaxSize is the bit length of the longest codeword.
func (e *Encoder) MaxSize() int {
	return e.codes.MaxSize()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tNumNodes() = %d\n", len(e.tree.Nodes))
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.codes.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.codes.MaxSize())
	for value := 0; value < MaxSymbols; value++ {
		if e.codes.Size(byte(value)) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %q\n", value, e.codes.Bits(byte(value)).String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode compresses data.  It returns ErrEmptyInput if data is empty.
func Encode(data []byte) (Encoded, error) {
	var e Encoder
	if err := e.Init(CountFrequencies(data)); err != nil {
		return Encoded{}, err
	}
	p := e.Encode(data)
	return Encoded{
		Tree: e.Tree(),
		Pad:  p.Pad,
		Data: p.Bytes(),
	}, nil
}
