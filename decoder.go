package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder implements a decoder for tree-serialized Huffman codes.
type Decoder struct {
	tree    Tree
	minSize int
}

// Init initializes this Decoder with a decode tree.  The tree is validated
// up front (see Tree.Validate), so that Decode never has to deal with a
// malformed tree.
func (d *Decoder) Init(tree Tree) error {
	if err := tree.Validate(); err != nil {
		return err
	}
	dup := make(Tree, len(tree))
	copy(dup, tree)
	*d = Decoder{tree: dup, minSize: minLeafDepth(dup)}
	return nil
}

// Decode walks the tree once per bit, going left on 0 and right on 1, and
// emits a byte each time it reaches a leaf.  bits must not include any pad
// bits.
//
// If the bits run out in the middle of a codeword, Decode returns a
// *PayloadError wrapping ErrTruncatedPayload.  If a bit leads nowhere (only
// possible with a single-leaf tree, whose one codeword is 0), it returns a
// *PayloadError wrapping ErrInvalidPayload.  No partial output is returned
// alongside an error.
//
// The bit stream carries no symbol count, so a stream cut exactly on a
// codeword boundary cannot be told apart from a shorter input: it decodes
// without error to the symbols before the cut.
//
func (d *Decoder) Decode(bits Bits) ([]byte, error) {
	tree := d.tree
	if len(tree) == 0 {
		return nil, treeErrorf(-1, "no nodes")
	}

	n := bits.Len()
	root := tree.Root()
	out := make([]byte, 0, n/max(d.minSize, 1))

	if tree[root].IsLeaf() {
		value := tree[root].Value
		for i := 0; i < n; i++ {
			if bits.At(i) != 0 {
				return nil, &PayloadError{Err: ErrInvalidPayload, Offset: i}
			}
			out = append(out, value)
		}
		return out, nil
	}

	current := root
	boundary := 0
	for i := 0; i < n; i++ {
		node := tree[current]
		if bits.At(i) == 0 {
			current = node.Left
		} else {
			current = node.Right
		}
		if current == NoChild {
			return nil, &PayloadError{Err: ErrInvalidPayload, Offset: boundary}
		}
		if tree[current].IsLeaf() {
			out = append(out, tree[current].Value)
			current = root
			boundary = i + 1
		}
	}

	if current != root {
		return nil, &PayloadError{
			Err:        ErrTruncatedPayload,
			Offset:     boundary,
			Unconsumed: n - boundary,
		}
	}
	return out, nil
}

// minLeafDepth returns the depth of the shallowest leaf, which is also the
// length of the shortest codeword (except for a single-leaf tree).
func minLeafDepth(tree Tree) int {
	depth := make([]int, len(tree))
	best := 0
	for index := len(tree) - 1; index >= 0; index-- {
		node := tree[index]
		if node.IsLeaf() {
			if best == 0 || depth[index] < best {
				best = depth[index]
			}
			continue
		}
		depth[node.Left] = depth[index] + 1
		depth[node.Right] = depth[index] + 1
	}
	return best
}

// Tree returns the decode tree.
func (d *Decoder) Tree() Tree {
	return d.tree
}

// String returns a short description of the Decoder.
func (d *Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, %d nodes)", d.tree.NumLeaves(), len(d.tree))
}

// GoString returns a Go expression that rebuilds this Decoder.
func (d *Decoder) GoString() string {
	return "NewDecoder(" + d.tree.GoString() + ")"
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinDepth() = %d\n", d.minSize)
	for index, node := range d.tree {
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "\t[%d] = leaf %d\n", index, node.Value)
		} else {
			fmt.Fprintf(&buf, "\t[%d] = node(%d, %d)\n", index, node.Left, node.Right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d *Decoder) DebugString() string {
	var buf bytes.Buffer
	_, _ = d.Dump(&buf)
	return buf.String()
}

// NewDecoder returns a Decoder for tree, or the validation error.
func NewDecoder(tree Tree) (*Decoder, error) {
	d := new(Decoder)
	if err := d.Init(tree); err != nil {
		return nil, err
	}
	return d, nil
}

// DecodeBits decodes a pad-free bit sequence with the given tree.  As with
// Decoder.Decode, truncation is only detected when the cut falls inside a
// codeword.
func DecodeBits(tree Tree, bits Bits) ([]byte, error) {
	var d Decoder
	if err := d.Init(tree); err != nil {
		return nil, err
	}
	return d.Decode(bits)
}

// Decode decompresses enc.  A payload truncated on a codeword boundary
// decodes to a prefix of the original input without error; see
// Decoder.Decode.
func Decode(enc Encoded) ([]byte, error) {
	bits, err := enc.Codewords()
	if err != nil {
		return nil, err
	}
	return DecodeBits(enc.Tree, bits)
}

var (
	_ fmt.Stringer   = (*Decoder)(nil)
	_ fmt.GoStringer = (*Decoder)(nil)
)
