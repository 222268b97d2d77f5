package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Code locates a codeword inside the shared bit store of a CodeTable, as the
// half-open bit range [Start, End).
type Code struct {
	Start uint32
	End   uint32
}

// Size returns the number of bits in the codeword.  A Size of 0 means that the
// byte value has no codeword.
func (hc Code) Size() int {
	return int(hc.End - hc.Start)
}

// CodeTable maps each byte value of a tree to its codeword.  All codewords
// live back to back in one bit store; the table itself only holds ranges.
type CodeTable struct {
	codes   [MaxSymbols]Code
	store   Bits
	count   int
	minSize int
	maxSize int
}

// NewCodeTable derives the codeword of every leaf of t.
//
// Going left appends a 0 bit and going right appends a 1 bit.  The tree is
// walked depth-first with an explicit stack and a single scratch buffer that
// holds the path from the root to the current node.  Every stack entry
// remembers the scratch length on entry (its mark), and the scratch is cut
// back to the mark before the right subtree is entered and again when the
// entry is popped.  When a leaf is reached, the path is copied into the
// table's store.
//
// If the root is itself a leaf, its codeword is the single bit 0.
//
func NewCodeTable(t WorkingTree) CodeTable {
	assert.Assertf(len(t.Nodes) != 0, "empty WorkingTree")
	assert.Assertf(int(t.Root) == len(t.Nodes)-1, "root %d is not the last of %d nodes", t.Root, len(t.Nodes))

	var table CodeTable
	var scratch Bits

	record := func(value byte) {
		assert.Assertf(table.codes[value].Size() == 0, "byte value %d appears at two leaves", value)
		start := uint32(table.store.Len())
		table.store.AppendRange(scratch, 0, scratch.Len())
		table.codes[value] = Code{Start: start, End: uint32(table.store.Len())}

		size := scratch.Len()
		if table.count == 0 || table.minSize > size {
			table.minSize = size
		}
		if table.count == 0 || table.maxSize < size {
			table.maxSize = size
		}
		table.count++
	}

	root := t.Nodes[t.Root]
	if root.IsLeaf() {
		scratch.Append(0)
		record(root.Value)
		return table
	}

	// x tracks progress through a node:
	//   x=0 → just arrived
	//   x=1 → left subtree done
	//   x=2 → both subtrees done
	type stackItem struct {
		index NodeIndex
		mark  int
		x     byte
	}

	stack := make([]stackItem, 0, len(t.Nodes))
	stack = append(stack, stackItem{index: t.Root, mark: scratch.Len()})

	visit := func(child NodeIndex) {
		node := t.Nodes[child]
		if node.IsLeaf() {
			record(node.Value)
			return
		}
		stack = append(stack, stackItem{index: child, mark: scratch.Len()})
	}

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		node := t.Nodes[top.index]
		x := top.x
		top.x++
		switch x {
		case 0:
			scratch.Append(0)
			visit(node.Left)
		case 1:
			scratch.Truncate(top.mark)
			scratch.Append(1)
			visit(node.Right)
		case 2:
			scratch.Truncate(top.mark)
			stack = stack[:len(stack)-1]
		}
	}

	assert.Assertf(scratch.Len() == 0, "scratch buffer holds %d bits after the walk", scratch.Len())
	return table
}

// Code returns the codeword location for the given byte value, and whether
// the value has a codeword at all.
func (table *CodeTable) Code(value byte) (Code, bool) {
	hc := table.codes[value]
	return hc, hc.Size() != 0
}

// Size returns the codeword length for the given byte value, or 0.
func (table *CodeTable) Size(value byte) int {
	return table.codes[value].Size()
}

// Bits returns a copy of the codeword for the given byte value.
func (table *CodeTable) Bits(value byte) Bits {
	hc := table.codes[value]
	var out Bits
	out.AppendRange(table.store, int(hc.Start), int(hc.End))
	return out
}

// AppendCode appends the codeword for the given byte value to dst.  The value
// must have a codeword.
func (table *CodeTable) AppendCode(dst *Bits, value byte) {
	assert.Assertf(table.codes[value].Size() != 0, "byte value %d has no codeword", value)
	table.appendCode(dst, value)
}

func (table *CodeTable) appendCode(dst *Bits, value byte) {
	hc := table.codes[value]
	for i := hc.Start; i < hc.End; i++ {
		dst.Append(table.store.At(int(i)))
	}
}

// Len returns the number of byte values with a codeword.
func (table *CodeTable) Len() int {
	return table.count
}

// MinSize is the bit length of the shortest codeword.
func (table *CodeTable) MinSize() int {
	return table.minSize
}

// MaxSize is the bit length of the longest codeword.
func (table *CodeTable) MaxSize() int {
	return table.maxSize
}
