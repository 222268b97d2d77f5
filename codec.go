package huffman

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is the serializable form of a WorkingNode: the frequency is only
// needed while building the tree, so it is dropped.
type Node struct {
	Value byte      `json:"value"`
	Left  NodeIndex `json:"left"`
	Right NodeIndex `json:"right"`
}

// IsLeaf returns true iff the node has no children.
func (node Node) IsLeaf() bool {
	return node.Left == NoChild && node.Right == NoChild
}

// Tree is a decode tree in compact form.  The root is the last node.
type Tree []Node

// nodeRecordSize is the size of one serialized node: value u8, left i16,
// right i16.
const nodeRecordSize = 5

// treeHeaderSize is the size of the serialized node count.
const treeHeaderSize = 2

// Compact converts a WorkingTree to a Tree, keeping node order and child
// indices.
func Compact(t WorkingTree) Tree {
	assert.Assertf(len(t.Nodes) != 0, "empty WorkingTree")
	assert.Assertf(int(t.Root) == len(t.Nodes)-1, "root %d is not the last of %d nodes", t.Root, len(t.Nodes))

	out := make(Tree, len(t.Nodes))
	for index, node := range t.Nodes {
		out[index] = Node{Value: node.Value, Left: node.Left, Right: node.Right}
	}
	return out
}

// Root returns the index of the root node.
func (t Tree) Root() NodeIndex {
	return NodeIndex(len(t) - 1)
}

// NumLeaves returns the number of leaf nodes.
func (t Tree) NumLeaves() int {
	var k int
	for _, node := range t {
		if node.IsLeaf() {
			k++
		}
	}
	return k
}

// Validate checks that t is a well-formed decode tree.  The returned error,
// if any, is a *TreeError.
//
// A well-formed tree has between 1 and MaxNodes nodes.  Every node has either
// zero or two children, and children come before their parent in the array.
// Every node except the root is the child of exactly one other node.  Internal
// nodes have Value 0, and no byte value appears at more than one leaf.
//
func (t Tree) Validate() error {
	n := len(t)
	if n == 0 {
		return treeErrorf(-1, "no nodes")
	}
	if n > MaxNodes {
		return treeErrorf(-1, "%d nodes exceeds the maximum of %d", n, MaxNodes)
	}

	var refs [MaxNodes]byte
	var seen [MaxSymbols]bool
	for index, node := range t {
		leftAbsent := (node.Left == NoChild)
		rightAbsent := (node.Right == NoChild)
		if leftAbsent && rightAbsent {
			if seen[node.Value] {
				return treeErrorf(index, "duplicate leaf for byte value %d", node.Value)
			}
			seen[node.Value] = true
			continue
		}
		if leftAbsent != rightAbsent {
			return treeErrorf(index, "exactly one child present")
		}
		if node.Value != 0 {
			return treeErrorf(index, "internal node carries value %d", node.Value)
		}
		for _, child := range [2]NodeIndex{node.Left, node.Right} {
			if child < 0 || int(child) >= index {
				return treeErrorf(index, "child index %d out of range [0, %d)", child, index)
			}
			refs[child]++
			if refs[child] > 1 {
				return treeErrorf(int(child), "referenced by more than one parent")
			}
		}
	}

	for index := 0; index < n-1; index++ {
		if refs[index] == 0 {
			return treeErrorf(index, "not reachable from the root")
		}
	}
	return nil
}

// AppendBinary appends the serialized tree to dst: a little-endian uint16
// node count followed by one record per node, each made of the value byte
// and the little-endian int16 left and right child indices.
func (t Tree) AppendBinary(dst []byte) ([]byte, error) {
	if len(t) > MaxNodes {
		return dst, treeErrorf(-1, "%d nodes exceeds the maximum of %d", len(t), MaxNodes)
	}
	dst = binary.LittleEndian.AppendUint16(dst, uint16(len(t)))
	for _, node := range t {
		dst = append(dst, node.Value)
		dst = binary.LittleEndian.AppendUint16(dst, uint16(node.Left))
		dst = binary.LittleEndian.AppendUint16(dst, uint16(node.Right))
	}
	return dst, nil
}

// MarshalBinary returns the serialized tree.  See AppendBinary.
func (t Tree) MarshalBinary() ([]byte, error) {
	return t.AppendBinary(make([]byte, 0, t.BinarySize()))
}

// BinarySize returns the length of the serialized tree.
func (t Tree) BinarySize() int {
	return treeHeaderSize + nodeRecordSize*len(t)
}

// UnmarshalBinary parses a serialized tree, which must occupy all of raw.
func (t *Tree) UnmarshalBinary(raw []byte) error {
	tree, rest, err := ParseTree(raw)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return treeErrorf(-1, "%d trailing bytes after %d nodes", len(rest), len(tree))
	}
	*t = tree
	return nil
}

// ParseTree parses and validates a serialized tree at the start of raw and
// returns the remaining bytes.
func ParseTree(raw []byte) (Tree, []byte, error) {
	if len(raw) < treeHeaderSize {
		return nil, raw, treeErrorf(-1, "need %d bytes for the node count, got %d", treeHeaderSize, len(raw))
	}
	n := int(binary.LittleEndian.Uint16(raw))
	raw = raw[treeHeaderSize:]
	if need := n * nodeRecordSize; len(raw) < need {
		return nil, raw, treeErrorf(-1, "need %d bytes for %d nodes, got %d", need, n, len(raw))
	}

	tree := make(Tree, n)
	for index := range tree {
		tree[index] = Node{
			Value: raw[0],
			Left:  NodeIndex(int16(binary.LittleEndian.Uint16(raw[1:]))),
			Right: NodeIndex(int16(binary.LittleEndian.Uint16(raw[3:]))),
		}
		raw = raw[nodeRecordSize:]
	}
	if err := tree.Validate(); err != nil {
		return nil, raw, err
	}
	return tree, raw, nil
}

// UnmarshalJSON parses a JSON array of nodes and validates the result.
func (t *Tree) UnmarshalJSON(raw []byte) error {
	var nodes []Node
	if err := json.Unmarshal(raw, &nodes); err != nil {
		return err
	}
	tree := Tree(nodes)
	if err := tree.Validate(); err != nil {
		return err
	}
	*t = tree
	return nil
}

// String returns a short description of the tree.
func (t Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d leaves, %d nodes)", t.NumLeaves(), len(t))
}

// GoString returns a Go expression that evaluates to this tree.
func (t Tree) GoString() string {
	var buf bytes.Buffer
	buf.WriteString("huffman.Tree{")
	for index, node := range t {
		if index > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "{0x%02x,%d,%d}", node.Value, node.Left, node.Right)
	}
	buf.WriteByte('}')
	return buf.String()
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	for index, node := range t {
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
func (t Tree) DebugString() string {
	var buf bytes.Buffer
	_, _ = t.Dump(&buf)
	return buf.String()
}

var (
	_ fmt.Stringer               = Tree(nil)
	_ fmt.GoStringer             = Tree(nil)
	_ encoding.BinaryMarshaler   = Tree(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
	_ json.Unmarshaler           = (*Tree)(nil)
)
