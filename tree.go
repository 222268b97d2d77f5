package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// WorkingNode is one node of a tree under construction.
type WorkingNode struct {
	// Value is the byte this leaf stands for.  Always 0 for internal nodes.
	Value byte

	// Freq is the number of occurrences of Value (leaf) or the sum of the
	// children's frequencies (internal node).
	Freq uint64

	Left  NodeIndex
	Right NodeIndex
}

// IsLeaf returns true iff the node has no children.
func (node WorkingNode) IsLeaf() bool {
	return node.Left == NoChild && node.Right == NoChild
}

// WorkingTree is a Huffman tree as built by BuildTree.  Nodes refer to each
// other by index; children always precede their parent, and Root is the last
// node.
type WorkingTree struct {
	Nodes []WorkingNode
	Root  NodeIndex
}

// NumLeaves returns the number of distinct byte values in the tree.
func (t WorkingTree) NumLeaves() int {
	return (len(t.Nodes) + 1) / 2
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// The leaves are created in FrequencyTable.Symbols order.  Internal nodes are
// produced by the two-queue method: one queue holds the sorted leaves, the
// other holds merged nodes in creation order.  Both queues stay sorted by
// frequency, so the two smallest nodes are always found at the queue fronts.
// When the fronts have equal frequency the leaf queue wins, and the first node
// taken becomes the left child.
//
// A single distinct byte value yields a tree consisting of one leaf.  A table
// with no symbols at all yields ErrEmptyInput.
//
func BuildTree(freq FrequencyTable) (WorkingTree, error) {
	leaves := freq.Symbols()
	k := len(leaves)
	if k == 0 {
		return WorkingTree{}, ErrEmptyInput
	}

	nodes := make([]WorkingNode, 0, 2*k-1)
	queueSorted := make([]NodeIndex, 0, k)
	queueMerged := make([]NodeIndex, 0, k-1)

	for _, item := range leaves {
		queueSorted = append(queueSorted, NodeIndex(len(nodes)))
		nodes = append(nodes, WorkingNode{
			Value: item.Symbol,
			Freq:  item.Count,
			Left:  NoChild,
			Right: NoChild,
		})
	}

	takeLess := func() NodeIndex {
		var index NodeIndex
		switch {
		case len(queueMerged) == 0:
			index, queueSorted = queueSorted[0], queueSorted[1:]
		case len(queueSorted) == 0:
			index, queueMerged = queueMerged[0], queueMerged[1:]
		case nodes[queueSorted[0]].Freq <= nodes[queueMerged[0]].Freq:
			index, queueSorted = queueSorted[0], queueSorted[1:]
		default:
			index, queueMerged = queueMerged[0], queueMerged[1:]
		}
		return index
	}

	for len(queueSorted)+len(queueMerged) > 1 {
		a := takeLess()
		b := takeLess()
		queueMerged = append(queueMerged, NodeIndex(len(nodes)))
		nodes = append(nodes, WorkingNode{
			Freq:  saturatingAdd(nodes[a].Freq, nodes[b].Freq),
			Left:  a,
			Right: b,
		})
	}

	assert.Assertf(len(nodes) == 2*k-1, "built %d nodes for %d symbols", len(nodes), k)
	return WorkingTree{Nodes: nodes, Root: NodeIndex(len(nodes) - 1)}, nil
}
