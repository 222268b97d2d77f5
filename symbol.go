package huffman

// NodeIndex is the position of a node within a tree's node array.
type NodeIndex int16

// NoChild marks an absent child.  A node is a leaf iff both of its children
// are NoChild.
const NoChild = NodeIndex(-1)

// MaxSymbols is the size of the alphabet: every byte value is a symbol.
const MaxSymbols = 256

// MaxNodes is the largest number of nodes in a valid tree, i.e. the node
// count of a tree holding every byte value.
const MaxNodes = 2*MaxSymbols - 1

// SymbolCount pairs a byte value with its number of occurrences.
type SymbolCount struct {
	Symbol byte
	Count  uint64
}
