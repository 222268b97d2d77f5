// Package huffman implements a lossless byte compressor based on Huffman
// codes, where the decode tree itself is shipped alongside the data.
//
// Encoding counts the bytes of the input, builds a Huffman tree with the
// two-queue method, derives a codeword for every byte value by walking the
// tree, and packs the codewords most significant bit first.  Zero bits are
// prepended so that the payload fills a whole number of bytes.  The result is
// an Encoded: the tree (without frequencies), the pad count and the payload.
//
// Decoding walks the tree one bit at a time and emits a byte at every leaf.
//
// An input made of a single distinct byte value produces a tree of one leaf;
// by convention every occurrence of that byte is encoded as the bit 0.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding#Compression>
//
//     J. van Leeuwen, "On the construction of Huffman trees", ICALP 1976
//
package huffman
