package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when asked to encode zero bytes.  There is
	// no symbol to build a tree from.
	ErrEmptyInput = errors.New("empty input: no symbols to encode")

	// ErrMalformedTree is matched (via errors.Is) by every *TreeError.
	ErrMalformedTree = errors.New("malformed Huffman tree")

	// ErrTruncatedPayload means the payload ended in the middle of a
	// codeword.
	ErrTruncatedPayload = errors.New("truncated payload")

	// ErrInvalidPayload means the payload or its framing cannot be
	// decomposed into codewords of the tree.
	ErrInvalidPayload = errors.New("invalid payload")
)

// TreeError describes why a Tree failed validation.
type TreeError struct {
	// Index is the offending node, or -1 if the problem concerns the tree
	// as a whole.
	Index  int
	Reason string
}

func (err *TreeError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformedTree, err.Reason)
	}
	return fmt.Sprintf("%v: node %d: %s", ErrMalformedTree, err.Index, err.Reason)
}

func (err *TreeError) Unwrap() error {
	return ErrMalformedTree
}

func treeErrorf(index int, format string, args ...interface{}) error {
	return &TreeError{Index: index, Reason: fmt.Sprintf(format, args...)}
}

// PayloadError describes where decoding of a payload stopped.
type PayloadError struct {
	// Err is ErrTruncatedPayload or ErrInvalidPayload.
	Err error

	// Offset is the bit offset, not counting pad bits, of the codeword
	// that could not be decoded.
	Offset int

	// Unconsumed is the number of trailing bits that did not complete a
	// codeword.
	Unconsumed int
}

func (err *PayloadError) Error() string {
	if err.Err == ErrTruncatedPayload {
		return fmt.Sprintf("%v: %d bits unconsumed at bit offset %d", err.Err, err.Unconsumed, err.Offset)
	}
	return fmt.Sprintf("%v: no codeword at bit offset %d", err.Err, err.Offset)
}

func (err *PayloadError) Unwrap() error {
	return err.Err
}

var (
	_ error = (*TreeError)(nil)
	_ error = (*PayloadError)(nil)
)
