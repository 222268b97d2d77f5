package huffman

import (
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bits is a growable sequence of bits, packed into bytes with the first bit
// of each byte in its most significant position.  The zero value is an empty
// sequence ready for use.
//
// A Bits may be a view that starts part-way into its first byte (see Skip).
// Views share storage with the Bits they were taken from.
//
type Bits struct {
	buf []byte
	off int
	n   int
}

// MakeBits wraps the first n bits of buf.  buf is not copied.
func MakeBits(buf []byte, n int) Bits {
	assert.Assertf(n >= 0 && n <= 8*len(buf), "n %d out of range for %d bytes", n, len(buf))
	return Bits{buf: buf, n: n}
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int {
	return b.n
}

// At returns the i'th bit (0 or 1).  i must be in the range [0, Len()).
func (b Bits) At(i int) byte {
	pos := b.off + i
	return (b.buf[pos>>3] >> (7 - uint(pos&7))) & 1
}

// Skip returns a view of b without its first k bits.
func (b Bits) Skip(k int) Bits {
	assert.Assertf(k >= 0 && k <= b.n, "skip %d out of range [0, %d]", k, b.n)
	return Bits{buf: b.buf, off: b.off + k, n: b.n - k}
}

// Append adds one bit to the end of the sequence.  Any non-zero value is
// treated as 1.
func (b *Bits) Append(bit byte) {
	pos := b.off + b.n
	if pos>>3 == len(b.buf) {
		b.buf = append(b.buf, 0)
	}
	mask := byte(0x80) >> uint(pos&7)
	if bit != 0 {
		b.buf[pos>>3] |= mask
	} else {
		b.buf[pos>>3] &^= mask
	}
	b.n++
}

// AppendRange appends bits [start, end) of src.
func (b *Bits) AppendRange(src Bits, start int, end int) {
	assert.Assertf(start >= 0 && start <= end && end <= src.n, "range [%d, %d) out of range [0, %d]", start, end, src.n)
	for i := start; i < end; i++ {
		b.Append(src.At(i))
	}
}

// Truncate shortens the sequence to its first n bits.  The dropped bits are
// cleared, so that later appends and Bytes see only zero filler.
func (b *Bits) Truncate(n int) {
	assert.Assertf(n >= 0 && n <= b.n, "truncate to %d out of range [0, %d]", n, b.n)
	end := b.off + n
	b.buf = b.buf[:(end+7)>>3]
	if rem := uint(end & 7); rem != 0 {
		b.buf[end>>3] &= ^byte(0xff >> rem)
	}
	b.n = n
}

// Bytes returns the packed bytes backing the sequence, including any bits
// before the start of a view.  The final byte is zero-filled on its low side.
func (b Bits) Bytes() []byte {
	return b.buf[:(b.off+b.n+7)>>3]
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}

// ParseBits is the inverse of Bits.String.  Characters other than '0' and '1'
// are ignored, so "0110 1100" is accepted.
func ParseBits(str string) Bits {
	var b Bits
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			b.Append(0)
		case '1':
			b.Append(1)
		}
	}
	return b
}
