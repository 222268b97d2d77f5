package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Payload is a packed sequence of codewords.
//
// Bits is always a whole number of bytes long.  Its first Pad bits are zero
// filler that precede the first codeword, so the codewords end exactly on
// the last bit of the last byte.
//
type Payload struct {
	Bits Bits
	Pad  uint8
}

// Bytes returns the packed payload, most significant bit first.
func (p Payload) Bytes() []byte {
	return p.Bits.Bytes()
}

// Codewords returns the payload without its pad bits.
func (p Payload) Codewords() Bits {
	return p.Bits.Skip(int(p.Pad))
}

// Pack encodes data as the concatenation of its codewords in table, prefixed
// with enough zero bits to reach a byte boundary.  Every byte of data must
// have a codeword in table.
func Pack(data []byte, table *CodeTable) Payload {
	freq := CountFrequencies(data)
	var total int
	for value, count := range freq {
		if count == 0 {
			continue
		}
		size := table.Size(byte(value))
		assert.Assertf(size != 0, "byte value %d has no codeword", value)
		total += int(count) * size
	}

	pad := padCount(total)
	bits := Bits{buf: make([]byte, 0, (total+int(pad))>>3)}
	for i := uint8(0); i < pad; i++ {
		bits.Append(0)
	}
	for _, ch := range data {
		table.appendCode(&bits, ch)
	}

	assert.Assertf(bits.Len()&7 == 0, "packed %d bits, not a whole number of bytes", bits.Len())
	return Payload{Bits: bits, Pad: pad}
}
