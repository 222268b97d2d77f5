package huffman

import (
	"math"
)

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}

func padCount(numBits int) uint8 {
	return uint8((8 - numBits&7) & 7)
}
