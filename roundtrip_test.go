package huffman

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomInput(rng *rand.Rand, size int, alphabet int) []byte {
	out := make([]byte, size)
	for i := range out {
		// Skew the distribution so that code lengths vary.
		a := rng.Intn(alphabet)
		b := rng.Intn(alphabet)
		out[i] = byte(a * b / alphabet)
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))

	for _, alphabet := range []int{1, 2, 3, 17, 100, 256} {
		for _, size := range []int{1, 2, 7, 8, 9, 100, 4096} {
			input := randomInput(rng, size, alphabet)
			t.Run(fmt.Sprintf("alphabet=%d/size=%d", alphabet, size), func(t *testing.T) {
				enc, err := Encode(input)
				require.NoError(t, err)

				freq := CountFrequencies(input)
				assert.Len(t, enc.Tree, 2*freq.Distinct()-1)
				assert.NoError(t, enc.Tree.Validate())

				assert.LessOrEqual(t, enc.Pad, uint8(7))
				bits, err := enc.Codewords()
				require.NoError(t, err)
				assert.Equal(t, 0, (bits.Len()+int(enc.Pad))%8)

				out, err := Decode(enc)
				require.NoError(t, err)
				assert.True(t, bytes.Equal(input, out), "round trip mismatch")
			})
		}
	}
}

func TestRoundTrip_AllByteValues(t *testing.T) {
	input := make([]byte, 0, 3*MaxSymbols)
	for i := 0; i < 3*MaxSymbols; i++ {
		input = append(input, byte(i*7))
	}

	enc, err := Encode(input)
	require.NoError(t, err)
	assert.Len(t, enc.Tree, MaxNodes)

	raw, err := enc.MarshalBinary()
	require.NoError(t, err)

	var back Encoded
	require.NoError(t, back.UnmarshalBinary(raw))
	out, err := Decode(back)
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestEncode_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	input := randomInput(rng, 1000, 40)

	first, err := Encode(input)
	require.NoError(t, err)
	firstRaw, err := first.MarshalBinary()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Encode(input)
		require.NoError(t, err)
		raw, err := again.MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, firstRaw, raw)
	}
}

func TestDecode_TruncatedOneBit(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		input := randomInput(rng, 50+i, 30)
		enc, err := Encode(input)
		require.NoError(t, err)

		var e Encoder
		require.NoError(t, e.Init(CountFrequencies(input)))
		if e.Codes().Size(input[len(input)-1]) < 2 {
			// Dropping a whole one-bit codeword leaves a valid, shorter
			// payload; there is nothing to detect.
			continue
		}

		bits, err := enc.Codewords()
		require.NoError(t, err)
		str := bits.String()
		_, err = DecodeBits(enc.Tree, ParseBits(str[:len(str)-1]))
		assert.ErrorIs(t, err, ErrTruncatedPayload)
	}
}
