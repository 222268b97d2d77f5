package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestCodeTable(t *testing.T, input string) CodeTable {
	t.Helper()
	tree, err := BuildTree(CountFrequencies([]byte(input)))
	require.NoError(t, err)
	return NewCodeTable(tree)
}

func TestNewCodeTable(t *testing.T) {
	table := makeTestCodeTable(t, "sesamstrasse")

	expect := map[byte]string{
		's': "0",
		't': "100",
		'a': "101",
		'e': "110",
		'm': "1110",
		'r': "1111",
	}
	assert.Equal(t, len(expect), table.Len())
	assert.Equal(t, 1, table.MinSize())
	assert.Equal(t, 4, table.MaxSize())
	for value, code := range expect {
		assert.Equal(t, code, table.Bits(value).String(), "codeword for %q", value)
		assert.Equal(t, len(code), table.Size(value), "size for %q", value)
	}

	_, found := table.Code('x')
	assert.False(t, found)
	assert.Equal(t, 0, table.Size('x'))
}

func TestNewCodeTable_SharedStore(t *testing.T) {
	table := makeTestCodeTable(t, "sesamstrasse")

	// Codewords are stored back to back in leaf visiting order.
	var next uint32
	for _, value := range []byte{'s', 't', 'a', 'e', 'm', 'r'} {
		hc, found := table.Code(value)
		require.True(t, found)
		assert.Equal(t, next, hc.Start, "start for %q", value)
		next = hc.End
	}
	assert.Equal(t, int(next), table.store.Len())
}

func TestNewCodeTable_SingleSymbol(t *testing.T) {
	table := makeTestCodeTable(t, "aaaa")

	assert.Equal(t, 1, table.Len())
	assert.Equal(t, "0", table.Bits('a').String())
	assert.Equal(t, 1, table.MinSize())
	assert.Equal(t, 1, table.MaxSize())
}

func TestNewCodeTable_TwoSymbols(t *testing.T) {
	table := makeTestCodeTable(t, "abab")

	assert.Equal(t, "0", table.Bits('a').String())
	assert.Equal(t, "1", table.Bits('b').String())
}

func TestNewCodeTable_PrefixFree(t *testing.T) {
	inputs := []string{
		"sesamstrasse",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("a", 1) + strings.Repeat("b", 2) + strings.Repeat("c", 4) + strings.Repeat("d", 8) + strings.Repeat("e", 16),
	}
	for _, input := range inputs {
		table := makeTestCodeTable(t, input)
		requirePrefixFree(t, &table)
	}
}

func TestNewCodeTable_DeepTree(t *testing.T) {
	// Fibonacci frequencies give the most lopsided tree possible.
	var freq FrequencyTable
	a, b := uint64(1), uint64(1)
	for i := 0; i < 40; i++ {
		freq[i] = a
		a, b = b, a+b
	}
	tree, err := BuildTree(freq)
	require.NoError(t, err)
	table := NewCodeTable(tree)

	assert.Equal(t, 40, table.Len())
	assert.Equal(t, 1, table.MinSize())
	assert.Equal(t, 39, table.MaxSize())
	requirePrefixFree(t, &table)
}

func requirePrefixFree(t *testing.T, table *CodeTable) {
	t.Helper()
	codes := make(map[byte]string)
	for value := 0; value < MaxSymbols; value++ {
		if table.Size(byte(value)) != 0 {
			codes[byte(value)] = table.Bits(byte(value)).String()
		}
	}
	for a, codeA := range codes {
		require.NotEmpty(t, codeA)
		for b, codeB := range codes {
			if a == b {
				continue
			}
			require.False(t, strings.HasPrefix(codeB, codeA), "codeword %s of %d is a prefix of %s of %d", codeA, a, codeB, b)
		}
	}
}
