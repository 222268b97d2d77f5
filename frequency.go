package huffman

import (
	"sort"
)

// FrequencyTable holds the number of occurrences of each byte value.
type FrequencyTable [MaxSymbols]uint64

// CountFrequencies builds the FrequencyTable for data.  An empty data slice
// yields a table of zeroes.
func CountFrequencies(data []byte) FrequencyTable {
	var freq FrequencyTable
	freq.Add(data)
	return freq
}

// Add counts every byte of data into the table.
func (freq *FrequencyTable) Add(data []byte) {
	for _, ch := range data {
		freq[ch]++
	}
}

// Distinct returns the number of byte values with a non-zero count.
func (freq *FrequencyTable) Distinct() int {
	var k int
	for _, count := range freq {
		if count != 0 {
			k++
		}
	}
	return k
}

// Total returns the sum of all counts.
func (freq *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range freq {
		sum = saturatingAdd(sum, count)
	}
	return sum
}

// Symbols lists the byte values with a non-zero count, sorted by ascending
// count.  Equal counts are ordered by ascending byte value.
func (freq *FrequencyTable) Symbols() []SymbolCount {
	list := make(byCount, 0, MaxSymbols)
	for index, count := range freq {
		if count != 0 {
			list = append(list, SymbolCount{Symbol: byte(index), Count: count})
		}
	}
	list.Sort()
	return list
}

// type byCount {{{

type byCount []SymbolCount

func (list byCount) Sort() {
	sort.Sort(list)
}

func (list byCount) Len() int {
	return len(list)
}

func (list byCount) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCount) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.Symbol < b.Symbol
}

var _ sort.Interface = byCount(nil)

// }}}
