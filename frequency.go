package huffman

import (
	"bytes"
	"fmt"
	"sort"
)

// FrequencyEntry pairs a Symbol with its number of occurrences.
type FrequencyEntry struct {
	Symbol Symbol
	Count  uint64
}

// FrequencyTable holds the number of occurrences of each distinct Symbol in
// a message.  Entries are kept in ascending Symbol order.
type FrequencyTable struct {
	entries []FrequencyEntry
	total   uint64
}

// CountFrequencies scans the message and counts each distinct Symbol.  An
// empty message yields an empty table.  Invalid UTF-8 is counted as
// U+FFFD, one per invalid byte.
func CountFrequencies(message string) FrequencyTable {
	counts := make(map[Symbol]uint64)
	var total uint64
	for _, ch := range message {
		counts[Symbol(ch)]++
		total++
	}

	entries := make(bySymbol, 0, len(counts))
	for symbol, count := range counts {
		entries = append(entries, FrequencyEntry{symbol, count})
	}
	entries.Sort()

	return FrequencyTable{entries: entries, total: total}
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.entries)
}

// Total returns the sum of all counts, i.e. the number of symbols in the
// message.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of symbol, or 0.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	i := sort.Search(len(ft.entries), func(i int) bool {
		return ft.entries[i].Symbol >= symbol
	})
	if i < len(ft.entries) && ft.entries[i].Symbol == symbol {
		return ft.entries[i].Count
	}
	return 0
}

// Entries returns a copy of the table's entries in ascending Symbol order.
func (ft FrequencyTable) Entries() []FrequencyEntry {
	out := make([]FrequencyEntry, len(ft.entries))
	copy(out, ft.entries)
	return out
}

// String returns a compact representation such as {'a':4, 'b':2}.
func (ft FrequencyTable) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range ft.entries {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s:%d", entry.Symbol, entry.Count)
	}
	buf.WriteByte('}')
	return buf.String()
}

var _ fmt.Stringer = FrequencyTable{}

// type bySymbol {{{

type bySymbol []FrequencyEntry

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i].Symbol < list[j].Symbol
}

var _ sort.Interface = bySymbol(nil)

// }}}
