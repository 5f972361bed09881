package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CodeEntry pairs a Symbol with its codeword.
type CodeEntry struct {
	Symbol Symbol
	Code   Code
}

// CodeTable maps each Symbol of a message to its Huffman codeword.  A
// CodeTable is immutable once built.
type CodeTable struct {
	entries []CodeEntry
	index   map[Symbol]int
	minSize byte
	maxSize byte
}

// GenerateCodes walks the tree rooted at root and assigns each leaf the
// codeword spelled by its path: 0 for every step to a left child, 1 for
// every step to a right child.  The walk always visits the left child
// first.
//
// A root that is itself a leaf has no path, so its Symbol receives the
// fixed codeword "1".  A nil root yields an empty table.
//
func GenerateCodes(root *Node) CodeTable {
	if root == nil {
		return CodeTable{}
	}

	if root.IsLeaf() {
		return makeCodeTable([]CodeEntry{{root.symbol, MakeCode(1, 1)}})
	}

	type stackItem struct {
		node *Node
		code Code
	}

	entries := make([]CodeEntry, 0)
	stack := []stackItem{{root, Code{}}}
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		node, code := top.node, top.code
		if node.IsLeaf() {
			entries = append(entries, CodeEntry{node.symbol, code})
			continue
		}

		assert.Assertf(node.left != nil && node.right != nil, "internal node with freq %d is missing a child", node.freq)
		assert.Assertf(code.Size < maxBitsPerCode, "tree is deeper than %d levels", maxBitsPerCode)

		// Push right first so that left is popped first.
		stack = append(stack,
			stackItem{node.right, code.Append(1)},
			stackItem{node.left, code.Append(0)})
	}

	return makeCodeTable(entries)
}

func makeCodeTable(entries []CodeEntry) CodeTable {
	sorted := byCodeSymbol(entries)
	sorted.Sort()

	ct := CodeTable{
		entries: entries,
		index:   make(map[Symbol]int, len(entries)),
	}
	for i, entry := range entries {
		_, dupe := ct.index[entry.Symbol]
		assert.Assertf(!dupe, "symbol %s appears in more than one leaf", entry.Symbol)
		ct.index[entry.Symbol] = i

		size := entry.Code.Size
		if i == 0 || ct.minSize > size {
			ct.minSize = size
		}
		if i == 0 || ct.maxSize < size {
			ct.maxSize = size
		}
	}
	return ct
}

// Len returns the number of symbols in the table.
func (ct CodeTable) Len() int {
	return len(ct.entries)
}

// Lookup returns the codeword assigned to symbol.
func (ct CodeTable) Lookup(symbol Symbol) (Code, bool) {
	i, found := ct.index[symbol]
	if !found {
		return Code{}, false
	}
	return ct.entries[i].Code, true
}

// Symbols returns the table's symbols in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.entries))
	for i, entry := range ct.entries {
		out[i] = entry.Symbol
	}
	return out
}

// Entries returns a copy of the table's entries in ascending Symbol order.
func (ct CodeTable) Entries() []CodeEntry {
	out := make([]CodeEntry, len(ct.entries))
	copy(out, ct.entries)
	return out
}

// MinSize is the bit length of the shortest codeword.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest codeword.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// TotalBits returns the sum of the bit lengths of all codewords, each
// counted once regardless of how often its symbol occurs.
func (ct CodeTable) TotalBits() uint64 {
	var sum uint64
	for _, entry := range ct.entries {
		sum += uint64(entry.Code.Size)
	}
	return sum
}

// WeightedBits returns the number of bits needed to encode a message with
// the given frequencies, i.e. the sum of count × codeword length.  Symbols
// missing from the table contribute nothing.
func (ct CodeTable) WeightedBits(ft FrequencyTable) uint64 {
	var sum uint64
	for _, entry := range ft.entries {
		if hc, found := ct.Lookup(entry.Symbol); found {
			sum += entry.Count * uint64(hc.Size)
		}
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, entry := range ct.entries {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", entry.Symbol, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a short human-readable summary.
func (ct CodeTable) String() string {
	return fmt.Sprintf("(Huffman code table with %d symbols, with codeword lengths of %d .. %d bits)", len(ct.entries), ct.minSize, ct.maxSize)
}

// MarshalJSON renders the table as an object mapping each character to its
// codeword, e.g. {"a":"0","b":"10"}.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	m := make(map[string]string, len(ct.entries))
	for _, entry := range ct.entries {
		m[string(rune(entry.Symbol))] = codeBitString(entry.Code)
	}
	return json.Marshal(m)
}

var _ fmt.Stringer = CodeTable{}

func codeBitString(hc Code) string {
	out := make([]byte, hc.Size)
	for i := byte(0); i < hc.Size; i++ {
		out[i] = '0' + byte(hc.Bit(i))
	}
	return string(out)
}

// type byCodeSymbol {{{

type byCodeSymbol []CodeEntry

func (list byCodeSymbol) Sort() {
	sort.Sort(list)
}

func (list byCodeSymbol) Len() int {
	return len(list)
}

func (list byCodeSymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCodeSymbol) Less(i, j int) bool {
	return list[i].Symbol < list[j].Symbol
}

var _ sort.Interface = byCodeSymbol(nil)

// }}}
