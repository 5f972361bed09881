package huffman

import (
	"fmt"
)

// Verify checks that no codeword in the table is a prefix of another, which
// is what allows a bitstream of codewords to be split unambiguously.  A
// violation is reported as an error wrapping ErrNotPrefixFree.
func (ct CodeTable) Verify() error {
	// table holds every codeword, plus every proper prefix of a codeword
	// mapped to InvalidSymbol.
	table := make(map[Code]Symbol, len(ct.entries)*int(ct.maxSize+1))

	for _, entry := range ct.entries {
		hc := entry.Code
		if hc.Size == 0 {
			return fmt.Errorf("%w: symbol %s has an empty codeword", ErrNotPrefixFree, entry.Symbol)
		}

		if other, found := table[hc]; found {
			if other.IsValid() {
				return fmt.Errorf("%w: symbols %s and %s share codeword %s", ErrNotPrefixFree, other, entry.Symbol, hc)
			}
			return fmt.Errorf("%w: codeword %s of symbol %s is a prefix of a longer codeword", ErrNotPrefixFree, hc, entry.Symbol)
		}
		table[hc] = entry.Symbol

		// Walk from "xxx...a" up to "", marking each prefix.  Stop at
		// the first prefix already marked by a sibling codeword.

		for size := hc.Size - 1; ; size-- {
			prefix := hc.Prefix(size)
			other, found := table[prefix]
			if found && other.IsValid() {
				return fmt.Errorf("%w: codeword %s of symbol %s is a prefix of codeword %s of symbol %s", ErrNotPrefixFree, prefix, other, hc, entry.Symbol)
			}
			if found {
				break
			}
			table[prefix] = InvalidSymbol
			if size == 0 {
				break
			}
		}
	}
	return nil
}
