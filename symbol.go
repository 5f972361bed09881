package huffman

import (
	"strconv"
	"unicode/utf8"
)

// Symbol represents one character of a message.  Negative symbols are not
// valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(utf8.MaxRune)

// InvalidSymbol marks internal tree nodes, which carry no symbol of their
// own.  It is also returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol can appear in a message.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= MaxSymbol
}

// String returns the quoted character, or "<invalid>".
func (sym Symbol) String() string {
	if !sym.IsValid() {
		return "<invalid>"
	}
	return strconv.QuoteRune(rune(sym))
}
