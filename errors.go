package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when a Huffman tree is requested for a
	// message with no symbols.
	ErrEmptyInput = errors.New("empty input: no symbols to build a Huffman tree from")

	// ErrNotPrefixFree is returned by CodeTable.Verify when one codeword is
	// a prefix of another.
	ErrNotPrefixFree = errors.New("code table is not prefix-free")

	ErrUnknownMetric    = errors.New("unknown metric")
	ErrInvalidCacheSize = errors.New("invalid cache size")
)
