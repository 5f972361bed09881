package huffman

import (
	"fmt"
	"strconv"
)

// maxBitsPerCode is the longest codeword a Code can hold.  A tree this deep
// requires a message with more symbols than fit in memory.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant of the Size low bits of Bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code %q is too long: got %d bits, max %d", str, len(str), maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(0)
		case '1':
			hc = hc.Append(1)
		default:
			return Code{}, fmt.Errorf("code %q: invalid character %q at index %d", str, str[i], i)
		}
	}
	return hc, nil
}

// Append returns the Code extended by one more bit.  Any non-zero bit is
// treated as 1.
func (hc Code) Append(bit uint) Code {
	hc.Bits <<= 1
	if bit != 0 {
		hc.Bits |= 1
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of the sequence, counting from 0.
func (hc Code) Bit(i byte) uint {
	return uint(hc.Bits>>(hc.Size-1-i)) & 1
}

// Prefix returns the first n bits of this Code.
func (hc Code) Prefix(n byte) Code {
	if n >= hc.Size {
		return hc
	}
	return MakeCode(n, hc.Bits>>(hc.Size-n))
}

// HasPrefix returns true iff other is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(other Code) bool {
	return other.Size <= hc.Size && hc.Prefix(other.Size) == other
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
