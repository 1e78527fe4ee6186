// Package bitutils handles bit sequences stored most-significant-bit first:
// bit 0 of a sequence is the high-order bit of its first byte. This is the
// layout expected by keccak.Context.Update for inputs whose length is not a
// whole number of bytes.
package bitutils

import (
	"fmt"
	"strings"
)

// ReadBit returns the bit at index `idx` in the byte array `b` (big endian)
// The function panics, if the byte slice is too short.
func ReadBit(b []byte, idx int) int {
	byteValue := int(b[idx>>3])
	idx &= 7
	return (byteValue >> (7 - idx)) & 1
}

// SetBit sets the bit at index `i` in the byte array `b`, i.e. it assigns
// value 1 to the bit. The function panics, if the byte slice is too short.
func SetBit(b []byte, i int) {
	byteIndex := i >> 3
	i &= 7
	mask := byte(1 << (7 - i))
	b[byteIndex] |= mask
}

// MakeBitVector allocates a byte slice of minimal size that can hold numberBits.
func MakeBitVector(numberBits int) []byte {
	return make([]byte, (numberBits+7)>>3)
}

// ParseBitString converts a string of '0' and '1' characters into a bit
// vector and its length in bits. Spaces and underscores are ignored so that
// long sequences can be grouped, e.g. "1011_0110 01".
func ParseBitString(s string) ([]byte, int, error) {
	digits := strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' {
			return -1
		}
		return r
	}, s)

	b := MakeBitVector(len(digits))
	for i, c := range digits {
		switch c {
		case '0':
		case '1':
			SetBit(b, i)
		default:
			return nil, 0, fmt.Errorf("invalid character %q at position %d of bit string", c, i)
		}
	}
	return b, len(digits), nil
}

// BitString formats the first numberBits bits of b as '0' and '1' characters.
// The function panics, if the byte slice is too short.
func BitString(b []byte, numberBits int) string {
	var sb strings.Builder
	sb.Grow(numberBits)
	for i := 0; i < numberBits; i++ {
		if ReadBit(b, i) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
