package huffpack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits.  Bit 0 is the first edge taken from
// the root of the code tree: 0 for left, 1 for right.
//
// Codes have no fixed maximum length.  The zero Code is the empty sequence.
type Code struct {
	// words holds the bits, least significant bit of words[0] first.  Bits
	// at positions >= size are unspecified.
	words []uint64
	size  int
}

// MakeCode is a convenience function that constructs a Code of at most 64
// bits.  The least significant bit of bits is the first bit.
func MakeCode(size int, bits uint64) Code {
	assert.Assertf(size >= 0 && size <= wordBits, "size %d out of range [0, %d]", size, wordBits)
	if size == 0 {
		return Code{}
	}
	return Code{words: []uint64{bits & lowMask(size)}, size: size}
}

// ParseCode constructs a Code from a string of '0' and '1' characters, first
// bit first.
func ParseCode(str string) (Code, error) {
	var hc Code
	for index, ch := range str {
		switch ch {
		case '0':
			hc.push(false)
		case '1':
			hc.push(true)
		default:
			return Code{}, fmt.Errorf("invalid character %q at index %d in code %q", ch, index, str)
		}
	}
	return hc, nil
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return hc.size
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < hc.size, "bit index %d out of range [0, %d)", i, hc.size)
	return (hc.words[i/wordBits]>>uint(i%wordBits))&1 != 0
}

// NumWords returns the number of 64-bit words needed to hold this Code.
func (hc Code) NumWords() int {
	return wordsFor(hc.size)
}

// Word returns the i'th 64-bit chunk of this Code along with the number of
// valid bits in it.  Only the final chunk may hold fewer than 64 bits.
func (hc Code) Word(i int) (bits uint64, size int) {
	size = hc.size - i*wordBits
	if size > wordBits {
		size = wordBits
	}
	assert.Assertf(size > 0, "word index %d out of range for code of %d bits", i, hc.size)
	return hc.words[i] & lowMask(size), size
}

// Clone returns a copy of this Code that shares no storage with it.
func (hc Code) Clone() Code {
	if hc.size == 0 {
		return Code{}
	}
	n := hc.NumWords()
	words := make([]uint64, n)
	copy(words, hc.words[:n])
	words[n-1] &= lowMask(hc.size - (n-1)*wordBits)
	return Code{words: words, size: hc.size}
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code is
// a prefix of itself, and the empty Code is a prefix of every Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.size > hc.size {
		return false
	}
	for i, n := 0, prefix.NumWords(); i < n; i++ {
		a, size := prefix.Word(i)
		b := hc.words[i] & lowMask(size)
		if a != b {
			return false
		}
	}
	return true
}

// Equal reports whether both Codes hold the same bit sequence.
func (hc Code) Equal(other Code) bool {
	return hc.size == other.size && hc.HasPrefix(other)
}

// String returns the string representation of this Code, first bit first.
func (hc Code) String() string {
	return strconv.Quote(hc.Bits())
}

// Bits returns the bits of this Code as a string of '0' and '1' characters,
// first bit first.
func (hc Code) Bits() string {
	var sb strings.Builder
	sb.Grow(hc.size)
	for i := 0; i < hc.size; i++ {
		if hc.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

var _ fmt.Stringer = Code{}

// push appends one bit in place.  The backing array is reused, so callers
// must Clone before handing the Code out.
func (hc *Code) push(bit bool) {
	index := hc.size / wordBits
	if index == len(hc.words) {
		hc.words = append(hc.words, 0)
	}
	mask := uint64(1) << uint(hc.size%wordBits)
	if bit {
		hc.words[index] |= mask
	} else {
		hc.words[index] &^= mask
	}
	hc.size++
}

// truncate shortens the Code to size bits in place.
func (hc *Code) truncate(size int) {
	assert.Assertf(size >= 0 && size <= hc.size, "truncate to %d bits, have %d", size, hc.size)
	hc.size = size
}
