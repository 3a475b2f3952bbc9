package qsim

import (
	"errors"
	"fmt"
	"strings"
)

// MaxBits is the widest pattern a single uint64 word can carry.
const MaxBits = 64

var (
	ErrBitLength = errors.New("bit pattern length must be between 0 and 64")
	ErrBitValue  = errors.New("bit value must be 0 or 1")
)

/*
BitPattern is an immutable fixed-length string of classical bits backed by
a single uint64 word, used as the basis-state key of a quantum state.

Position 0 is the least significant bit. Only the low length bits carry
meaning and the word is always kept masked to that length, so two equal
patterns compare equal with == and the type can key a Go map directly.
Reads at positions at or above the length return 0; writes and flips there
fall outside the masked word and leave the pattern unchanged.
*/
type BitPattern struct {
	bits   uint64
	length int
}

// NewBitPattern builds a pattern from an integer value and a length in
// [0,64]. Bits of the value above the length are masked away.
func NewBitPattern(bits uint64, length int) (BitPattern, error) {
	if length < 0 || length > MaxBits {
		return BitPattern{}, fmt.Errorf("%w: got %d", ErrBitLength, length)
	}
	return BitPattern{bits: bits & lengthMask(length), length: length}, nil
}

// ZeroPattern returns the all-zero pattern of the given length.
func ZeroPattern(length int) (BitPattern, error) {
	return NewBitPattern(0, length)
}

// ParseBitPattern reads a string of '0' and '1' runes, most significant
// bit first, into a pattern whose length is the string length.
func ParseBitPattern(s string) (BitPattern, error) {
	if len(s) > MaxBits {
		return BitPattern{}, fmt.Errorf("%w: got %d", ErrBitLength, len(s))
	}

	var bits uint64
	for i, c := range s {
		bits <<= 1
		switch c {
		case '1':
			bits |= 1
		case '0':
		default:
			return BitPattern{}, fmt.Errorf("invalid bit character %q at position %d", c, i)
		}
	}

	return BitPattern{bits: bits, length: len(s)}, nil
}

func lengthMask(length int) uint64 {
	if length >= MaxBits {
		return ^uint64(0)
	}
	return uint64(1)<<uint(length) - 1
}

// Len returns the number of bits in the pattern.
func (p BitPattern) Len() int {
	return p.length
}

// Uint64 returns the underlying word, masked to the pattern length.
func (p BitPattern) Uint64() uint64 {
	return p.bits
}

// Bit returns the bit at position i. Positions outside [0,Len) read as 0,
// since the word is masked to the length.
func (p BitPattern) Bit(i int) int {
	if i < 0 || i >= p.length {
		return 0
	}
	return int(p.bits >> uint(i) & 1)
}

// WithBit returns a copy with bit i set to value, which must be 0 or 1.
func (p BitPattern) WithBit(i, value int) (BitPattern, error) {
	if value != 0 && value != 1 {
		return p, fmt.Errorf("%w: got %d", ErrBitValue, value)
	}
	if value == 1 {
		return p.SetBit(i), nil
	}
	return p.ClearBit(i), nil
}

// SetBit returns a copy with bit i forced to 1.
func (p BitPattern) SetBit(i int) BitPattern {
	if i < 0 || i >= p.length {
		return p
	}
	return BitPattern{bits: p.bits | 1<<uint(i), length: p.length}
}

// ClearBit returns a copy with bit i forced to 0.
func (p BitPattern) ClearBit(i int) BitPattern {
	if i < 0 || i >= p.length {
		return p
	}
	return BitPattern{bits: p.bits &^ (1 << uint(i)), length: p.length}
}

// Flip returns a copy with bit i toggled.
func (p BitPattern) Flip(i int) BitPattern {
	if i < 0 || i >= p.length {
		return p
	}
	return BitPattern{bits: p.bits ^ 1<<uint(i), length: p.length}
}

// String renders the pattern most significant bit first, exactly Len
// characters, matching the convention ParseBitPattern reads.
func (p BitPattern) String() string {
	var sb strings.Builder
	sb.Grow(p.length)
	for i := p.length - 1; i >= 0; i-- {
		if p.bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
