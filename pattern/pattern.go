// Package pattern defines the bit pattern abstraction that acts as the
// steganographic key, along with a set of ready-made patterns.
//
// A bit pattern maps a byte index of the cover stream to a mask whose set
// bits mark the significant positions of the byte at that index: positions
// available to carry one hidden bit each. An index with no mask, or a mask of
// zero, means the byte is copied through untouched and carries nothing.
//
// Patterns must be pure: calling Mask repeatedly or out of order with the
// same index must yield the same result, since both sides of the exchange
// replay the exact same mask sequence.
package pattern

import (
	"math/bits"
)

// Pattern selects which bits of each cover byte are significant.
type Pattern interface {
	// Mask returns the significance mask for the byte at index. ok reports
	// whether the pattern defines a mask there at all; a false ok is
	// equivalent to a zero mask.
	Mask(index uint64) (mask byte, ok bool)
}

// Func adapts a plain function to the Pattern interface.
type Func func(index uint64) (byte, bool)

func (f Func) Mask(index uint64) (byte, bool) { return f(index) }

type constant byte

func (c constant) Mask(uint64) (byte, bool) { return byte(c), true }

// Constant returns a pattern that yields the same mask for every index.
func Constant(mask byte) Pattern { return constant(mask) }

type cycle []byte

func (c cycle) Mask(index uint64) (byte, bool) {
	if len(c) == 0 {
		return 0, false
	}
	return c[index%uint64(len(c))], true
}

// Cycle returns a pattern that cycles through the given masks by index.
// With no masks it skips every byte.
func Cycle(masks ...byte) Pattern { return cycle(masks) }

// LSB returns a pattern selecting the n least significant bits of every
// byte, the classic least-significant-bit scheme. Values of n above 8 are
// capped at 8.
func LSB(n uint) Pattern {
	if n > 8 {
		n = 8
	}
	return constant(byte(1<<n) - 1)
}

// Capacity returns the number of payload bits the first coverLen bytes of a
// cover stream can carry under p. Callers can use it to check that a cover
// fits a message (plus any embedded length header) before concealing.
func Capacity(p Pattern, coverLen uint64) uint64 {
	var total uint64
	for i := uint64(0); i < coverLen; i++ {
		if mask, ok := p.Mask(i); ok {
			total += uint64(bits.OnesCount8(mask))
		}
	}
	return total
}
