// Package binary implements steganographic concealment and revelation for
// opaque binary streams.
//
// A Carrier copies a cover stream into a package stream while merging
// payload bits into the positions a pattern marks as significant. A Package
// reads those same positions back out. Within each byte, significant
// positions are consumed in ascending bit-position order: the least
// significant set bit of the mask is the earliest slot. Payload bytes are
// flattened into bits most-significant-bit first.
//
// The payload length can either be agreed out-of-band or embedded in the
// leading masked-bit capacity of the stream as a fixed-width header, so that
// revelation needs no side channel. See LenHeaderBits.
package binary

import (
	"math/bits"

	"github.com/asbs/asbs/bitstream"
)

// Merge returns b with the set positions of mask overwritten by the given
// bits, in ascending bit-position order. If fewer bits than set positions
// are supplied, only the earliest slots are overwritten; all positions
// outside the mask, and unfilled slots, keep their original value.
func Merge(b, mask byte, payload []bitstream.Bit) byte {
	out := b
	for _, bit := range payload {
		if mask == 0 {
			break
		}
		pos := uint(bits.TrailingZeros8(mask))
		mask &= mask - 1

		if bit {
			out |= 1 << pos
		} else {
			out &^= 1 << pos
		}
	}
	return out
}

// Extract returns the bits of b at the set positions of mask, in the same
// ascending order Merge fills them. Extract is the inverse of Merge with
// respect to the bits it touches.
func Extract(b, mask byte) []bitstream.Bit {
	out := make([]bitstream.Bit, 0, bits.OnesCount8(mask))
	for m := mask; m != 0; m &= m - 1 {
		pos := uint(bits.TrailingZeros8(m))
		out = append(out, bitstream.Bit(b>>pos&1 == 1))
	}
	return out
}
