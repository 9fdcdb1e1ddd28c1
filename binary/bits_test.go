package binary_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asbs/asbs/binary"
	"github.com/asbs/asbs/bitstream"
)

func TestMergeExtractInverse(t *testing.T) {
	req := require.New(t)

	for mask := 0; mask < 256; mask++ {
		for _, b := range []byte{0x00, 0xFF, 0xA5, 0x5A, 0x42} {
			n := bits.OnesCount8(byte(mask))
			payload := make([]bitstream.Bit, n)
			for i := range payload {
				payload[i] = i%2 == 0
			}

			merged := binary.Merge(b, byte(mask), payload)
			req.Equal(payload, binary.Extract(merged, byte(mask))[:n],
				"mask %#02x byte %#02x", mask, b)
		}
	}
}

func TestMergeNonInterference(t *testing.T) {
	req := require.New(t)

	for mask := 0; mask < 256; mask++ {
		for _, b := range []byte{0x00, 0xFF, 0xA5, 0x5A} {
			n := bits.OnesCount8(byte(mask))
			payload := make([]bitstream.Bit, n)
			for i := range payload {
				payload[i] = i%3 != 0
			}

			merged := binary.Merge(b, byte(mask), payload)
			req.Equal(b&^byte(mask), merged&^byte(mask),
				"bits outside mask %#02x of byte %#02x must not change", mask, b)
		}
	}
}

func TestMergeOrder(t *testing.T) {
	req := require.New(t)

	// The least significant set bit of the mask is the earliest slot.
	merged := binary.Merge(0x00, 0b1001_0010, []bitstream.Bit{bitstream.One, bitstream.Zero, bitstream.One})
	req.Equal(byte(0b1000_0010), merged)

	req.Equal(
		[]bitstream.Bit{bitstream.One, bitstream.Zero, bitstream.One},
		binary.Extract(0b1000_0010, 0b1001_0010),
	)
}

func TestMergeShortPayload(t *testing.T) {
	req := require.New(t)

	// Only the earliest slots are filled; unfilled slots keep cover bits.
	req.Equal(byte(0x01), binary.Merge(0x00, 0b1011, []bitstream.Bit{bitstream.One}))
	req.Equal(byte(0xFE), binary.Merge(0xFF, 0b1011, []bitstream.Bit{bitstream.Zero}))
	req.Equal(byte(0xA5), binary.Merge(0xA5, 0xFF, nil))
}

func TestExtractEmptyMask(t *testing.T) {
	require.Empty(t, binary.Extract(0xFF, 0x00))
}
