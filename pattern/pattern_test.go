package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asbs/asbs/pattern"
)

func TestConstant(t *testing.T) {
	req := require.New(t)

	p := pattern.Constant(0xA5)
	for i := uint64(0); i < 100; i++ {
		mask, ok := p.Mask(i)
		req.True(ok)
		req.Equal(byte(0xA5), mask)
	}
}

func TestFunc(t *testing.T) {
	req := require.New(t)

	p := pattern.Func(func(i uint64) (byte, bool) {
		if i%2 == 1 {
			return 0, false
		}
		return 1 << (i % 3), true
	})

	mask, ok := p.Mask(0)
	req.True(ok)
	req.Equal(byte(0x01), mask)

	_, ok = p.Mask(1)
	req.False(ok)

	mask, ok = p.Mask(4)
	req.True(ok)
	req.Equal(byte(0x02), mask)
}

func TestCycle(t *testing.T) {
	req := require.New(t)

	p := pattern.Cycle(0x01, 0x02, 0x04)
	want := []byte{0x01, 0x02, 0x04, 0x01, 0x02, 0x04, 0x01}
	for i, m := range want {
		mask, ok := p.Mask(uint64(i))
		req.True(ok)
		req.Equal(m, mask, "index %d", i)
	}

	_, ok := pattern.Cycle().Mask(0)
	req.False(ok, "an empty cycle must skip every byte")
}

func TestLSB(t *testing.T) {
	req := require.New(t)

	for n, want := range map[uint]byte{0: 0x00, 1: 0x01, 2: 0x03, 3: 0x07, 8: 0xFF, 12: 0xFF} {
		mask, ok := pattern.LSB(n).Mask(42)
		req.True(ok)
		req.Equal(want, mask, "LSB(%d)", n)
	}
}

func TestCapacity(t *testing.T) {
	req := require.New(t)

	req.Equal(uint64(20), pattern.Capacity(pattern.Constant(0x03), 10))
	req.Equal(uint64(2), pattern.Capacity(pattern.Cycle(0x01, 0x00), 4))
	req.Equal(uint64(0), pattern.Capacity(pattern.Constant(0xFF), 0))

	sparse := pattern.Func(func(i uint64) (byte, bool) {
		return 0xFF, i%4 == 0
	})
	req.Equal(uint64(24), pattern.Capacity(sparse, 12))
}
