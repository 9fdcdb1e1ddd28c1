package pattern

import (
	"fmt"

	"golang.org/x/crypto/chacha20"

	"github.com/asbs/asbs"
)

// keyed derives one significant bit per cover byte from a ChaCha20
// keystream. It caches the keystream one block at a time so that sequential
// access stays cheap while out-of-order access remains correct.
type keyed struct {
	key   [chacha20.KeySize]byte
	nonce [chacha20.NonceSize]byte

	block  uint32
	cached bool
	ks     [blockSize]byte
}

const blockSize = 64

var zeroBlock [blockSize]byte

// Keyed returns a pattern that hides exactly one bit per cover byte, at a
// position drawn from the ChaCha20 keystream of the given 32-byte key and
// 12-byte nonce. Both parties derive the same positions from the shared key,
// so the pattern itself never travels with the package.
//
// The keystream block counter is 32 bits wide, so mask positions repeat
// after 2^38 cover bytes.
func Keyed(key, nonce []byte) (Pattern, error) {
	if _, err := chacha20.NewUnauthenticatedCipher(key, nonce); err != nil {
		return nil, fmt.Errorf("%w: %v", asbs.ErrInvalidConfig, err)
	}

	k := new(keyed)
	copy(k.key[:], key)
	copy(k.nonce[:], nonce)
	return k, nil
}

func (k *keyed) Mask(index uint64) (byte, bool) {
	blk := uint32(index / blockSize)
	if !k.cached || blk != k.block {
		// Key and nonce sizes were validated in Keyed.
		c, _ := chacha20.NewUnauthenticatedCipher(k.key[:], k.nonce[:])
		c.SetCounter(blk)
		c.XORKeyStream(k.ks[:], zeroBlock[:])
		k.block = blk
		k.cached = true
	}

	return 1 << (k.ks[index%blockSize] & 7), true
}
