package binary

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/asbs/asbs"
	"github.com/asbs/asbs/bitstream"
	"github.com/asbs/asbs/pattern"
)

type lengthMode int

const (
	lengthUnbound lengthMode = iota
	lengthBound
	lengthEmbedded
)

// maxMessageLen bounds the message byte length so that bit arithmetic and
// the returned byte count cannot overflow.
const maxMessageLen = math.MaxInt64 / 8

// Package reveals a payload hidden in package data under a bit pattern.
//
// Reveal reads package bytes sequentially and collects the bits at the
// positions the pattern marks as significant, in the same order the Carrier
// filled them, until the message length is reached. The length is either
// supplied by the caller, read from the embedded header, or, for the
// unbounded variant, taken to be everything up to the end of the stream.
//
// A Package is single-use: it holds the input position of one revelation.
type Package struct {
	pattern pattern.Pattern
	reader  *bufio.Reader
	mode    lengthMode
	length  uint64
	used    bool
}

// NewPackage returns a Package that imposes no limit on the number of bytes
// revealed: extraction continues until the package stream ends, and a
// trailing partial byte is flushed zero-padded.
func NewPackage(p pattern.Pattern, r io.Reader) *Package {
	return &Package{pattern: p, reader: bufio.NewReader(r)}
}

// NewPackageWithLen returns a Package that reveals exactly messageLen bytes.
// Use it when the message length was agreed out-of-band.
func NewPackageWithLen(messageLen uint64, p pattern.Pattern, r io.Reader) *Package {
	return &Package{pattern: p, reader: bufio.NewReader(r), mode: lengthBound, length: messageLen}
}

// NewPackageWithEmbeddedLen returns a Package that first recovers a
// LenHeaderBits-wide big-endian message length from the leading masked bits,
// as written by NewCarrierWithEmbeddedLen, and then reveals that many bytes.
func NewPackageWithEmbeddedLen(p pattern.Pattern, r io.Reader) *Package {
	return &Package{pattern: p, reader: bufio.NewReader(r), mode: lengthEmbedded}
}

var _ asbs.Revealer = (*Package)(nil)

// Reveal writes the hidden message to output and returns the number of
// message bytes written. If the stream ends before a known message length
// was recovered in full, Reveal fails with asbs.ErrInsufficientCover.
func (p *Package) Reveal(output io.Writer) (int64, error) {
	if p.pattern == nil {
		return 0, fmt.Errorf("%w: nil pattern", asbs.ErrInvalidConfig)
	}
	if p.used {
		return 0, fmt.Errorf("%w: package already used", asbs.ErrInvalidConfig)
	}
	p.used = true

	if p.mode == lengthBound && p.length > maxMessageLen {
		return 0, fmt.Errorf("%w: message length %d out of range", asbs.ErrInvalidConfig, p.length)
	}
	if p.mode == lengthBound && p.length == 0 {
		return 0, nil
	}

	out := bufio.NewWriter(output)
	payload := bitstream.NewWriter(out)

	var headerValue uint64
	headerRemaining := 0
	if p.mode == lengthEmbedded {
		headerRemaining = LenHeaderBits
	}

	var bitsOut uint64

	for index := uint64(0); ; index++ {
		packageByte, err := p.reader.ReadByte()
		if err == io.EOF {
			if p.mode != lengthUnbound {
				return int64(bitsOut / 8), fmt.Errorf("package ended at byte %d: %w", index, asbs.ErrInsufficientCover)
			}

			written := int64(bitsOut / 8)
			if bitsOut%8 != 0 {
				if err := payload.Flush(bitstream.Zero); err != nil {
					return written, err
				}
				written++
			}
			return written, out.Flush()
		}
		if err != nil {
			return int64(bitsOut / 8), err
		}

		mask, ok := p.pattern.Mask(index)
		if !ok || mask == 0 {
			continue
		}

		for _, bit := range Extract(packageByte, mask) {
			if headerRemaining > 0 {
				headerValue <<= 1
				if bit {
					headerValue |= 1
				}
				headerRemaining--
				if headerRemaining == 0 {
					if headerValue > maxMessageLen {
						return 0, fmt.Errorf("%w: embedded length %d out of range", asbs.ErrInvalidConfig, headerValue)
					}
					p.mode = lengthBound
					p.length = headerValue
					if p.length == 0 {
						return 0, out.Flush()
					}
				}
				continue
			}

			if err := payload.WriteBit(bit); err != nil {
				return int64(bitsOut / 8), err
			}
			bitsOut++

			if p.mode == lengthBound && bitsOut == p.length*8 {
				return int64(p.length), out.Flush()
			}
		}
	}
}
