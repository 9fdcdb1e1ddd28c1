package binary

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/asbs/asbs"
	"github.com/asbs/asbs/bitstream"
	"github.com/asbs/asbs/pattern"
)

// LenHeaderBits is the width of the embedded length header: the payload byte
// length as a big-endian unsigned integer, carried in the leading masked-bit
// capacity of the stream. It is a protocol constant shared by Carrier and
// Package and never varies per call.
const LenHeaderBits = 64

// Carrier conceals a payload in cover data under a bit pattern.
//
// Conceal writes package bytes until the cover is exhausted. Cover bytes
// whose mask is absent or zero pass through untouched. Once all payload bits
// (and the length header, if any) have been merged, the remaining cover is
// copied through unchanged, including any still-masked positions: trailing
// slots keep the cover's own bit values. If the cover ends first, Conceal
// fails with asbs.ErrInsufficientCover.
//
// A Carrier is single-use: it holds the output position of one concealment.
type Carrier struct {
	pattern  pattern.Pattern
	writer   *bufio.Writer
	embedLen bool
	length   uint64
	used     bool
}

// NewCarrier returns a Carrier that imposes no length limit on the payload
// and embeds no length header; the receiving side must know the message
// length out-of-band. See NewCarrierWithEmbeddedLen for the self-describing
// variant.
func NewCarrier(p pattern.Pattern, w io.Writer) *Carrier {
	return &Carrier{pattern: p, writer: bufio.NewWriter(w)}
}

// NewCarrierWithEmbeddedLen returns a Carrier that first embeds payloadLen
// as a LenHeaderBits-wide big-endian header and then conceals at most
// payloadLen payload bytes.
func NewCarrierWithEmbeddedLen(payloadLen uint64, p pattern.Pattern, w io.Writer) *Carrier {
	return &Carrier{pattern: p, writer: bufio.NewWriter(w), embedLen: true, length: payloadLen}
}

var _ asbs.Concealer = (*Carrier)(nil)

// Conceal embeds payload into cover and returns the total number of package
// bytes written, which equals the cover length on success. If an error is
// returned the partially written package must be discarded.
func (c *Carrier) Conceal(payload, cover io.Reader) (int64, error) {
	if c.pattern == nil {
		return 0, fmt.Errorf("%w: nil pattern", asbs.ErrInvalidConfig)
	}
	if c.used {
		return 0, fmt.Errorf("%w: carrier already used", asbs.ErrInvalidConfig)
	}
	if c.embedLen && c.length > maxMessageLen {
		return 0, fmt.Errorf("%w: payload length %d out of range", asbs.ErrInvalidConfig, c.length)
	}
	c.used = true

	src := payload
	if c.embedLen {
		var header bytes.Buffer
		hw := bitstream.NewWriter(&header)
		if err := hw.WriteUint64BE(c.length, LenHeaderBits); err != nil {
			return 0, err
		}
		src = io.MultiReader(&header, io.LimitReader(payload, int64(c.length)))
	}

	payloadBits := bitstream.NewReader(src)
	reader := bufio.NewReader(cover)

	var written int64
	var slots [8]bitstream.Bit
	exhausted := false

	for index := uint64(0); ; index++ {
		coverByte, err := reader.ReadByte()
		if err == io.EOF {
			// The payload may have ended exactly at the cover's last masked
			// slot without the cursor noticing; probe before deciding.
			if !exhausted {
				if _, berr := payloadBits.ReadBit(); berr == nil {
					return written, fmt.Errorf("cover ended at byte %d: %w", index, asbs.ErrInsufficientCover)
				} else if berr != io.EOF {
					return written, berr
				}
			}
			break
		}
		if err != nil {
			return written, err
		}

		packageByte := coverByte
		if mask, ok := c.pattern.Mask(index); ok && mask != 0 {
			n := 0
			for m := mask; m != 0; m &= m - 1 {
				bit, berr := payloadBits.ReadBit()
				if berr == io.EOF {
					exhausted = true
					break
				}
				if berr != nil {
					return written, berr
				}
				slots[n] = bit
				n++
			}
			packageByte = Merge(coverByte, mask, slots[:n])
		}

		if err := c.writer.WriteByte(packageByte); err != nil {
			return written, err
		}
		written++

		if exhausted {
			copied, cerr := io.Copy(c.writer, reader)
			written += copied
			if cerr != nil {
				return written, cerr
			}
			break
		}
	}

	if err := c.writer.Flush(); err != nil {
		return written, err
	}
	return written, nil
}
