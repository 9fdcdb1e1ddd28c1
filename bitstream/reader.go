package bitstream

import (
	"io"
)

// BitReader reads bits from an io.Reader.
type BitReader struct {
	stream    io.Reader
	buf       [1]byte
	pending   byte
	remaining uint8
}

// NewReader returns a new instance of BitReader.
func NewReader(r io.Reader) *BitReader {
	return &BitReader{stream: r}
}

// ReadBit reads the next single bit from the stream, MSB first.
// It returns io.EOF if and only if the stream ended on a byte boundary with
// no bits pending.
func (br *BitReader) ReadBit() (Bit, error) {
	if br.remaining == 0 {
		if _, err := io.ReadFull(br.stream, br.buf[:]); err != nil {
			return Zero, err
		}
		br.pending = br.buf[0]
		br.remaining = 8
	}

	bit := Bit(br.pending&0x80 != 0)
	br.pending <<= 1
	br.remaining--

	return bit, nil
}

// ReadByte reads the next 8 bits from the stream as a single byte, regardless
// of the alignment. If the stream ends partway through, io.ErrUnexpectedEOF
// is returned.
func (br *BitReader) ReadByte() (byte, error) {
	if br.remaining == 0 {
		if _, err := io.ReadFull(br.stream, br.buf[:]); err != nil {
			return 0, err
		}
		return br.buf[0], nil
	}

	var b byte
	for i := 0; i < 8; i++ {
		bit, err := br.ReadBit()
		if err == io.EOF {
			return 0, io.ErrUnexpectedEOF
		}
		if err != nil {
			return 0, err
		}
		b <<= 1
		if bit {
			b |= 1
		}
	}
	return b, nil
}

// ReadUint64BE reads the next numBits from the stream as a uint64 in
// Big-Endian bit order, regardless of the alignment. If the stream ends
// before numBits were read, io.ErrUnexpectedEOF is returned, unless no bits
// at all were available, in which case io.EOF is returned.
func (br *BitReader) ReadUint64BE(numBits int) (uint64, error) {
	var val uint64
	for i := 0; i < numBits; i++ {
		bit, err := br.ReadBit()
		if err == io.EOF && i > 0 {
			return 0, io.ErrUnexpectedEOF
		}
		if err != nil {
			return 0, err
		}

		val <<= 1
		if bit {
			val |= 1
		}
	}
	return val, nil
}
