package bitstream

import (
	"io"
)

// BitWriter writes bits to an io.Writer.
type BitWriter struct {
	stream  io.Writer
	buf     [1]byte
	pending byte
	filled  uint8
}

// NewWriter returns a new instance of BitWriter.
func NewWriter(w io.Writer) *BitWriter {
	return &BitWriter{stream: w}
}

// WriteBit writes a single bit to the stream, MSB first. A full byte is
// emitted to the underlying writer every 8 bits.
func (bw *BitWriter) WriteBit(bit Bit) error {
	bw.pending <<= 1
	if bit {
		bw.pending |= 1
	}
	bw.filled++

	if bw.filled < 8 {
		return nil
	}
	return bw.emit()
}

// WriteByte writes a single byte to the stream, regardless of the alignment.
func (bw *BitWriter) WriteByte(b byte) error {
	if bw.filled == 0 {
		bw.buf[0] = b
		if n, err := bw.stream.Write(bw.buf[:]); n != 1 || err != nil {
			return writeErr(n, err)
		}
		return nil
	}

	for i := 7; i >= 0; i-- {
		if err := bw.WriteBit(Bit(b>>uint(i)&1 == 1)); err != nil {
			return err
		}
	}
	return nil
}

// WriteUint64BE writes the numBits least significant bits of val to the
// stream, in Big-Endian bit order, regardless of the alignment.
func (bw *BitWriter) WriteUint64BE(val uint64, numBits int) error {
	for i := numBits - 1; i >= 0; i-- {
		if err := bw.WriteBit(Bit(val>>uint(i)&1 == 1)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the currently pending byte to the stream by filling its
// remaining low bits with bit. It is a no-op on a byte boundary.
func (bw *BitWriter) Flush(bit Bit) error {
	for bw.filled != 0 {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}
	return nil
}

func (bw *BitWriter) emit() error {
	bw.buf[0] = bw.pending
	bw.pending = 0
	bw.filled = 0
	if n, err := bw.stream.Write(bw.buf[:]); n != 1 || err != nil {
		return writeErr(n, err)
	}
	return nil
}

func writeErr(n int, err error) error {
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}
