// Package bitstream provides wrappers for io.Writer and io.Reader to allow
// bit-granularity access to the stream, following the MSB pattern, where
// the most significant bit of each byte is written/read first.
//
//	byte  0               1               2 ...
//	     +---------------+---------------+-
//	     |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|7 ...
//	     +---------------+---------------+-
//	bit   0 1 2 3 4 5 6 7 8 9 ...
package bitstream

// Bit is a single binary digit.
type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)
