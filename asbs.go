// Package asbs provides steganographic concealment and revelation of
// messages in binary data via arbitrarily significant bits.
//
// A message is hidden by copying a cover byte stream into a package byte
// stream while overwriting selected bits with message bits. Which bits of
// which bytes are selected is decided by a bit pattern, a function from byte
// index to bit mask, shared out-of-band between the concealing and the
// revealing party. The pattern acts as the steganographic key: without it the
// package stream is indistinguishable from slightly perturbed cover data.
//
// The binary subpackage implements the engine over io.Reader and io.Writer.
// The pattern subpackage provides ready-made patterns, including a keyed
// pseudo-random one.
package asbs

import "io"

// Concealer hides a payload inside cover data.
type Concealer interface {
	// Conceal embeds payload into cover and returns the total number of
	// package bytes written. If an error is returned, bytes may still have
	// been written and the partial package must be discarded by the caller.
	Conceal(payload, cover io.Reader) (int64, error)
}

// Revealer recovers a payload hidden inside package data.
type Revealer interface {
	// Reveal writes the hidden message to output and returns the number of
	// message bytes written.
	Reveal(output io.Writer) (int64, error)
}
