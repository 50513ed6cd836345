package psm

import "math/bits"

// EncoderStream is a 32-bit rotating bit pattern driving one phase (encoder
// or quadrature) of one mouse axis. Its emitted pin value is always its low
// bit after rotation.
type EncoderStream uint32

const (
	// EncoderInit is the initial pattern for the "encoder phase" stream.
	EncoderInit EncoderStream = 0x3C3C3C3C
	// QuadratureInit is the initial pattern for the "quadrature phase" stream.
	QuadratureInit EncoderStream = 0xF0F0F0F0
)

// Rotate rotates the stream by n positions: left when n > 0, right when
// n < 0, and is a no-op when n == 0. Rotation preserves Hamming weight.
func (s EncoderStream) Rotate(n int) EncoderStream {
	return EncoderStream(bits.RotateLeft32(uint32(s), n))
}

// Bit0 returns the low bit of the stream.
func (s EncoderStream) Bit0() uint32 {
	return uint32(s) & 1
}
