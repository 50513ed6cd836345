package psm

// MouseConfig describes how the emulated mouse is mounted: which port it
// occupies, which vintage dialect it speaks, and its speed multiplier.
type MouseConfig struct {
	Port    Port
	Dialect Dialect
	// Speed scales raw pointer deltas before they're rounded into the
	// movement accumulators. Applies uniformly to both axes.
	Speed float64
}

// DefaultMouseConfig matches the original program's defaults.
func DefaultMouseConfig() MouseConfig {
	return MouseConfig{Port: Port1, Dialect: Amiga, Speed: 1.3}
}

// State is the full Port State Model: both port words, the mouse's four
// rotating encoder streams, its two movement accumulators, and its mount
// configuration. All methods are pure with respect to I/O; callers
// (internal/engine) are responsible for serializing access across
// goroutines.
type State struct {
	Port1Pins PortWord
	Port2Pins PortWord

	Mouse MouseConfig

	XEncoder, XQuadrature EncoderStream
	YEncoder, YQuadrature EncoderStream

	// XAccum/YAccum hold undischarged mouse movement units, one unit per
	// encoder rotation of EncoderBitsPerUnit bits.
	XAccum, YAccum int
}

// New returns a State in its idle, power-on configuration.
func New() *State {
	return &State{
		Port1Pins:   IdlePortWord,
		Port2Pins:   IdlePortWord,
		Mouse:       DefaultMouseConfig(),
		XEncoder:    EncoderInit,
		XQuadrature: QuadratureInit,
		YEncoder:    EncoderInit,
		YQuadrature: QuadratureInit,
	}
}

func (s *State) portPins(p Port) *PortWord {
	if p == Port2 {
		return &s.Port2Pins
	}
	return &s.Port1Pins
}
