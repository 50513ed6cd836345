package psm

import "math"

// JoystickSetAxis sets the directional pins for one joystick port/axis.
// Inputs outside {-1, 0, +1} are silently ignored.
func (s *State) JoystickSetAxis(port Port, axis Axis, state int) {
	if state < -1 || state > 1 {
		return
	}
	setAxisBits(s.portPins(port), axis, state)
}

// setAxisBits applies the directional bit pattern. HORIZONTAL uses pins
// 3/4 (bits 2/3); VERTICAL mirrors it on pins 1/2 (bits 0/1).
func setAxisBits(pins *PortWord, axis Axis, state int) {
	var a, b PortWord // a = "low" direction pin, b = "high" direction pin
	if axis == Horizontal {
		a, b = pinHorizontalA, pinHorizontalB
	} else {
		a, b = pinVerticalA, pinVerticalB
	}
	switch state {
	case -1:
		*pins &^= a
		*pins |= b
	case 0:
		*pins |= a
		*pins |= b
	case 1:
		*pins |= a
		*pins &^= b
	}
}

// JoystickSetFire sets the fire-button pin (port bit 5). state=1 (pressed)
// drives the pin low (0); state=0 (released) leaves it high (1).
func (s *State) JoystickSetFire(port Port, state int) {
	setFireBit(s.portPins(port), state)
}

func setFireBit(pins *PortWord, state int) {
	*pins = (*pins &^ pinFire) | PortWord((^state)&1)<<5
}

// MouseSetLMB sets the left mouse button state on the mouse's configured
// port. It shares port bit 5 with joystick fire by design: only one device
// is ever attached to a given port.
func (s *State) MouseSetLMB(state int) {
	setFireBit(s.portPins(s.Mouse.Port), state)
}

// MouseSetRMB sets the right mouse button state (port bit 8) on the
// mouse's configured port.
func (s *State) MouseSetRMB(state int) {
	pins := s.portPins(s.Mouse.Port)
	*pins = (*pins &^ pinRMB) | PortWord((^state)&1)<<8
}

// MouseRotateXEncoder rotates the X axis's encoder and quadrature streams
// by bits positions (left if positive, right if negative, no-op at zero)
// and projects their low bits onto the port pins for the configured
// dialect.
func (s *State) MouseRotateXEncoder(bits int) {
	s.XEncoder = s.XEncoder.Rotate(bits)
	s.XQuadrature = s.XQuadrature.Rotate(bits)
	s.projectEncoder(Horizontal)
}

// MouseRotateYEncoder is the Y-axis counterpart of MouseRotateXEncoder.
func (s *State) MouseRotateYEncoder(bits int) {
	s.YEncoder = s.YEncoder.Rotate(bits)
	s.YQuadrature = s.YQuadrature.Rotate(bits)
	s.projectEncoder(Vertical)
}

func (s *State) projectEncoder(axis Axis) {
	pins := s.portPins(s.Mouse.Port)
	d := s.Mouse.Dialect

	var e, q EncoderStream
	if axis == Horizontal {
		e, q = s.XEncoder, s.XQuadrature
	} else {
		e, q = s.YEncoder, s.YQuadrature
	}

	ePin := encoderPin(axis, d)
	qPin := quadraturePin(axis, d)

	*pins = setBit(*pins, ePin, e.Bit0())
	*pins = setBit(*pins, qPin, q.Bit0())
}

func setBit(w PortWord, pin PortWord, bit uint32) PortWord {
	if bit != 0 {
		return w | pin
	}
	return w &^ pin
}

// MouseMove scales delta by the configured speed, rounds to the nearest
// integer, and adds it to the matching axis accumulator. No encoder
// rotation happens here; draining the accumulator is the Signaling
// Engine's job.
func (s *State) MouseMove(axis Axis, delta int) {
	scaled := s.Mouse.Speed * float64(delta)
	rounded := int(math.Round(scaled))
	if axis == Horizontal {
		s.XAccum += rounded
	} else {
		s.YAccum += rounded
	}
}
