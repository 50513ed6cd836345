// Package input translates normalized external input events onto Port
// State Model mutators, applied under the engine's lock so a tick never
// observes a half-updated state.
package input

import (
	"github.com/electronoora/joyemu/internal/engine"
	"github.com/electronoora/joyemu/internal/psm"
)

// MouseButton identifies which mouse button an event is about.
type MouseButton int

const (
	Left MouseButton = iota
	Right
)

// Translator owns no state of its own; it only knows how to turn an event
// into a call against the engine's locked Port State Model.
type Translator struct {
	eng *engine.Engine
}

// New returns a Translator driving eng.
func New(eng *engine.Engine) *Translator {
	return &Translator{eng: eng}
}

// OnMouseMove reports a relative pointer delta on one axis.
func (t *Translator) OnMouseMove(axis psm.Axis, delta int) {
	t.eng.Locked(func(s *psm.State) {
		s.MouseMove(axis, delta)
	})
}

// OnMouseButton reports a mouse button transition. pressed is inverted to
// form the pin level the port word carries (pressed -> pin driven low).
func (t *Translator) OnMouseButton(which MouseButton, pressed bool) {
	state := boolToState(pressed)
	t.eng.Locked(func(s *psm.State) {
		switch which {
		case Left:
			s.MouseSetLMB(state)
		case Right:
			s.MouseSetRMB(state)
		}
	})
}

// OnJoystickDpad reports a joystick d-pad/hat axis state: -1, 0, or +1.
// Diagonal directions arrive as two independent calls, one per axis; a hat
// abstraction's analog -1/0/+1 values pass through unchanged.
func (t *Translator) OnJoystickDpad(port psm.Port, axis psm.Axis, state int) {
	t.eng.Locked(func(s *psm.State) {
		s.JoystickSetAxis(port, axis, state)
	})
}

// OnJoystickFire reports a joystick fire-button transition. Any face
// button maps to fire 1; this translator does not distinguish which.
func (t *Translator) OnJoystickFire(port psm.Port, pressed bool) {
	state := boolToState(pressed)
	t.eng.Locked(func(s *psm.State) {
		s.JoystickSetFire(port, state)
	})
}

func boolToState(pressed bool) int {
	if pressed {
		return 1
	}
	return 0
}
