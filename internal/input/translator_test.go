package input

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/electronoora/joyemu/internal/engine"
	"github.com/electronoora/joyemu/internal/i2csink"
	"github.com/electronoora/joyemu/internal/psm"
)

func TestOnJoystickFirePolarity(t *testing.T) {
	eng := engine.New(i2csink.NewMock(), nil)
	tr := New(eng)

	tr.OnJoystickFire(psm.Port1, true)
	var pins psm.PortWord
	eng.Locked(func(s *psm.State) { pins = s.Port1Pins })
	require.Equal(t, psm.PortWord(0x14F), pins, "pressed fire should clear bit5")

	tr.OnJoystickFire(psm.Port1, false)
	eng.Locked(func(s *psm.State) { pins = s.Port1Pins })
	require.Equal(t, psm.IdlePortWord, pins, "released fire should restore idle")
}

func TestOnMouseButtonPolarity(t *testing.T) {
	eng := engine.New(i2csink.NewMock(), nil)
	tr := New(eng)

	tr.OnMouseButton(Left, true)
	var pins psm.PortWord
	eng.Locked(func(s *psm.State) { pins = s.Port1Pins })
	require.Zero(t, pins&0x020, "LMB pressed should clear bit5")
}

func TestOnMouseMoveAccumulates(t *testing.T) {
	eng := engine.New(i2csink.NewMock(), nil)
	tr := New(eng)
	eng.Locked(func(s *psm.State) { s.Mouse.Speed = 1.0 })

	tr.OnMouseMove(psm.Horizontal, 5)
	var accum int
	eng.Locked(func(s *psm.State) { accum = s.XAccum })
	require.Equal(t, 5, accum)
}

func TestOnJoystickDpadDiagonalIsTwoCalls(t *testing.T) {
	eng := engine.New(i2csink.NewMock(), nil)
	tr := New(eng)

	tr.OnJoystickDpad(psm.Port2, psm.Horizontal, 1)
	tr.OnJoystickDpad(psm.Port2, psm.Vertical, -1)

	var pins psm.PortWord
	eng.Locked(func(s *psm.State) { pins = s.Port2Pins })
	require.NotZero(t, pins&0x004, "horizontal right should set bit2")
	require.Zero(t, pins&0x001, "vertical up should clear bit0")
}

func TestOnJoystickDpadInvalidStateIgnored(t *testing.T) {
	eng := engine.New(i2csink.NewMock(), nil)
	tr := New(eng)
	var before psm.PortWord
	eng.Locked(func(s *psm.State) { before = s.Port1Pins })

	tr.OnJoystickDpad(psm.Port1, psm.Horizontal, 2)

	var after psm.PortWord
	eng.Locked(func(s *psm.State) { after = s.Port1Pins })
	require.Equal(t, before, after, "invalid axis state must be silently ignored")
}
