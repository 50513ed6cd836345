//go:build linux

package evdev

import (
	"context"
	"encoding/binary"
	"time"

	"golang.org/x/sys/unix"

	"github.com/electronoora/joyemu/internal/input"
	"github.com/electronoora/joyemu/internal/psm"
)

// rawEventSize is sizeof(struct input_event) on a 64-bit Linux kernel:
// a 16-byte timeval followed by type, code (uint16 each) and a int32 value.
const rawEventSize = 24

// RunMouse polls d for relative motion and button events and drives tr
// until ctx is canceled. d must have been classified KindMouse.
func RunMouse(ctx context.Context, d *Device, tr *input.Translator) {
	poll(ctx, d, func(typ, code uint16, value int32) {
		switch typ {
		case evRel:
			switch code {
			case relX:
				tr.OnMouseMove(psm.Horizontal, int(value))
			case relY:
				tr.OnMouseMove(psm.Vertical, int(value))
			}
		case evKey:
			switch code {
			case btnLeft:
				tr.OnMouseButton(input.Left, value != 0)
			case btnRight:
				tr.OnMouseButton(input.Right, value != 0)
			}
		}
	})
}

// RunJoystick polls d for d-pad and fire-button events on port p until ctx
// is canceled. d must have been classified KindGamepad.
func RunJoystick(ctx context.Context, d *Device, port psm.Port, tr *input.Translator) {
	poll(ctx, d, func(typ, code uint16, value int32) {
		switch typ {
		case evAbs:
			switch code {
			case absHat0X:
				tr.OnJoystickDpad(port, psm.Horizontal, int(value))
			case absHat0Y:
				tr.OnJoystickDpad(port, psm.Vertical, int(value))
			}
		case evKey:
			switch code {
			case btnDpadUp, btnSixaxisUp:
				tr.OnJoystickDpad(port, psm.Vertical, -int(value))
			case btnDpadDown, btnSixaxisDown:
				tr.OnJoystickDpad(port, psm.Vertical, int(value))
			case btnDpadLeft, btnSixaxisLeft:
				tr.OnJoystickDpad(port, psm.Horizontal, -int(value))
			case btnDpadRight, btnSixaxisRight:
				tr.OnJoystickDpad(port, psm.Horizontal, int(value))
			case btnNorth, btnEast, btnSouth, btnWest,
				btnSixaxisTriangle, btnSixaxisCircle, btnSixaxisCross, btnSixaxisSquare:
				tr.OnJoystickFire(port, value != 0)
			}
		}
	})
}

// poll reads events from d in a nonblocking loop, calling handle for each
// one, until ctx is canceled. unix.Poll waits for readability so the loop
// doesn't spin a CPU core between events.
func poll(ctx context.Context, d *Device, handle func(typ, code uint16, value int32)) {
	buf := make([]byte, rawEventSize)
	fds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		n, err := unix.Poll(fds, 250)
		if err != nil || n == 0 {
			continue
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		read, err := unix.Read(d.fd, buf)
		if err != nil || read < rawEventSize {
			time.Sleep(time.Millisecond)
			continue
		}

		typ := binary.LittleEndian.Uint16(buf[16:18])
		code := binary.LittleEndian.Uint16(buf[18:20])
		value := int32(binary.LittleEndian.Uint32(buf[20:24]))
		handle(typ, code, value)
	}
}
