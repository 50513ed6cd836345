//go:build linux

// Package evdev discovers and reads Linux /dev/input/eventN devices,
// classifying each as a mouse or gamepad by its reported capabilities, and
// is the one package in this module that reaches for golang.org/x/sys/unix
// directly.
package evdev

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Kind is what a discovered device looks likely to usefully emulate.
type Kind int

const (
	KindUnknown Kind = iota
	KindMouse
	KindGamepad
)

// dpadKind records which event family a gamepad reports its d-pad on, since
// sixaxis/DualShock 3 pads use nonstandard codes (original_source/input.c).
type dpadKind int

const (
	dpadNone dpadKind = iota
	dpadAbsHat
	dpadGenericKeys
	dpadSixaxisKeys
)

// Device is an open event device along with its classification.
type Device struct {
	fd   int
	Path string
	Name string
	Num  int
	Kind Kind

	dpad dpadKind
}

// open opens path read-only, non-blocking, and queries its name via ioctl.
// Event capabilities are queried later, by classify.
func open(path string, num int) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	d := &Device{fd: fd, Path: path, Num: num}
	if name, err := ioctlName(fd); err == nil {
		d.Name = name
	}
	return d, nil
}

// Close releases the underlying file descriptor.
func (d *Device) Close() error {
	return unix.Close(d.fd)
}

func ioctlName(fd int) (string, error) {
	buf := make([]byte, 256)
	req := ioc(iocRead, uintptr('E'), 0x06, uintptr(len(buf)))
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(unsafe.Pointer(&buf[0]))); errno != 0 {
		return "", errno
	}
	n := 0
	for n < len(buf) && buf[n] != 0 {
		n++
	}
	return string(buf[:n]), nil
}

// bits queries the capability bitmask for one event type (EV_KEY, EV_REL,
// EV_ABS) via EVIOCGBIT.
func bits(fd int, evType uint) ([]byte, error) {
	buf := make([]byte, evdevBitsLen)
	req := eviocgbit(evType, uintptr(len(buf)))
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(unsafe.Pointer(&buf[0]))); errno != 0 {
		return nil, errno
	}
	return buf, nil
}

func hasBit(mask []byte, code uint) bool {
	idx := code / 8
	if int(idx) >= len(mask) {
		return false
	}
	return mask[idx]&(1<<(code%8)) != 0
}

// classify mirrors input_scan_devices from original_source/input.c: a
// device with EV_REL and both mouse buttons is a mouse; failing that, a
// device with a recognizable d-pad (xbox-style hat, generic d-pad keys, or
// sixaxis keys) plus at least one recognizable face button is a gamepad.
func classify(fd int) (Kind, dpadKind) {
	keyBits, keyErr := bits(fd, evKey)
	relBits, relErr := bits(fd, evRel)
	absBits, absErr := bits(fd, evAbs)

	if relErr == nil && keyErr == nil && hasBit(relBits, relX) && hasBit(relBits, relY) &&
		hasBit(keyBits, btnLeft) && hasBit(keyBits, btnRight) {
		return KindMouse, dpadNone
	}

	if keyErr != nil {
		return KindUnknown, dpadNone
	}

	dpad := dpadNone
	if absErr == nil && hasBit(absBits, absHat0X) && hasBit(absBits, absHat0Y) {
		dpad = dpadAbsHat
	} else if hasBit(keyBits, btnDpadUp) && hasBit(keyBits, btnDpadRight) &&
		hasBit(keyBits, btnDpadDown) && hasBit(keyBits, btnDpadLeft) {
		dpad = dpadGenericKeys
	} else if hasBit(keyBits, btnSixaxisUp) && hasBit(keyBits, btnSixaxisRight) &&
		hasBit(keyBits, btnSixaxisDown) && hasBit(keyBits, btnSixaxisLeft) {
		dpad = dpadSixaxisKeys
	}
	if dpad == dpadNone {
		return KindUnknown, dpadNone
	}

	hasFire := hasBit(keyBits, btnNorth) || hasBit(keyBits, btnEast) ||
		hasBit(keyBits, btnSouth) || hasBit(keyBits, btnWest) ||
		hasBit(keyBits, btnSixaxisTriangle) || hasBit(keyBits, btnSixaxisCircle) ||
		hasBit(keyBits, btnSixaxisCross) || hasBit(keyBits, btnSixaxisSquare)
	if !hasFire {
		return KindUnknown, dpadNone
	}
	return KindGamepad, dpad
}
