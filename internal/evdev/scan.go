//go:build linux

package evdev

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/electronoora/joyemu/internal/joyerr"
	"github.com/electronoora/joyemu/internal/logging"
)

const maxJoysticks = 2

// Assignment is the result of scanning /dev/input for usable devices: the
// mouse (if any) and up to maxJoysticks gamepads, already attached to the
// joystick ports they'll drive.
type Assignment struct {
	Mouse     *Device
	Joysticks [maxJoysticks]*Device
}

// Close releases every device held by the assignment.
func (a *Assignment) Close() {
	if a.Mouse != nil {
		a.Mouse.Close()
	}
	for _, j := range a.Joysticks {
		if j != nil {
			j.Close()
		}
	}
}

// Scan globs /dev/input/event*, opens and classifies each device, and
// assigns a mouse and up to maxJoysticks gamepads to ports, honoring
// explicit device-number overrides (-1 means auto-detect). firstJoystick
// is 1 or 2: the port the first gamepad found is attached to, with any
// second gamepad taking the other port.
func Scan(mouseDevno, joy1Devno, joy2Devno, firstJoystick int, log *logging.Logger) (*Assignment, error) {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("glob /dev/input: %w", err)
	}
	sort.Strings(paths)

	a := &Assignment{}
	attachTo := (firstJoystick - 1 + maxJoysticks) % maxJoysticks
	gamepadsFound := 0
	overrides := [2]int{joy1Devno, joy2Devno}

	for _, path := range paths {
		devno, ok := eventNumber(path)
		if !ok {
			continue
		}
		if log != nil {
			log.Verbosef("Checking device %s, number %d", path, devno)
		}
		dev, err := open(path, devno)
		if err != nil {
			if log != nil {
				log.Errorf("%v", err)
			}
			continue
		}
		kind, dpad := classify(dev.fd)
		dev.Kind = kind
		dev.dpad = dpad

		switch kind {
		case KindMouse:
			if a.Mouse != nil {
				dev.Close()
				continue
			}
			if mouseDevno != -1 && mouseDevno != devno {
				if log != nil {
					log.Debugf("Device %d looks like a mouse but device %d was requested", devno, mouseDevno)
				}
				dev.Close()
				continue
			}
			a.Mouse = dev
			if log != nil {
				log.Verbosef("Device has capabilities to function as a mouse, assigning it as %q", dev.Name)
			}
		case KindGamepad:
			if gamepadsFound >= maxJoysticks {
				dev.Close()
				continue
			}
			want := overrides[gamepadsFound]
			if want != -1 && want != devno {
				dev.Close()
				continue
			}
			a.Joysticks[attachTo] = dev
			if log != nil {
				log.Verbosef("Device has capabilities to function as a joystick, assigning it to port %d", attachTo+1)
			}
			gamepadsFound++
			attachTo = (attachTo + 1) % maxJoysticks
		default:
			dev.Close()
		}
	}

	if a.Mouse == nil && gamepadsFound == 0 {
		return nil, &joyerr.NoInputDevicesError{}
	}
	if log != nil {
		if a.Mouse != nil {
			log.Infof("Using %q to emulate a mouse", a.Mouse.Name)
		}
		for i, j := range a.Joysticks {
			if j != nil {
				log.Infof("Using %q to emulate a joystick in port %d", j.Name, i+1)
			}
		}
	}
	return a, nil
}

func eventNumber(path string) (int, bool) {
	base := filepath.Base(path)
	n, ok := strings.CutPrefix(base, "event")
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(n)
	if err != nil {
		return 0, false
	}
	return v, true
}
