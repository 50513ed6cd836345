//go:build linux

// Package app wires the configured components together and runs joyemu
// until it's asked to stop.
package app

import (
	"context"
	"fmt"

	"github.com/electronoora/joyemu/internal/config"
	"github.com/electronoora/joyemu/internal/engine"
	"github.com/electronoora/joyemu/internal/evdev"
	"github.com/electronoora/joyemu/internal/input"
	"github.com/electronoora/joyemu/internal/joyerr"
	"github.com/electronoora/joyemu/internal/logging"
	"github.com/electronoora/joyemu/internal/mcp23017"
	"github.com/electronoora/joyemu/internal/psm"
)

// Run validates cli, discovers input devices, initializes the I/O expander,
// and runs the signaling engine and input readers until ctx is canceled.
// Logging is already set up by the caller; input devices are discovered
// before the I2C target is touched, and the engine starts ticking before
// input readers are attached to it so no event is translated against an
// engine that isn't running yet.
func Run(ctx context.Context, cli *config.CLI, log *logging.Logger) error {
	if err := cli.Validate(); err != nil {
		return err
	}

	assignment, err := evdev.Scan(cli.MouseDevice, cli.Joystick1Device, cli.Joystick2Device, cli.JoystickPort, log)
	if err != nil {
		return err
	}
	defer assignment.Close()

	dev, err := mcp23017.Open(fmt.Sprintf("%d", cli.I2CBus), cli.I2CAddressByte(), log)
	if err != nil {
		return &joyerr.TransportError{Op: "open MCP23017", Err: err}
	}
	defer dev.Close()

	if err := mcp23017.Initialize(dev); err != nil {
		return &joyerr.TransportError{Op: "initialize MCP23017", Err: err}
	}

	eng := engine.New(dev, log)
	eng.Locked(func(s *psm.State) {
		s.Mouse = cli.MouseConfig()
	})

	tr := input.New(eng)

	go eng.Run(ctx)

	if assignment.Mouse != nil {
		go evdev.RunMouse(ctx, assignment.Mouse, tr)
	}
	for i, j := range assignment.Joysticks {
		if j == nil {
			continue
		}
		go evdev.RunJoystick(ctx, j, psm.Port(i+1), tr)
	}

	<-ctx.Done()
	if log != nil {
		log.Infof("shutting down")
	}
	return nil
}
