// Package mcp23017 implements the i2csink.Sink contract on top of a real
// MCP23017 I/O expander, reached over Linux's i2c-dev interface via
// periph.io.
package mcp23017

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/electronoora/joyemu/internal/i2csink"
	"github.com/electronoora/joyemu/internal/joyerr"
	"github.com/electronoora/joyemu/internal/logging"
)

// Dev is an open handle to an MCP23017 on a named I2C bus, implementing
// i2csink.Sink.
type Dev struct {
	c   conn.Conn
	bus i2c.BusCloser
	log *logging.Logger
}

// Open acquires the host's I2C drivers, opens busName (e.g. "1" for
// /dev/i2c-1 or "" for the first available bus), and returns a Dev
// addressing the chip at addr.
func Open(busName string, addr byte, log *logging.Logger) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, &joyerr.TransportError{Op: "host.Init", Err: err}
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, &joyerr.TransportError{Op: fmt.Sprintf("open i2c bus %q", busName), Err: err}
	}
	d := &Dev{
		c:   &i2c.Dev{Bus: bus, Addr: uint16(addr)},
		bus: bus,
		log: log,
	}
	if log != nil {
		log.Infof("I2C: opened bus %q and addressed slave 0x%02x", busName, addr)
	}
	return d, nil
}

// Close releases the underlying bus handle.
func (d *Dev) Close() error {
	return d.bus.Close()
}

// WriteByte writes data to register over a single I2C transaction.
func (d *Dev) WriteByte(register, data byte) error {
	if err := d.c.Tx([]byte{register, data}, nil); err != nil {
		if d.log != nil {
			d.log.Errorf("I2C: writing byte to register %#02x failed: %v", register, err)
		}
		return err
	}
	if d.log != nil {
		d.log.ExtraDebugf("I2C: wrote %#02x to register %#02x", data, register)
	}
	return nil
}

// ReadByte reads a single byte back from register.
func (d *Dev) ReadByte(register byte) (byte, error) {
	r := make([]byte, 1)
	if err := d.c.Tx([]byte{register}, r); err != nil {
		if d.log != nil {
			d.log.Errorf("I2C: reading byte from register %#02x failed: %v", register, err)
		}
		return 0, err
	}
	if d.log != nil {
		d.log.ExtraDebugf("I2C: read %#02x from register %#02x", r[0], register)
	}
	return r[0], nil
}

// Initialize drives the chip into the all-output, interrupts-disabled state
// the signaling engine expects. The chip powers up with BANK=1 addressing;
// the first write targets IOCON at its BANK=1 address (0x05), which
// doubles as GPINTENB once BANK has settled to 0, so this write is
// harmless when the chip is already in the BANK=0 state.
func Initialize(sink i2csink.Sink) error {
	if err := sink.WriteByte(i2csink.IOCON, 0x00); err != nil {
		return err
	}
	if err := sink.WriteByte(i2csink.IODIRA, 0x00); err != nil {
		return err
	}
	if err := sink.WriteByte(i2csink.IODIRB, 0x00); err != nil {
		return err
	}
	if err := sink.WriteByte(i2csink.GPINTENA, 0x00); err != nil {
		return err
	}
	if err := sink.WriteByte(i2csink.GPINTENB, 0x00); err != nil {
		return err
	}
	return nil
}

var _ i2csink.Sink = (*Dev)(nil)
