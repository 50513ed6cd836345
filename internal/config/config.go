// Package config defines the CLI surface using kong, with layered
// JSON/YAML/TOML configuration.
package config

import (
	"fmt"

	"github.com/electronoora/joyemu/internal/joyerr"
	"github.com/electronoora/joyemu/internal/logging"
	"github.com/electronoora/joyemu/internal/psm"
)

// CLI is the full set of recognized launch parameters.
type CLI struct {
	I2CBus     int    `short:"i" default:"1" help:"I2C bus number for the I/O expander."`
	I2CAddress string `short:"a" default:"0x20" help:"I2C address for the I/O expander, as a hex byte."`

	MousePort    int     `short:"m" default:"1" help:"Port the mouse is mounted on: 1 or 2."`
	JoystickPort int     `short:"j" default:"2" help:"Port the first joystick is mounted on: 1 or 2."`
	MouseSpeed   float64 `default:"1.3" help:"Mouse movement speed multiplier, applied uniformly to both axes."`
	MouseDialect string  `short:"e" default:"amiga" enum:"amiga,atari_st" help:"Mouse emulation dialect."`

	MouseDevice     int `default:"-1" help:"Event device number to use for the mouse (-1 = auto-detect)."`
	Joystick1Device int `default:"-1" help:"Event device number to use for joystick 1 (-1 = auto-detect)."`
	Joystick2Device int `default:"-1" help:"Event device number to use for joystick 2 (-1 = auto-detect)."`

	LogLevel string `default:"info" enum:"extradebug,debug,verbose,info,error" help:"Log verbosity level."`

	Config string `help:"Path to a JSON/YAML/TOML config file." type:"path"`
}

// Validate checks every user-supplied value and returns the first
// violation as a *joyerr.ConfigError, fatal at startup.
func (c *CLI) Validate() error {
	if c.I2CBus < 0 {
		return &joyerr.ConfigError{Field: "i2c-bus", Reason: "must be a non-negative integer"}
	}
	if _, err := c.i2cAddress(); err != nil {
		return err
	}
	if c.MousePort != 1 && c.MousePort != 2 {
		return &joyerr.ConfigError{Field: "mouse-port", Reason: "must be 1 or 2"}
	}
	if c.JoystickPort != 1 && c.JoystickPort != 2 {
		return &joyerr.ConfigError{Field: "joystick-port", Reason: "must be 1 or 2"}
	}
	if c.MouseDialect != "amiga" && c.MouseDialect != "atari_st" {
		return &joyerr.ConfigError{Field: "mouse-dialect", Reason: "must be amiga or atari_st"}
	}
	return nil
}

// i2cAddress parses the configured hex address string into a byte.
func (c *CLI) i2cAddress() (byte, error) {
	var v int
	if _, err := fmt.Sscanf(c.I2CAddress, "0x%x", &v); err != nil || v < 0 || v > 0xFF {
		return 0, &joyerr.ConfigError{Field: "i2c-address", Reason: "must be a hex byte, e.g. 0x20"}
	}
	return byte(v), nil
}

// I2CAddressByte exposes the parsed, validated I2C address.
func (c *CLI) I2CAddressByte() byte {
	v, _ := c.i2cAddress()
	return v
}

// Dialect converts the validated string flag to a psm.Dialect.
func (c *CLI) Dialect() psm.Dialect {
	if c.MouseDialect == "atari_st" {
		return psm.AtariST
	}
	return psm.Amiga
}

// MouseConfig builds the psm.MouseConfig this CLI describes.
func (c *CLI) MouseConfig() psm.MouseConfig {
	return psm.MouseConfig{
		Port:    psm.Port(c.MousePort),
		Dialect: c.Dialect(),
		Speed:   c.MouseSpeed,
	}
}

// LogLevelValue converts the validated string flag to a logging.Level.
func (c *CLI) LogLevelValue() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}
