// Package engine implements the real-time loop that drains mouse movement
// accumulators into encoder rotations and flushes changed port words to the
// I/O expander.
package engine

import (
	"sync"
	"time"

	"github.com/electronoora/joyemu/internal/i2csink"
	"github.com/electronoora/joyemu/internal/joyerr"
	"github.com/electronoora/joyemu/internal/logging"
	"github.com/electronoora/joyemu/internal/psm"
)

// EncoderMinUSPerBit is the minimum elapsed time between encoder drains.
const EncoderMinUSPerBit = 2 * time.Microsecond

// EncoderBitsPerUnit is how many bit-positions one accumulator unit rotates
// the encoder streams by.
const EncoderBitsPerUnit = 7

// Engine owns the Port State Model and the I2C sink, and serializes every
// access to the state across the tick loop and any goroutine mutating it
// through Locked.
type Engine struct {
	mu    sync.Mutex
	state *psm.State

	sink  i2csink.Sink
	log   *logging.Logger
	clock func() time.Time

	lastDrain            time.Time
	lastPort1, lastPort2 psm.PortWord
	havePort1, havePort2 bool
}

// New returns an Engine with a freshly idle Port State Model. The drain
// timer starts at construction, so the first tick may already drain.
func New(sink i2csink.Sink, log *logging.Logger) *Engine {
	return &Engine{
		state:     psm.New(),
		sink:      sink,
		log:       log,
		clock:     time.Now,
		lastDrain: time.Now(),
	}
}

// Locked runs fn with the Port State Model locked. The Input Translator
// (internal/input) uses this to apply mutators without racing the engine's
// tick.
func (e *Engine) Locked(fn func(*psm.State)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.state)
}

// Tick performs one iteration of the engine loop: drain the movement
// accumulators into encoder rotations (if enough time has elapsed since the
// last drain), then flush any changed port word to the I2C sink. It never
// blocks except on the I2C write itself.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock()
	elapsed := now.Sub(e.lastDrain)
	if elapsed >= EncoderMinUSPerBit {
		e.drainAccumulator(&e.state.XAccum, e.state.MouseRotateXEncoder)
		e.drainAccumulator(&e.state.YAccum, e.state.MouseRotateYEncoder)
		e.lastDrain = now
	}

	e.flush()
}

// drainAccumulator advances one axis's encoder by exactly one unit toward
// zero: a single left rotation per positive unit, a single right rotation
// per negative unit. An accumulator exactly at 0 is left untouched.
func (e *Engine) drainAccumulator(accum *int, rotate func(bits int)) {
	switch {
	case *accum > 0:
		rotate(EncoderBitsPerUnit)
		*accum--
	case *accum < 0:
		rotate(-EncoderBitsPerUnit)
		*accum++
	}
}

func (e *Engine) flush() {
	if !e.havePort1 || e.lastPort1 != e.state.Port1Pins {
		if e.writeBank(i2csink.Bank0, e.state.Port1Pins) {
			e.lastPort1 = e.state.Port1Pins
			e.havePort1 = true
		}
	}
	if !e.havePort2 || e.lastPort2 != e.state.Port2Pins {
		if e.writeBank(i2csink.Bank1, e.state.Port2Pins) {
			e.lastPort2 = e.state.Port2Pins
			e.havePort2 = true
		}
	}
}

// writeBank writes w's GPIO projection to bank's register and reports
// success. On failure it logs and returns false without touching the
// write-shadow, so the next tick retries the same value.
func (e *Engine) writeBank(bank i2csink.Bank, w psm.PortWord) bool {
	if err := e.sink.WriteByte(bank.GPIORegister(), w.GPIOByte()); err != nil {
		if e.log != nil {
			e.log.Errorf("%v", &joyerr.TransportError{Op: "write gpio", Err: err})
		}
		return false
	}
	return true
}
