package i2csink

import "sync"

// Mock is an in-memory Sink recording every write, for use in engine and
// app tests. Create one with NewMock; a zero Mock has no register map and
// panics on its first WriteByte.
type Mock struct {
	mu       sync.Mutex
	regs     map[byte]byte
	writes   []Write
	failNext bool
}

// Write records a single WriteByte call.
type Write struct {
	Register byte
	Data     byte
}

// NewMock returns a ready-to-use Mock sink.
func NewMock() *Mock {
	return &Mock{regs: make(map[byte]byte)}
}

func (m *Mock) WriteByte(register, data byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return errWriteFailed
	}
	m.regs[register] = data
	m.writes = append(m.writes, Write{Register: register, Data: data})
	return nil
}

func (m *Mock) ReadByte(register byte) (byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.regs[register], nil
}

// FailNextWrite makes the next WriteByte call return an error, to exercise
// the engine's retry-on-next-tick behavior.
func (m *Mock) FailNextWrite() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = true
}

// Writes returns a copy of every write recorded so far, in order.
func (m *Mock) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Write, len(m.writes))
	copy(out, m.writes)
	return out
}

type writeFailedError struct{}

func (writeFailedError) Error() string { return "mock: simulated write failure" }

var errWriteFailed = writeFailedError{}
