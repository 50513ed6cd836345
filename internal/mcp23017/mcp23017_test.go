package mcp23017

import (
	"testing"

	"github.com/electronoora/joyemu/internal/i2csink"
)

func TestInitializeWritesAllOutputNoInterrupts(t *testing.T) {
	sink := i2csink.NewMock()
	if err := Initialize(sink); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// IOCON and GPINTENB share address 0x05, so the IOCON entry covers both.
	want := map[byte]byte{
		i2csink.IOCON:    0x00,
		i2csink.IODIRA:   0x00,
		i2csink.IODIRB:   0x00,
		i2csink.GPINTENA: 0x00,
	}
	got := map[byte]byte{}
	for _, w := range sink.Writes() {
		got[w.Register] = w.Data
	}
	for reg, data := range want {
		v, ok := got[reg]
		if !ok {
			t.Fatalf("register %#02x never written", reg)
		}
		if v != data {
			t.Fatalf("register %#02x = %#02x, want %#02x", reg, v, data)
		}
	}
}

func TestInitializeStopsOnFirstFailure(t *testing.T) {
	sink := i2csink.NewMock()
	sink.FailNextWrite()
	if err := Initialize(sink); err == nil {
		t.Fatalf("expected error from failed first write")
	}
	if len(sink.Writes()) != 0 {
		t.Fatalf("no register should be recorded as written when the first write fails")
	}
}
