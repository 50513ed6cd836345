//go:build linux

package evdev

import "testing"

func TestHasBit(t *testing.T) {
	mask := make([]byte, 4)
	mask[2] = 0x04 // bit 18

	if !hasBit(mask, 18) {
		t.Fatalf("expected bit 18 set")
	}
	if hasBit(mask, 17) {
		t.Fatalf("expected bit 17 clear")
	}
	if hasBit(mask, 1000) {
		t.Fatalf("out-of-range bit must report false, not panic")
	}
}

func TestEventNumber(t *testing.T) {
	cases := map[string]struct {
		n  int
		ok bool
	}{
		"/dev/input/event0":  {0, true},
		"/dev/input/event12": {12, true},
		"/dev/input/mouse0":  {0, false},
		"/dev/input/js0":     {0, false},
	}
	for path, want := range cases {
		n, ok := eventNumber(path)
		if ok != want.ok || (ok && n != want.n) {
			t.Fatalf("eventNumber(%q) = (%d, %v), want (%d, %v)", path, n, ok, want.n, want.ok)
		}
	}
}

func TestIoctlRequestEncoding(t *testing.T) {
	// EVIOCGBIT(0, 4) is a well-known constant from linux/input.h.
	if got := eviocgbit(0, 4); got != 0x80044520 {
		t.Fatalf("eviocgbit(0,4) = %#x, want 0x80044520", got)
	}
}
