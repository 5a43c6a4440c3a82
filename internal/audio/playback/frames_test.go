package playback

import (
	"bytes"
	"testing"
)

func TestFillFrames(t *testing.T) {
	src := []int16{0x0102, -2, 0x7f00}

	out := make([]byte, 4)
	pos := fillFrames(out, src, 0)
	if pos != 2 {
		t.Fatalf("pos = %d, want 2", pos)
	}
	if want := []byte{0x02, 0x01, 0xfe, 0xff}; !bytes.Equal(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}

	out = []byte{9, 9, 9, 9, 9, 9}
	pos = fillFrames(out, src, pos)
	if pos != 3 {
		t.Fatalf("pos = %d, want 3", pos)
	}
	if want := []byte{0x00, 0x7f, 0, 0, 0, 0}; !bytes.Equal(out, want) {
		t.Errorf("got %x, want %x", out, want)
	}
}

func TestFillFramesExhausted(t *testing.T) {
	out := []byte{1, 2, 3}
	if pos := fillFrames(out, nil, 0); pos != 0 {
		t.Fatalf("pos = %d, want 0", pos)
	}
	if !bytes.Equal(out, []byte{0, 0, 0}) {
		t.Errorf("expected silence, got %x", out)
	}
}

func TestCursorWaitsForTail(t *testing.T) {
	c := &cursor{samples: []int16{1, 2, 3}}
	out := make([]byte, 4)

	var drainedAt []bool
	for i := 0; i < 4; i++ {
		drainedAt = append(drainedAt, c.fill(out))
	}
	// periods: [1 2] [3 pad] [silence] [silence]
	want := []bool{false, false, false, true}
	for i := range want {
		if drainedAt[i] != want[i] {
			t.Errorf("period %d drained = %v, want %v", i, drainedAt[i], want[i])
		}
	}
}

func TestCursorEmptyClip(t *testing.T) {
	c := &cursor{}
	out := make([]byte, 4)
	if c.fill(out) {
		t.Fatal("drained after the first silent period")
	}
	if !c.fill(out) {
		t.Fatal("expected drained after the tail")
	}
}
