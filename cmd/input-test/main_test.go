package main

import (
	"testing"

	"github.com/lixenwraith/invaders/input"
)

func frame(c *counter, in *input.State[string], fn func()) []string {
	fn()
	in.Latch()
	out := c.step(in)
	in.Advance()
	return out
}

func TestCounterIncrementsOnPressEdge(t *testing.T) {
	in := input.NewState[string]()
	c := &counter{}

	frame(c, in, func() { in.Press("w") })
	frame(c, in, func() {})
	frame(c, in, func() {})
	if c.value != 1 {
		t.Errorf("held w: counter = %d, want 1", c.value)
	}

	frame(c, in, func() { in.Release("w") })
	frame(c, in, func() { in.Press("w") })
	if c.value != 2 {
		t.Errorf("re-pressed w: counter = %d, want 2", c.value)
	}
}

func TestCounterDoesNotUnderflow(t *testing.T) {
	in := input.NewState[string]()
	c := &counter{}

	frame(c, in, func() { in.Press("s") })
	if c.value != 0 {
		t.Errorf("counter = %d, want 0", c.value)
	}
}

func TestSpaceReleaseResets(t *testing.T) {
	in := input.NewState[string]()
	c := &counter{value: 5}

	frame(c, in, func() { in.Press("space") })
	if c.value != 5 {
		t.Fatalf("press reset the counter")
	}
	out := frame(c, in, func() { in.Release("space") })
	if c.value != 0 {
		t.Errorf("counter = %d, want 0", c.value)
	}
	if len(out) != 1 {
		t.Errorf("log = %v", out)
	}
}

func TestCtrlAndCopyPasteNotices(t *testing.T) {
	in := input.NewState[string]()
	c := &counter{}

	out := frame(c, in, func() {
		in.Press(ctrlKey)
		in.Press("v")
	})
	if len(out) != 2 || out[0] != "ctrl held" || out[1] != "c or v pressed" {
		t.Errorf("log = %v", out)
	}

	out = frame(c, in, func() {})
	if len(out) != 1 || out[0] != "ctrl held" {
		t.Errorf("second frame log = %v", out)
	}
}
