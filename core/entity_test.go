package core

import "testing"

func TestEntityPacking(t *testing.T) {
	tests := []struct {
		index, gen uint32
	}{
		{0, 1},
		{1, 1},
		{42, 7},
		{^uint32(0), ^uint32(0)},
	}

	for _, tt := range tests {
		e := NewEntity(tt.index, tt.gen)
		if e.Index() != tt.index {
			t.Errorf("Index() = %d, want %d", e.Index(), tt.index)
		}
		if e.Generation() != tt.gen {
			t.Errorf("Generation() = %d, want %d", e.Generation(), tt.gen)
		}
		if e.IsZero() {
			t.Errorf("handle %v reported zero", e)
		}
	}
}

func TestEntityGenerationDistinguishesReuse(t *testing.T) {
	first := NewEntity(3, 1)
	reused := NewEntity(3, 2)
	if first == reused {
		t.Fatal("handles with different generations must differ")
	}
	if first.Index() != reused.Index() {
		t.Fatal("reused handle should share the slot index")
	}
}

func TestNoEntity(t *testing.T) {
	var e Entity
	if !e.IsZero() || e != NoEntity {
		t.Error("zero value must be NoEntity")
	}
	if e.String() != "entity(none)" {
		t.Errorf("String() = %q", e.String())
	}
}
