package status

import (
	"strings"
	"sync"
	"testing"
)

func TestMetricMapGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("system.shots")
	b := r.Ints.Get("system.shots")
	if a != b {
		t.Fatal("Get should return the cached pointer")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("shared pointer value = %d", b.Load())
	}
	if !r.Ints.Has("system.shots") || r.Ints.Has("missing") {
		t.Error("Has reported wrong presence")
	}
}

func TestMetricMapConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("engine.ticks").Add(1)
		}()
	}
	wg.Wait()
	if got := r.Ints.Get("engine.ticks").Load(); got != 16 {
		t.Errorf("ticks = %d, want 16", got)
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("session.score").Store(7)
	r.Bools.Get("session.paused").Store(true)
	r.Floats.Get("formation.direction").Set(-1)
	r.Strings.Get("session.phase").Store(strings.Repeat("x", MaxStringLen+5))

	snap := r.Snapshot()
	if len(snap) != 4 || r.TotalCount() != 4 {
		t.Fatalf("snapshot has %d entries", len(snap))
	}
	if snap["session.score"] != int64(7) {
		t.Errorf("score = %v", snap["session.score"])
	}
	if snap["session.paused"] != true {
		t.Errorf("paused = %v", snap["session.paused"])
	}
	if snap["formation.direction"] != -1.0 {
		t.Errorf("direction = %v", snap["formation.direction"])
	}
	if s := snap["session.phase"].(string); len(s) != MaxStringLen {
		t.Errorf("string not truncated: len %d", len(s))
	}
}
