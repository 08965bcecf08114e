package input

import (
	"sync"
	"time"
)

// HoldEmulator derives key releases for terminals, which report presses and repeats only
// A key stays held while repeats keep arriving; the first press gets a longer window
// to cover the terminal's auto-repeat delay, so a held key never re-triggers a press edge
type HoldEmulator[T comparable] struct {
	mu      sync.Mutex
	state   *State[T]
	initial time.Duration
	repeat  time.Duration
	keys    map[T]holdEntry
}

type holdEntry struct {
	last     time.Time
	repeated bool
}

// NewHoldEmulator wraps state with the given first-press and repeat windows
func NewHoldEmulator[T comparable](state *State[T], initial, repeat time.Duration) *HoldEmulator[T] {
	return &HoldEmulator[T]{
		state:   state,
		initial: initial,
		repeat:  repeat,
		keys:    make(map[T]holdEntry),
	}
}

// Observe records a terminal key report at now
func (h *HoldEmulator[T]) Observe(k T, now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.keys[k]; ok {
		h.keys[k] = holdEntry{last: now, repeated: true}
		return
	}
	h.keys[k] = holdEntry{last: now}
	h.state.Press(k)
}

// Expire releases keys whose window elapsed; call it at least once per tick
func (h *HoldEmulator[T]) Expire(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for k, entry := range h.keys {
		window := h.initial
		if entry.repeated {
			window = h.repeat
		}
		if now.Sub(entry.last) > window {
			delete(h.keys, k)
			h.state.Release(k)
		}
	}
}

// ReleaseAll drops every emulated hold, used on focus loss or pause
func (h *HoldEmulator[T]) ReleaseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k := range h.keys {
		h.state.Release(k)
	}
	h.keys = make(map[T]holdEntry)
}

// Held reports whether k is currently emulated as held
func (h *HoldEmulator[T]) Held(k T) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.keys[k]
	return ok
}
