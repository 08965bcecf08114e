package input

import "sync"

// State tracks level and edge state for buttons of type T
// Writers (front-end goroutines) call Press and Release at any time
// The tick owner calls Latch before reading and Advance after, so every reader in one
// tick sees the same snapshot and no edge is lost between ticks
type State[T comparable] struct {
	mu sync.Mutex

	held            map[T]bool
	pendingPressed  map[T]bool
	pendingReleased map[T]bool

	frameHeld     map[T]bool
	framePressed  map[T]bool
	frameReleased map[T]bool
}

// NewState creates an empty State
func NewState[T comparable]() *State[T] {
	return &State[T]{
		held:            make(map[T]bool),
		pendingPressed:  make(map[T]bool),
		pendingReleased: make(map[T]bool),
		frameHeld:       make(map[T]bool),
		framePressed:    make(map[T]bool),
		frameReleased:   make(map[T]bool),
	}
}

// Press marks k down, recording a press edge if it was up
func (s *State[T]) Press(k T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.held[k] {
		s.held[k] = true
		s.pendingPressed[k] = true
	}
}

// Release marks k up, recording a release edge if it was down
func (s *State[T]) Release(k T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.held[k] {
		delete(s.held, k)
		s.pendingReleased[k] = true
	}
}

// Set presses or releases k
func (s *State[T]) Set(k T, down bool) {
	if down {
		s.Press(k)
	} else {
		s.Release(k)
	}
}

// ReleaseAll releases every held button
func (s *State[T]) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.held {
		s.pendingReleased[k] = true
	}
	s.held = make(map[T]bool)
}

// Latch snapshots level state and the edges accumulated since the previous Latch
func (s *State[T]) Latch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frameHeld = make(map[T]bool, len(s.held))
	for k := range s.held {
		s.frameHeld[k] = true
	}
	s.framePressed, s.pendingPressed = s.pendingPressed, make(map[T]bool)
	s.frameReleased, s.pendingReleased = s.pendingReleased, make(map[T]bool)
}

// Advance ends the frame: edges are consumed, level state persists until the next Latch
func (s *State[T]) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.framePressed)
	clear(s.frameReleased)
}

// Pressed reports whether k was held at the last Latch
func (s *State[T]) Pressed(k T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameHeld[k]
}

// JustPressed reports a press edge in the current frame
// A tap shorter than a tick still registers here even though Pressed is false
func (s *State[T]) JustPressed(k T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.framePressed[k]
}

// JustReleased reports a release edge in the current frame
func (s *State[T]) JustReleased(k T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameReleased[k]
}

// AnyPressed reports whether any of keys is held
func (s *State[T]) AnyPressed(keys ...T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		if s.frameHeld[k] {
			return true
		}
	}
	return false
}

// AnyJustPressed reports whether any of keys has a press edge this frame
func (s *State[T]) AnyJustPressed(keys ...T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		if s.framePressed[k] {
			return true
		}
	}
	return false
}
