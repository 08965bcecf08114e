package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a hand-driven time source for scheduler and clock tests
// Time only moves through Advance or Set, so pause arithmetic is exact
type MockTimeProvider struct {
	base   time.Time
	offset atomic.Int64 // Nanoseconds past base
}

// NewMockTimeProvider starts the source at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(time.Duration(m.offset.Load()))
}

// Advance moves time forward by d; safe to call while the scheduler reads Now
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// Set jumps to t, which may lie before the current reading
func (m *MockTimeProvider) Set(t time.Time) {
	m.offset.Store(int64(t.Sub(m.base)))
}
