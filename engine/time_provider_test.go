package engine

import (
	"sync"
	"testing"
	"time"
)

var (
	_ TimeProvider = (*MonotonicTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	if !mock.Now().Equal(start) {
		t.Fatalf("initial time = %v, want %v", mock.Now(), start)
	}

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	if want := start.Add(90 * time.Minute); !mock.Now().Equal(want) {
		t.Errorf("time = %v, want %v", mock.Now(), want)
	}
}

func TestMockTimeProviderConcurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
		}()
	}
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				mock.Advance(time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if want := start.Add(250 * time.Millisecond); !mock.Now().Equal(want) {
		t.Errorf("time = %v, want %v", mock.Now(), want)
	}
}

func TestMockTimeProviderSet(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)

	mock.Advance(time.Minute)
	mock.Set(start.Add(10 * time.Second))
	if want := start.Add(10 * time.Second); !mock.Now().Equal(want) {
		t.Errorf("time = %v, want %v", mock.Now(), want)
	}

	mock.Advance(time.Second)
	if want := start.Add(11 * time.Second); !mock.Now().Equal(want) {
		t.Errorf("time = %v, want %v", mock.Now(), want)
	}
}
