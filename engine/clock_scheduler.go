package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/parameter"
)

// TickFunc advances the simulation by exactly one fixed step
type TickFunc func()

// ClockScheduler drives a TickFunc at a fixed rate on pausable game time
// Deadlines advance by the interval so jitter does not accumulate; after falling
// more than SchedulerMaxBehindTicks intervals behind, the schedule resynchronizes
// instead of bursting to catch up
type ClockScheduler struct {
	tick  TickFunc
	clock *PausableClock

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.RWMutex

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	// Signals a completed tick, non-blocking with capacity 1
	updateDone chan<- struct{}
}

// NewClockScheduler creates a scheduler and returns it with the tick-completed channel
func NewClockScheduler(clock *PausableClock, tickInterval time.Duration, tick TickFunc) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		tick:         tick,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		updateDone:   updateDone,
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		// core.Go gives centralized crash handling
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for the in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.Load() {
			cs.wg.Wait()
			cs.running.Store(false)
		}
	})
}

// Pause freezes game time; no ticks run until Resume
func (cs *ClockScheduler) Pause() {
	cs.clock.Pause()
}

// Resume continues ticking from the frozen deadline
func (cs *ClockScheduler) Resume() {
	cs.clock.Resume()
}

// TogglePause flips the pause state and returns true if now paused
func (cs *ClockScheduler) TogglePause() bool {
	if cs.clock.IsPaused() {
		cs.clock.Resume()
		return false
	}
	cs.clock.Pause()
	return true
}

// IsPaused returns current pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.clock.IsPaused()
}

// TickCount returns the number of ticks run by this scheduler
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// schedulerLoop runs the main scheduling loop with pause awareness
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		var sleepDuration time.Duration

		if cs.clock.IsPaused() {
			// Longer sleep while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			gameNow := cs.clock.Now()

			cs.mu.RLock()
			deadline := cs.nextTickDeadline
			cs.mu.RUnlock()

			if !gameNow.Before(deadline) {
				cs.tick()
				cs.tickCount.Add(1)

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				maxBehind := cs.tickInterval * parameter.SchedulerMaxBehindTicks
				if gameNow.Sub(cs.nextTickDeadline) > maxBehind {
					cs.nextTickDeadline = gameNow.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}

				sleepDuration = deadline.Sub(cs.clock.Now())
			} else {
				sleepDuration = deadline.Sub(gameNow)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.stopChan:
				return
			}
		}
	}
}
