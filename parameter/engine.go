package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 60

	// SchedulerMaxBehindTicks is how many intervals the scheduler may lag before it resynchronizes
	SchedulerMaxBehindTicks = 2

	// FrameUpdateInterval is the terminal redraw interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023

	// StoreInitialCapacity is the preallocated entity slice size per component store
	StoreInitialCapacity = 64
)
