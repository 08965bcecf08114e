package parameter

import "time"

// Logging
const (
	LogDir      = "logs"
	LogFileName = "invaders.log"

	// LogMaxSize is the size above which the log file is rotated to .old
	LogMaxSize = 10 * 1024 * 1024
)

// Terminal input
const (
	// KeyHoldInitialTimeout covers the terminal auto-repeat delay after the first press
	KeyHoldInitialTimeout = 500 * time.Millisecond

	// KeyHoldRepeatTimeout is how long a key counts as held after a repeat arrived
	KeyHoldRepeatTimeout = 100 * time.Millisecond
)

// Spectator feed
const (
	FeedAddr = "127.0.0.1:8089"
	FeedPath = "/feed"

	// FeedSendBuffer is the per-client outbound message buffer
	FeedSendBuffer = 64

	// FeedWriteTimeout bounds a single websocket write
	FeedWriteTimeout = 2 * time.Second

	// FeedSnapshotInterval is how often score snapshots are broadcast
	FeedSnapshotInterval = time.Second
)
