package parameter

import "time"

// Enemy formation
const (
	EnemyWidth  = 50.0
	EnemyHeight = 30.0

	EnemyRows    = 4
	EnemyColumns = 8

	// EnemyGapX and EnemyGapY separate neighbouring enemies
	EnemyGapX = 20.0
	EnemyGapY = 20.0

	// EnemySpeed is the formation horizontal speed in world units per second
	EnemySpeed = 60.0

	// EnemyPadding is extra clearance from the wall inner face
	EnemyPadding = 10.0

	// EnemyFireInterval is the repeating enemy volley period
	EnemyFireInterval = 1500 * time.Millisecond

	// EnemyColumnTolerance is the x distance under which two enemies share a column
	EnemyColumnTolerance = 0.5
)
