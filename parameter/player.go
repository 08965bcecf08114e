package parameter

// Player
const (
	PlayerWidth  = 60.0
	PlayerHeight = 20.0

	// PlayerFloorGap is the player center offset above the bottom arena edge
	PlayerFloorGap = 60.0

	// PlayerSpeed is horizontal speed in world units per second
	PlayerSpeed = 300.0

	// PlayerPadding is extra clearance from the wall inner face
	PlayerPadding = 10.0

	PlayerLives = 3
)
