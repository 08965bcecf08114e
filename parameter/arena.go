package parameter

// Arena bounds in world units, y axis up, origin at center
const (
	ArenaLeft   = -450.0
	ArenaRight  = 450.0
	ArenaBottom = -300.0
	ArenaTop    = 300.0

	// WallThickness is the thickness of the four walls centered on the arena edges
	WallThickness = 10.0
)

// Formation clearances
const (
	// PlayerEnemyGap is the vertical clearance between player center and the lowest enemy row edge
	PlayerEnemyGap = 200.0

	// CeilingGap is the clearance between the top enemy row and the top arena edge
	CeilingGap = 20.0

	// SideGap is the horizontal clearance kept free on each side of the grid area
	SideGap = 20.0
)
