package parameter

// System priorities, lower runs first within a tick
const (
	PriorityPlayerWeapon = 10
	PriorityEnemyWeapon  = 20
	PriorityMovement     = 30
	PriorityCollision    = 40
	PriorityCull         = 50
)
