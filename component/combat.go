package component

import "github.com/lixenwraith/invaders/core"

// LivesComponent holds remaining lives, carried by the player only
type LivesComponent struct {
	Remaining int
}

// ProjectileComponent marks a straight-flying projectile
type ProjectileComponent struct {
	Shooter   core.Entity // Firing entity, may no longer be alive
	FiredTick uint64
}
