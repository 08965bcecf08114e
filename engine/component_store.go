package engine

import "github.com/lixenwraith/invaders/component"

// ComponentStore provides cached pointers to the typed game stores
// Initialized once per system to eliminate runtime map lookup
type ComponentStore struct {
	// Spatial
	Position *Store[component.PositionComponent]
	Size     *Store[component.SizeComponent]
	Velocity *Store[component.VelocityComponent]

	// Gameplay
	Role       *Store[component.RoleComponent]
	Collider   *Store[component.ColliderComponent]
	Lives      *Store[component.LivesComponent]
	Projectile *Store[component.ProjectileComponent]
}

// GetComponentStore populates ComponentStore from world
// Pointers remain valid for the world's lifetime
func GetComponentStore(w *World) ComponentStore {
	return ComponentStore{
		Position: GetStore[component.PositionComponent](w),
		Size:     GetStore[component.SizeComponent](w),
		Velocity: GetStore[component.VelocityComponent](w),

		Role:       GetStore[component.RoleComponent](w),
		Collider:   GetStore[component.ColliderComponent](w),
		Lives:      GetStore[component.LivesComponent](w),
		Projectile: GetStore[component.ProjectileComponent](w),
	}
}
