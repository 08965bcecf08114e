package system

import (
	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/layout"
)

// SpawnArena creates the walls, the enemy grid and the player from a computed layout
// Called once per session; returns the player handle
func SpawnArena(w *engine.World, l layout.Layout, cfg *config.Config) core.Entity {
	c := w.Components

	for _, wall := range l.Walls {
		eb := w.NewEntity()
		engine.With(eb, c.Position, component.PositionComponent{X: wall.Rect.Center.X, Y: wall.Rect.Center.Y})
		engine.With(eb, c.Size, component.SizeComponent{Width: wall.Rect.Size.X, Height: wall.Rect.Size.Y})
		engine.With(eb, c.Role, component.RoleComponent{Role: component.RoleWall})
		engine.With(eb, c.Collider, component.ColliderComponent{})
		eb.Build()
	}

	enemySize := component.SizeComponent{Width: cfg.Enemy.Width, Height: cfg.Enemy.Height}
	for _, center := range l.Enemies {
		eb := w.NewEntity()
		engine.With(eb, c.Position, component.PositionComponent{X: center.X, Y: center.Y})
		engine.With(eb, c.Size, enemySize)
		engine.With(eb, c.Velocity, component.VelocityComponent{X: cfg.Enemy.Speed})
		engine.With(eb, c.Role, component.RoleComponent{Role: component.RoleEnemy})
		engine.With(eb, c.Collider, component.ColliderComponent{})
		eb.Build()
	}

	eb := w.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{X: l.Player.X, Y: l.Player.Y})
	engine.With(eb, c.Size, component.SizeComponent{Width: cfg.Player.Width, Height: cfg.Player.Height})
	engine.With(eb, c.Velocity, component.VelocityComponent{})
	engine.With(eb, c.Role, component.RoleComponent{Role: component.RolePlayer})
	engine.With(eb, c.Collider, component.ColliderComponent{})
	engine.With(eb, c.Lives, component.LivesComponent{Remaining: cfg.Player.Lives})
	return eb.Build()
}

// shotParams describes one projectile to spawn
type shotParams struct {
	role    component.Role
	shooter core.Entity
	x, y    float64
	vy      float64
	size    component.SizeComponent
}

// spawnProjectile creates a projectile and emits EventProjectileFired
// Projectiles carry no Collider: they are the moving side of every collision test
func spawnProjectile(w *engine.World, p shotParams) core.Entity {
	c := w.Components

	eb := w.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{X: p.x, Y: p.y})
	engine.With(eb, c.Size, p.size)
	engine.With(eb, c.Velocity, component.VelocityComponent{Y: p.vy})
	engine.With(eb, c.Role, component.RoleComponent{Role: p.role})
	engine.With(eb, c.Projectile, component.ProjectileComponent{Shooter: p.shooter, FiredTick: w.CurrentTick()})
	e := eb.Build()

	w.PushEvent(event.EventProjectileFired, &event.ProjectileFiredPayload{
		Projectile: e,
		Shooter:    p.shooter,
		Role:       p.role,
		X:          p.x,
		Y:          p.y,
	})
	return e
}

// roleIs returns a query predicate matching entities with the given role
func roleIs(store *engine.Store[component.RoleComponent], role component.Role) func(core.Entity) bool {
	return func(e core.Entity) bool {
		r, ok := store.GetComponent(e)
		return ok && r.Role == role
	}
}

// enemies returns live enemies with position and size, in handle order
func enemies(w *engine.World) []core.Entity {
	c := w.Components
	return w.Query().
		With(c.Role).
		With(c.Position).
		With(c.Size).
		Where(roleIs(c.Role, component.RoleEnemy)).
		Execute()
}

// livePlayer returns the player handle if it is still alive
func livePlayer(w *engine.World, res engine.Resources) (core.Entity, bool) {
	e := res.Player.Entity
	if e.IsZero() || !w.Alive(e) {
		return core.NoEntity, false
	}
	return e, true
}
