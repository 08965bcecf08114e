package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/status"
)

// MovementSystem integrates velocities with the fixed step, turns the enemy
// formation at the side bounds and keeps the player inside its bounds
type MovementSystem struct {
	engine.SystemBase

	statReversals *atomic.Int64
	statDirection *status.AtomicFloat
}

func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{SystemBase: engine.NewSystemBase(world)}
	s.statReversals = s.Resource.Status.Ints.Get("movement.reversals")
	s.statDirection = s.Resource.Status.Floats.Get("movement.direction")
	s.statDirection.Set(s.Resource.Formation.Direction)
	return s
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

func (s *MovementSystem) Update() {
	s.steerPlayer()
	s.integrate(s.Resource.Time.Seconds())
	s.enforceEnemyBounds()
	s.clampPlayer()
}

// steerPlayer sets player horizontal velocity from the held move actions
func (s *MovementSystem) steerPlayer() {
	player, ok := livePlayer(s.World, s.Resource)
	if !ok {
		return
	}
	in := s.Resource.Input.State
	dir := 0.0
	if in.Pressed(input.ActionMoveRight) {
		dir++
	}
	if in.Pressed(input.ActionMoveLeft) {
		dir--
	}
	s.Component.Velocity.SetComponent(player, component.VelocityComponent{X: dir * s.Resource.Config.Player.Speed})
}

// integrate advances position by velocity * dt for every entity holding both
func (s *MovementSystem) integrate(dt float64) {
	c := s.Component
	for _, e := range s.World.Query().With(c.Position).With(c.Velocity).Execute() {
		pos, _ := c.Position.GetComponent(e)
		vel, _ := c.Velocity.GetComponent(e)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		c.Position.SetComponent(e, pos)
	}
}

// enforceEnemyBounds flips every enemy's x velocity in the same tick when any enemy
// is at or past either bound, then shifts the formation back inside the bounds
// The next step moves the formation off the bound, so it cannot flip straight back
func (s *MovementSystem) enforceEnemyBounds() {
	formation := s.Resource.Formation
	bounds := s.Resource.Arena.Layout.EnemyBounds
	c := s.Component

	list := enemies(s.World)
	trigger := core.NoEntity
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, e := range list {
		pos, _ := c.Position.GetComponent(e)
		if trigger.IsZero() && bounds.Reached(pos.X, 0) {
			trigger = e
		}
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
	}
	if trigger.IsZero() {
		return
	}

	shift := 0.0
	switch {
	case maxX > bounds.Max:
		shift = bounds.Max - maxX
	case minX < bounds.Min:
		shift = bounds.Min - minX
	}

	for _, e := range list {
		if vel, ok := c.Velocity.GetComponent(e); ok {
			vel.X = -vel.X
			c.Velocity.SetComponent(e, vel)
		}
		if shift != 0 {
			pos, _ := c.Position.GetComponent(e)
			pos.X += shift
			c.Position.SetComponent(e, pos)
		}
	}
	formation.Direction = -formation.Direction
	formation.Reversals++

	s.statReversals.Add(1)
	s.statDirection.Set(formation.Direction)
	s.World.PushEvent(event.EventFormationReversed, &event.FormationReversedPayload{
		Direction: int(formation.Direction),
		Trigger:   trigger,
		Reversals: formation.Reversals,
	})
}

// clampPlayer keeps the player center within its interior bounds
func (s *MovementSystem) clampPlayer() {
	player, ok := livePlayer(s.World, s.Resource)
	if !ok {
		return
	}
	pos, ok := s.Component.Position.GetComponent(player)
	if !ok {
		return
	}
	clamped := s.Resource.Arena.Layout.PlayerBounds.Clamp(pos.X)
	if clamped != pos.X {
		pos.X = clamped
		s.Component.Position.SetComponent(player, pos)
	}
}
