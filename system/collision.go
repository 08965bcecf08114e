package system

import (
	"sync/atomic"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
)

// CollisionSystem tests every projectile against every collider and applies consequences
// A projectile is destroyed on its first match and skipped afterwards, so it causes at
// most one consequence per tick; a collider destroyed earlier in the pass is skipped too
type CollisionSystem struct {
	engine.SystemBase

	statHits  *atomic.Int64
	statKills *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{SystemBase: engine.NewSystemBase(world)}
	s.statHits = s.Resource.Status.Ints.Get("collision.hits")
	s.statKills = s.Resource.Status.Ints.Get("collision.enemies_destroyed")
	return s
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Update() {
	c := s.Component
	colliders := s.World.Query().With(c.Collider).With(c.Position).With(c.Size).Execute()
	projectiles := s.World.Query().With(c.Projectile).With(c.Position).With(c.Size).Execute()
	if len(colliders) == 0 || len(projectiles) == 0 {
		return
	}
	friendlyFire := s.Resource.Config.Combat.FriendlyFire

	for _, target := range colliders {
		if !s.World.Alive(target) {
			continue
		}
		targetRole := c.Role.MustGetComponent(target).Role
		targetRect := component.Bounds(c.Position.MustGetComponent(target), c.Size.MustGetComponent(target))

		for _, proj := range projectiles {
			if !s.World.Alive(proj) {
				continue
			}
			info := c.Projectile.MustGetComponent(proj)
			if info.Shooter == target {
				continue
			}
			projRole := c.Role.MustGetComponent(proj).Role
			if !friendlyFire && targetRole.Faction() != component.FactionNeutral && projRole.Faction() == targetRole.Faction() {
				continue
			}

			pos := c.Position.MustGetComponent(proj)
			if !component.Bounds(pos, c.Size.MustGetComponent(proj)).Overlaps(targetRect) {
				continue
			}

			s.resolve(proj, target, targetRole, pos)
			if !s.World.Alive(target) {
				break
			}
		}
	}
}

// resolve despawns the projectile and applies the target's consequence
func (s *CollisionSystem) resolve(proj, target core.Entity, role component.Role, at component.PositionComponent) {
	s.World.DestroyEntity(proj)
	s.statHits.Add(1)

	state := s.Resource.State
	var outcome event.Outcome

	switch role {
	case component.RolePlayer:
		outcome = s.hitPlayer(target)
	case component.RoleEnemy:
		state.AddScore(1)
		s.World.DestroyEntity(target)
		s.statKills.Add(1)
		outcome = event.OutcomeEnemyDestroyed
	default:
		outcome = event.OutcomeWallAbsorbed
	}

	s.World.PushEvent(event.EventCollision, &event.CollisionPayload{
		Projectile: proj,
		Target:     target,
		TargetRole: role,
		Outcome:    outcome,
		X:          at.X,
		Y:          at.Y,
		Score:      state.Score(),
		Lives:      state.Lives(),
	})

	if outcome == event.OutcomePlayerKilled {
		s.World.PushEvent(event.EventSessionOver, &event.SessionOverPayload{
			Score: state.Score(),
			Tick:  s.World.CurrentTick(),
		})
	}
}

// hitPlayer decrements lives, or destroys the player when the last life is hit
// A player without a Lives component counts as having one life
func (s *CollisionSystem) hitPlayer(player core.Entity) event.Outcome {
	lives, ok := s.Component.Lives.GetComponent(player)
	if !ok {
		lives.Remaining = 1
	}

	if lives.Remaining > 1 {
		lives.Remaining--
		s.Component.Lives.SetComponent(player, lives)
		s.Resource.State.LoseLife()
		return event.OutcomePlayerHit
	}

	s.World.DestroyEntity(player)
	if s.Resource.Player.Entity == player {
		s.Resource.Player.Entity = core.NoEntity
	}
	s.Resource.State.EndGame()
	return event.OutcomePlayerKilled
}
