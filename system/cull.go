package system

import (
	"sync/atomic"

	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/vmath"
)

// CullSystem removes projectiles that escaped the arena
// Walls absorb projectiles in normal play; this reclaims anything that tunnels through
// a wall at low tick rates
type CullSystem struct {
	engine.SystemBase

	limit vmath.Rect

	statCulled *atomic.Int64
	statLive   *atomic.Int64
}

// NewCullSystem creates a new cull system bounded by the outer wall faces plus the cull margin
func NewCullSystem(world *engine.World) engine.System {
	s := &CullSystem{SystemBase: engine.NewSystemBase(world)}
	s.limit = s.Resource.Arena.Layout.OuterRect().Expand(s.Resource.Config.Projectile.CullMargin)
	s.statCulled = s.Resource.Status.Ints.Get("cull.projectiles")
	s.statLive = s.Resource.Status.Ints.Get("projectiles.live")
	return s
}

func (s *CullSystem) Name() string { return "cull" }

// Priority runs last in the tick so the collision pass sees every projectile first
func (s *CullSystem) Priority() int { return parameter.PriorityCull }

func (s *CullSystem) Update() {
	c := s.Component
	for _, e := range s.World.Query().With(c.Projectile).With(c.Position).Execute() {
		pos := c.Position.MustGetComponent(e)
		if s.limit.Contains(pos.Vec()) {
			continue
		}
		s.World.DestroyEntity(e)
		s.statCulled.Add(1)
		s.World.PushEvent(event.EventProjectileCulled, &event.ProjectileCulledPayload{
			Projectile: e,
			X:          pos.X,
			Y:          pos.Y,
		})
	}
	s.statLive.Store(int64(c.Projectile.CountEntities()))
}
