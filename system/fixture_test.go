package system

import (
	"testing"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/layout"
	"github.com/lixenwraith/invaders/status"
)

// fixture is a world with every game resource installed and no entities
type fixture struct {
	t     *testing.T
	cfg   *config.Config
	world *engine.World
	queue *event.EventQueue
	in    *input.State[input.Action]
	res   engine.Resources
}

func newFixture(t *testing.T, mutate ...func(*config.Config)) *fixture {
	t.Helper()
	cfg := config.Default()
	for _, m := range mutate {
		m(cfg)
	}
	l, err := layout.Compute(cfg.Layout())
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	w := engine.NewWorld()
	state := engine.NewGameState(cfg.Player.Lives)
	q := event.NewEventQueue()
	w.SetEventMetadata(q, state.TickCounter())
	in := input.NewState[input.Action]()

	engine.AddResource(w.Resources, &engine.TimeResource{DeltaTime: cfg.DeltaTime()})
	engine.AddResource(w.Resources, cfg)
	engine.AddResource(w.Resources, &engine.ArenaResource{Layout: l})
	engine.AddResource(w.Resources, &engine.FormationResource{Direction: 1})
	engine.AddResource(w.Resources, &engine.PlayerResource{})
	engine.AddResource(w.Resources, &engine.InputResource{State: in})
	engine.AddResource(w.Resources, state)
	engine.AddResource(w.Resources, status.NewRegistry())

	return &fixture{
		t:     t,
		cfg:   cfg,
		world: w,
		queue: q,
		in:    in,
		res:   engine.GetResources(w),
	}
}

func (f *fixture) add(ctors ...func(*engine.World) engine.System) {
	for _, ctor := range ctors {
		f.world.AddSystem(ctor(f.world))
	}
}

// tick runs one fixed step the way the session does
func (f *fixture) tick() {
	f.res.Time.Tick = f.res.State.IncrementTicks()
	f.in.Latch()
	f.world.Update()
	f.in.Advance()
}

func (f *fixture) events(types ...event.EventType) []event.GameEvent {
	all := f.queue.Consume()
	if len(types) == 0 {
		return all
	}
	var out []event.GameEvent
	for _, ev := range all {
		for _, t := range types {
			if ev.Type == t {
				out = append(out, ev)
			}
		}
	}
	return out
}

func (f *fixture) spawn(role component.Role, x, y, w, h, vx, vy float64, collider bool) core.Entity {
	c := f.world.Components
	eb := f.world.NewEntity()
	engine.With(eb, c.Position, component.PositionComponent{X: x, Y: y})
	engine.With(eb, c.Size, component.SizeComponent{Width: w, Height: h})
	engine.With(eb, c.Role, component.RoleComponent{Role: role})
	if vx != 0 || vy != 0 || role != component.RoleWall {
		engine.With(eb, c.Velocity, component.VelocityComponent{X: vx, Y: vy})
	}
	if collider {
		engine.With(eb, c.Collider, component.ColliderComponent{})
	}
	return eb.Build()
}

func (f *fixture) enemy(x, y float64) core.Entity {
	return f.spawn(component.RoleEnemy, x, y, f.cfg.Enemy.Width, f.cfg.Enemy.Height, f.cfg.Enemy.Speed, 0, true)
}

func (f *fixture) wall(x, y, w, h float64) core.Entity {
	return f.spawn(component.RoleWall, x, y, w, h, 0, 0, true)
}

func (f *fixture) player(x, y float64, lives int) core.Entity {
	e := f.spawn(component.RolePlayer, x, y, f.cfg.Player.Width, f.cfg.Player.Height, 0, 0, true)
	f.world.Components.Lives.SetComponent(e, component.LivesComponent{Remaining: lives})
	f.res.Player.Entity = e
	return e
}

func (f *fixture) projectile(role component.Role, shooter core.Entity, x, y float64) core.Entity {
	vy := f.cfg.Projectile.PlayerSpeed
	if role == component.RoleEnemyProjectile {
		vy = -f.cfg.Projectile.EnemySpeed
	}
	e := f.spawn(role, x, y, 4, 12, 0, vy, false)
	f.world.Components.Projectile.SetComponent(e, component.ProjectileComponent{Shooter: shooter})
	return e
}

func (f *fixture) pos(e core.Entity) component.PositionComponent {
	f.t.Helper()
	p, ok := f.world.Components.Position.GetComponent(e)
	if !ok {
		f.t.Fatalf("%v has no position", e)
	}
	return p
}

func (f *fixture) vel(e core.Entity) component.VelocityComponent {
	f.t.Helper()
	v, ok := f.world.Components.Velocity.GetComponent(e)
	if !ok {
		f.t.Fatalf("%v has no velocity", e)
	}
	return v
}

func (f *fixture) projectiles(role component.Role) []core.Entity {
	c := f.world.Components
	return f.world.Query().With(c.Projectile).With(c.Role).Where(roleIs(c.Role, role)).Execute()
}
