// Package session assembles one game: world, resources, systems and event routing
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/layout"
	"github.com/lixenwraith/invaders/status"
	"github.com/lixenwraith/invaders/system"
)

// Session owns the world of a single game from setup to game over
// Tick is called by one driver; every other method is safe from any goroutine
type Session struct {
	id     uuid.UUID
	cfg    *config.Config
	logger *zap.Logger

	world  *engine.World
	res    engine.Resources
	layout layout.Layout

	queue  *event.EventQueue
	router *event.Router

	done     chan struct{}
	doneOnce sync.Once
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the session logger; the default discards everything
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHandler registers an event handler before the first tick
func WithHandler(h event.Handler) Option {
	return func(s *Session) {
		s.router.Register(h)
	}
}

// New validates cfg, computes the layout and spawns the arena
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	l, err := layout.Compute(cfg.Layout())
	if err != nil {
		return nil, fmt.Errorf("compute layout: %w", err)
	}

	s := &Session{
		id:     uuid.New(),
		cfg:    cfg,
		logger: zap.NewNop(),
		world:  engine.NewWorld(),
		layout: l,
		queue:  event.NewEventQueue(),
		done:   make(chan struct{}),
	}
	s.router = event.NewRouter(s.queue)

	state := engine.NewGameState(cfg.Player.Lives)
	s.world.SetEventMetadata(s.queue, state.TickCounter())

	rs := s.world.Resources
	engine.AddResource(rs, &engine.TimeResource{DeltaTime: cfg.DeltaTime()})
	engine.AddResource(rs, cfg)
	engine.AddResource(rs, &engine.ArenaResource{Layout: l})
	engine.AddResource(rs, &engine.FormationResource{Direction: 1})
	engine.AddResource(rs, &engine.PlayerResource{})
	engine.AddResource(rs, &engine.InputResource{State: input.NewState[input.Action]()})
	engine.AddResource(rs, state)
	engine.AddResource(rs, status.NewRegistry())
	s.res = engine.GetResources(s.world)

	s.res.Player.Entity = system.SpawnArena(s.world, l, cfg)

	s.world.AddSystem(system.NewPlayerWeaponSystem(s.world))
	s.world.AddSystem(system.NewEnemyWeaponSystem(s.world))
	s.world.AddSystem(system.NewMovementSystem(s.world))
	s.world.AddSystem(system.NewCollisionSystem(s.world))
	s.world.AddSystem(system.NewCullSystem(s.world))

	for _, opt := range opts {
		opt(s)
	}
	s.router.Register(newLogHandler(s))

	s.res.Status.Strings.Get("session.id").Store(s.id.String()[:8])
	s.publishStatus()

	s.logger.Info("session started",
		zap.String("session", s.id.String()),
		zap.Int("enemies", len(l.Enemies)),
		zap.Int("rows", l.Rows),
		zap.Int("columns", l.Columns),
		zap.Int("lives", cfg.Player.Lives),
		zap.Duration("step", cfg.DeltaTime()),
	)
	return s, nil
}

// Tick advances the simulation by one fixed step and dispatches the events it produced
// Returns false once the game is over; later calls do nothing
func (s *Session) Tick() bool {
	advanced := false
	s.world.RunSafe(func() {
		if s.res.State.IsGameOver() {
			return
		}
		advanced = true

		s.res.Time.Tick = s.res.State.IncrementTicks()
		in := s.res.Input.State
		in.Latch()
		s.world.UpdateLocked()
		in.Advance()

		s.router.DispatchAll()
		s.publishStatus()
	})

	if s.res.State.IsGameOver() {
		s.doneOnce.Do(func() { close(s.done) })
	}
	return advanced
}

func (s *Session) publishStatus() {
	st := s.res.Status
	st.Ints.Get("session.score").Store(s.res.State.Score())
	st.Ints.Get("session.lives").Store(s.res.State.Lives())
	st.Ints.Get("session.ticks").Store(int64(s.res.State.Ticks()))
	st.Ints.Get("session.entities").Store(int64(s.world.EntityCount()))
	st.Strings.Get("session.phase").Store(s.res.State.Phase().String())
	st.Bools.Get("session.over").Store(s.res.State.IsGameOver())
}

// RegisterHandler adds an event handler; handlers run on the ticking goroutine
func (s *Session) RegisterHandler(h event.Handler) {
	s.world.RunSafe(func() { s.router.Register(h) })
}

// Input returns the action state front-ends write into
func (s *Session) Input() *input.State[input.Action] { return s.res.Input.State }

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Config() *config.Config { return s.cfg }

func (s *Session) Score() int64 { return s.res.State.Score() }

func (s *Session) Lives() int64 { return s.res.State.Lives() }

func (s *Session) Phase() engine.GamePhase { return s.res.State.Phase() }

func (s *Session) Ticks() uint64 { return s.res.State.Ticks() }

// Done is closed once the game is over
func (s *Session) Done() <-chan struct{} { return s.done }

// Layout returns the computed arena layout
func (s *Session) Layout() layout.Layout { return s.layout }

// Status returns the telemetry registry
func (s *Session) Status() *status.Registry { return s.res.Status }

// World exposes the entity store; callers outside Tick must hold the world lock
func (s *Session) World() *engine.World { return s.world }

// Player returns the live player handle or NoEntity
func (s *Session) Player() core.Entity {
	var e core.Entity
	s.world.RunSafe(func() { e = s.res.Player.Entity })
	return e
}

// Formation returns the current enemy heading (+1 right, -1 left)
func (s *Session) Formation() float64 {
	var d float64
	s.world.RunSafe(func() { d = s.res.Formation.Direction })
	return d
}
