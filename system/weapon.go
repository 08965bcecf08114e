package system

import (
	"sync/atomic"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/vmath"
)

// PlayerWeaponSystem fires one projectile per fire press edge
// Holding fire does not repeat; there is no cooldown beyond the edge
type PlayerWeaponSystem struct {
	engine.SystemBase

	statShots *atomic.Int64
}

func NewPlayerWeaponSystem(world *engine.World) engine.System {
	s := &PlayerWeaponSystem{SystemBase: engine.NewSystemBase(world)}
	s.statShots = s.Resource.Status.Ints.Get("weapon.player_shots")
	return s
}

func (s *PlayerWeaponSystem) Name() string { return "player_weapon" }

func (s *PlayerWeaponSystem) Priority() int { return parameter.PriorityPlayerWeapon }

func (s *PlayerWeaponSystem) Update() {
	if !s.Resource.Input.State.JustPressed(input.ActionFire) {
		return
	}
	player, ok := livePlayer(s.World, s.Resource)
	if !ok {
		return
	}

	pos, _ := s.Component.Position.GetComponent(player)
	size, _ := s.Component.Size.GetComponent(player)
	proj := s.Resource.Config.Projectile

	spawnProjectile(s.World, shotParams{
		role:    component.RolePlayerProjectile,
		shooter: player,
		x:       pos.X,
		y:       pos.Y + size.HalfHeight(),
		vy:      proj.PlayerSpeed,
		size:    component.SizeComponent{Width: proj.PlayerWidth, Height: proj.PlayerHeight},
	})
	s.statShots.Add(1)
}

// EnemyWeaponSystem fires a volley whenever its repeating timer expires
// Only the lowest enemy of each column fires
type EnemyWeaponSystem struct {
	engine.SystemBase

	timer *engine.Timer

	statShots   *atomic.Int64
	statVolleys *atomic.Int64
}

func NewEnemyWeaponSystem(world *engine.World) engine.System {
	s := &EnemyWeaponSystem{SystemBase: engine.NewSystemBase(world)}
	s.timer = engine.NewTimer(s.Resource.Config.Enemy.FireInterval, engine.TimerRepeating)
	s.statShots = s.Resource.Status.Ints.Get("weapon.enemy_shots")
	s.statVolleys = s.Resource.Status.Ints.Get("weapon.enemy_volleys")
	return s
}

func (s *EnemyWeaponSystem) Name() string { return "enemy_weapon" }

func (s *EnemyWeaponSystem) Priority() int { return parameter.PriorityEnemyWeapon }

// Update fires at most one volley per tick even if a long step crossed several expiries
func (s *EnemyWeaponSystem) Update() {
	if !s.timer.Tick(s.Resource.Time.DeltaTime).JustFinished() {
		return
	}

	shooters := FrontlineEnemies(s.World, s.Resource.Config.Enemy.ColumnTolerance)
	if len(shooters) == 0 {
		return
	}
	s.statVolleys.Add(1)

	proj := s.Resource.Config.Projectile
	for _, e := range shooters {
		pos, _ := s.Component.Position.GetComponent(e)
		size, _ := s.Component.Size.GetComponent(e)
		spawnProjectile(s.World, shotParams{
			role:    component.RoleEnemyProjectile,
			shooter: e,
			x:       pos.X,
			y:       pos.Y - size.HalfHeight(),
			vy:      -proj.EnemySpeed,
			size:    component.SizeComponent{Width: proj.EnemyWidth, Height: proj.EnemyHeight},
		})
	}
	s.statShots.Add(int64(len(shooters)))
}

// FrontlineEnemies returns enemies with a clear line of fire, in handle order
// Enemy A is suppressed when another enemy B shares its column (|Ax-Bx| <= tolerance,
// tolerance 0 meaning exact equality) and sits strictly lower
func FrontlineEnemies(w *engine.World, tolerance float64) []core.Entity {
	all := enemies(w)
	positions := make([]component.PositionComponent, len(all))
	for i, e := range all {
		positions[i], _ = w.Components.Position.GetComponent(e)
	}

	out := make([]core.Entity, 0, len(all))
	for i, a := range all {
		blocked := false
		for j := range all {
			if i == j {
				continue
			}
			if vmath.ApproxEqual(positions[i].X, positions[j].X, tolerance) && positions[j].Y < positions[i].Y {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, a)
		}
	}
	return out
}
