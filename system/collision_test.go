package system

import (
	"testing"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/event"
)

func collisionEvents(t *testing.T, f *fixture) []*event.CollisionPayload {
	t.Helper()
	var out []*event.CollisionPayload
	for _, ev := range f.events(event.EventCollision) {
		out = append(out, ev.Payload.(*event.CollisionPayload))
	}
	return out
}

func TestProjectileDestroysEnemy(t *testing.T) {
	f := newFixture(t)
	f.add(NewCollisionSystem)

	p := f.player(0, -240, 3)
	enemy := f.enemy(0, 100)
	proj := f.projectile(component.RolePlayerProjectile, p, 10, 90)
	f.tick()

	if f.world.Alive(enemy) {
		t.Error("enemy survived")
	}
	if f.world.Alive(proj) {
		t.Error("projectile survived")
	}
	if got := f.res.State.Score(); got != 1 {
		t.Errorf("score = %d, want 1", got)
	}

	evs := collisionEvents(t, f)
	if len(evs) != 1 {
		t.Fatalf("collision events = %d, want 1", len(evs))
	}
	if evs[0].Outcome != event.OutcomeEnemyDestroyed || evs[0].Target != enemy || evs[0].Score != 1 {
		t.Errorf("unexpected payload %+v", evs[0])
	}
}

func TestWallAbsorbsProjectile(t *testing.T) {
	f := newFixture(t)
	f.add(NewCollisionSystem)

	wall := f.wall(0, 300, 910, 10)
	proj := f.projectile(component.RolePlayerProjectile, core.NoEntity, 0, 296)
	f.tick()

	if !f.world.Alive(wall) {
		t.Error("wall destroyed")
	}
	if f.world.Alive(proj) {
		t.Error("projectile survived")
	}
	if got := f.res.State.Score(); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
	evs := collisionEvents(t, f)
	if len(evs) != 1 || evs[0].Outcome != event.OutcomeWallAbsorbed {
		t.Errorf("unexpected events %+v", evs)
	}
}

func TestLastLifeEndsSession(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Player.Lives = 1 })
	f.add(NewCollisionSystem)

	p := f.player(0, -240, 1)
	shooter := f.enemy(0, 100)
	proj := f.projectile(component.RoleEnemyProjectile, shooter, 0, -235)
	f.tick()

	if f.world.Alive(p) {
		t.Error("player survived")
	}
	if f.world.Alive(proj) {
		t.Error("projectile survived")
	}
	if !f.res.Player.Entity.IsZero() {
		t.Errorf("player resource = %v, want none", f.res.Player.Entity)
	}
	if got := f.res.State.Lives(); got != 1 {
		t.Errorf("lives = %d, want 1", got)
	}
	if f.res.State.Phase() != engine.PhaseGameOver {
		t.Errorf("phase = %v", f.res.State.Phase())
	}

	all := f.events()
	var over []event.GameEvent
	for _, ev := range all {
		if ev.Type == event.EventSessionOver {
			over = append(over, ev)
		}
	}
	if len(over) != 1 {
		t.Fatalf("session over events = %d, want 1", len(over))
	}
	if payload := over[0].Payload.(*event.SessionOverPayload); payload.Tick != 1 {
		t.Errorf("session over tick = %d, want 1", payload.Tick)
	}
}

func TestPlayerLosesLife(t *testing.T) {
	f := newFixture(t)
	f.add(NewCollisionSystem)

	p := f.player(0, -240, 3)
	f.projectile(component.RoleEnemyProjectile, core.NoEntity, 0, -235)
	f.tick()

	if !f.world.Alive(p) {
		t.Fatal("player destroyed with lives left")
	}
	lives, _ := f.world.Components.Lives.GetComponent(p)
	if lives.Remaining != 2 {
		t.Errorf("component lives = %d, want 2", lives.Remaining)
	}
	if got := f.res.State.Lives(); got != 2 {
		t.Errorf("session lives = %d, want 2", got)
	}
	evs := collisionEvents(t, f)
	if len(evs) != 1 || evs[0].Outcome != event.OutcomePlayerHit {
		t.Errorf("unexpected events %+v", evs)
	}
}

func TestProjectileHasOneConsequence(t *testing.T) {
	f := newFixture(t)
	f.add(NewCollisionSystem)

	a := f.enemy(0, 100)
	b := f.enemy(20, 100)
	f.projectile(component.RolePlayerProjectile, core.NoEntity, 10, 100)
	f.tick()

	if got := f.res.State.Score(); got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
	if f.world.Alive(a) == f.world.Alive(b) {
		t.Errorf("want exactly one survivor: a=%v b=%v", f.world.Alive(a), f.world.Alive(b))
	}
	if f.world.Alive(a) {
		t.Error("lower handle should be hit first")
	}
}

func TestTwoProjectilesOneEnemy(t *testing.T) {
	f := newFixture(t)
	f.add(NewCollisionSystem)

	enemy := f.enemy(0, 100)
	first := f.projectile(component.RolePlayerProjectile, core.NoEntity, -5, 100)
	second := f.projectile(component.RolePlayerProjectile, core.NoEntity, 5, 100)
	f.tick()

	if f.world.Alive(enemy) || f.world.Alive(first) {
		t.Error("first hit not applied")
	}
	if !f.world.Alive(second) {
		t.Error("second projectile consumed by a dead enemy")
	}
	if got := f.res.State.Score(); got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	f := newFixture(t)
	f.add(NewCollisionSystem)

	// enemy spans y 85..115, projectile spans 73..85
	enemy := f.enemy(0, 100)
	proj := f.projectile(component.RolePlayerProjectile, core.NoEntity, 0, 79)
	f.tick()

	if !f.world.Alive(enemy) || !f.world.Alive(proj) {
		t.Error("touching rectangles collided")
	}
}

func TestShooterIsNeverHit(t *testing.T) {
	f := newFixture(t)
	f.add(NewCollisionSystem)

	p := f.player(0, -240, 3)
	own := f.projectile(component.RolePlayerProjectile, p, 0, -240)
	shooter := f.enemy(0, 100)
	shot := f.projectile(component.RoleEnemyProjectile, shooter, 0, 90)
	f.tick()

	for _, e := range []core.Entity{p, own, shooter, shot} {
		if !f.world.Alive(e) {
			t.Errorf("%v destroyed by its own projectile", e)
		}
	}
	if got := f.res.State.Lives(); got != 3 {
		t.Errorf("lives = %d, want 3", got)
	}
}

func TestEnemyProjectileHitsEnemy(t *testing.T) {
	f := newFixture(t)
	f.add(NewCollisionSystem)

	// A lower enemy of a neighbouring column slid into a falling shot
	shooter := f.enemy(-200, 200)
	victim := f.enemy(0, 100)
	shot := f.projectile(component.RoleEnemyProjectile, shooter, 0, 100)
	f.tick()

	if f.world.Alive(victim) {
		t.Error("victim survived")
	}
	if f.world.Alive(shot) {
		t.Error("projectile survived")
	}
	if !f.world.Alive(shooter) {
		t.Error("shooter destroyed")
	}
	if got := f.res.State.Score(); got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
	evs := collisionEvents(t, f)
	if len(evs) != 1 || evs[0].Outcome != event.OutcomeEnemyDestroyed || evs[0].Target != victim {
		t.Errorf("unexpected events %+v", evs)
	}
}

func TestFriendlyFireDisabled(t *testing.T) {
	f := newFixture(t, func(c *config.Config) { c.Combat.FriendlyFire = false })
	f.add(NewCollisionSystem)

	shooter := f.enemy(0, 100)
	neighbour := f.enemy(40, 100)
	shot := f.projectile(component.RoleEnemyProjectile, shooter, 20, 100)
	wall := f.wall(0, -300, 910, 10)
	wallShot := f.projectile(component.RoleEnemyProjectile, shooter, 0, -296)
	f.tick()

	if !f.world.Alive(neighbour) || !f.world.Alive(shot) {
		t.Error("same-side projectile applied a consequence")
	}
	if !f.world.Alive(wall) || f.world.Alive(wallShot) {
		t.Error("walls must absorb projectiles of every side")
	}
	if got := f.res.State.Score(); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}
