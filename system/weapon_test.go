package system

import (
	"testing"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/event"
	"github.com/lixenwraith/invaders/input"
)

func TestPlayerFireIsEdgeTriggered(t *testing.T) {
	f := newFixture(t)
	f.add(NewPlayerWeaponSystem)
	f.player(0, -240, 3)

	f.in.Press(input.ActionFire)
	for i := 0; i < 30; i++ {
		f.tick()
	}
	if n := len(f.projectiles(component.RolePlayerProjectile)); n != 1 {
		t.Fatalf("held fire spawned %d projectiles, want 1", n)
	}

	f.in.Release(input.ActionFire)
	f.tick()
	f.in.Press(input.ActionFire)
	f.tick()
	if n := len(f.projectiles(component.RolePlayerProjectile)); n != 2 {
		t.Errorf("re-press spawned %d projectiles total, want 2", n)
	}
	if got := f.res.Status.Ints.Get("weapon.player_shots").Load(); got != 2 {
		t.Errorf("player_shots = %d, want 2", got)
	}
}

func TestPlayerFireTapBetweenTicks(t *testing.T) {
	f := newFixture(t)
	f.add(NewPlayerWeaponSystem)
	f.player(0, -240, 3)

	f.in.Press(input.ActionFire)
	f.in.Release(input.ActionFire)
	f.tick()

	if n := len(f.projectiles(component.RolePlayerProjectile)); n != 1 {
		t.Errorf("tap spawned %d projectiles, want 1", n)
	}
}

func TestPlayerProjectileSpawnsAtTopEdge(t *testing.T) {
	f := newFixture(t)
	f.add(NewPlayerWeaponSystem)
	p := f.player(25, -240, 3)

	f.in.Press(input.ActionFire)
	f.tick()

	list := f.projectiles(component.RolePlayerProjectile)
	if len(list) != 1 {
		t.Fatalf("got %d projectiles", len(list))
	}
	pos := f.pos(list[0])
	if pos.X != 25 || pos.Y != -240+f.cfg.Player.Height/2 {
		t.Errorf("spawn = (%v, %v)", pos.X, pos.Y)
	}
	if v := f.vel(list[0]); v.X != 0 || v.Y != f.cfg.Projectile.PlayerSpeed {
		t.Errorf("velocity = %+v", v)
	}
	info, _ := f.world.Components.Projectile.GetComponent(list[0])
	if info.Shooter != p {
		t.Errorf("shooter = %v, want %v", info.Shooter, p)
	}

	evs := f.events(event.EventProjectileFired)
	if len(evs) != 1 {
		t.Fatalf("fired events = %d, want 1", len(evs))
	}
	if payload := evs[0].Payload.(*event.ProjectileFiredPayload); payload.Shooter != p {
		t.Errorf("payload shooter = %v", payload.Shooter)
	}
}

func TestPlayerFireWithoutPlayer(t *testing.T) {
	f := newFixture(t)
	f.add(NewPlayerWeaponSystem)

	f.in.Press(input.ActionFire)
	f.tick()

	if n := len(f.projectiles(component.RolePlayerProjectile)); n != 0 {
		t.Errorf("spawned %d projectiles with no player", n)
	}
}

// fireEveryTick makes the enemy timer expire on the first tick
func fireEveryTick(cfg *config.Config) {
	cfg.Enemy.FireInterval = cfg.DeltaTime()
}

func shooters(f *fixture) map[core.Entity]bool {
	out := make(map[core.Entity]bool)
	for _, e := range f.projectiles(component.RoleEnemyProjectile) {
		info, _ := f.world.Components.Projectile.GetComponent(e)
		out[info.Shooter] = true
	}
	return out
}

func TestEnemyFireOnlyFromColumnBottom(t *testing.T) {
	f := newFixture(t, fireEveryTick)
	f.add(NewEnemyWeaponSystem)

	low := f.enemy(0, 100)
	high := f.enemy(0, 200)
	lone := f.enemy(150, 180)
	f.tick()

	got := shooters(f)
	if !got[low] {
		t.Error("bottom enemy did not fire")
	}
	if got[high] {
		t.Error("covered enemy fired")
	}
	if !got[lone] {
		t.Error("lone enemy did not fire")
	}
	if len(got) != 2 {
		t.Errorf("shooters = %d, want 2", len(got))
	}

	for _, e := range f.projectiles(component.RoleEnemyProjectile) {
		info, _ := f.world.Components.Projectile.GetComponent(e)
		if info.Shooter != low {
			continue
		}
		pos := f.pos(e)
		if pos.X != 0 || pos.Y != 100-f.cfg.Enemy.Height/2 {
			t.Errorf("spawn = (%v, %v)", pos.X, pos.Y)
		}
		if v := f.vel(e); v.Y != -f.cfg.Projectile.EnemySpeed {
			t.Errorf("vy = %v", v.Y)
		}
	}
}

func TestEnemyFireWaitsForTimer(t *testing.T) {
	f := newFixture(t)
	f.add(NewEnemyWeaponSystem)
	f.enemy(0, 100)

	ticks := int(f.cfg.Enemy.FireInterval / f.cfg.DeltaTime())
	for i := 0; i < ticks-1; i++ {
		f.tick()
	}
	if n := len(f.projectiles(component.RoleEnemyProjectile)); n != 0 {
		t.Fatalf("fired %d before the interval", n)
	}
	for i := 0; i < 2; i++ {
		f.tick()
	}
	if n := len(f.projectiles(component.RoleEnemyProjectile)); n != 1 {
		t.Errorf("fired %d after the interval, want 1", n)
	}
	if got := f.res.Status.Ints.Get("weapon.enemy_volleys").Load(); got != 1 {
		t.Errorf("volleys = %d, want 1", got)
	}
}

func TestFrontlineTolerance(t *testing.T) {
	f := newFixture(t)
	low := f.enemy(0, 100)
	drifted := f.enemy(0.3, 200)

	if got := FrontlineEnemies(f.world, 0.5); len(got) != 1 || got[0] != low {
		t.Errorf("tolerance 0.5: got %v, want [%v]", got, low)
	}
	got := FrontlineEnemies(f.world, 0)
	if len(got) != 2 || got[0] != low || got[1] != drifted {
		t.Errorf("exact: got %v, want both", got)
	}
}

func TestFrontlineSameHeightBothFire(t *testing.T) {
	f := newFixture(t)
	f.enemy(0, 100)
	f.enemy(0, 100)

	if got := FrontlineEnemies(f.world, 0); len(got) != 2 {
		t.Errorf("got %d shooters, want 2", len(got))
	}
}
