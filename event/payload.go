package event

import (
	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/core"
)

// Outcome tags the consequence of a resolved collision
type Outcome uint8

const (
	OutcomeWallAbsorbed Outcome = iota
	OutcomeEnemyDestroyed
	OutcomePlayerHit
	OutcomePlayerKilled
)

var outcomeNames = [...]string{
	OutcomeWallAbsorbed:   "wall_absorbed",
	OutcomeEnemyDestroyed: "enemy_destroyed",
	OutcomePlayerHit:      "player_hit",
	OutcomePlayerKilled:   "player_killed",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// MarshalText encodes the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ProjectileFiredPayload describes a spawned projectile
type ProjectileFiredPayload struct {
	Projectile core.Entity    `json:"projectile"`
	Shooter    core.Entity    `json:"shooter"`
	Role       component.Role `json:"role"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
}

// FormationReversedPayload carries the new formation heading
type FormationReversedPayload struct {
	Direction int         `json:"direction"` // -1 left, 1 right
	Trigger   core.Entity `json:"trigger"`   // First enemy found past the bound
	Reversals int         `json:"reversals"`
}

// CollisionPayload describes one resolved projectile overlap
type CollisionPayload struct {
	Projectile core.Entity    `json:"projectile"`
	Target     core.Entity    `json:"target"`
	TargetRole component.Role `json:"target_role"`
	Outcome    Outcome        `json:"outcome"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Score      int64          `json:"score"`
	Lives      int64          `json:"lives"`
}

// SessionOverPayload carries the final scoreboard
type SessionOverPayload struct {
	Score int64  `json:"score"`
	Tick  uint64 `json:"tick"`
}

// ProjectileCulledPayload describes a projectile removed outside the arena
type ProjectileCulledPayload struct {
	Projectile core.Entity `json:"projectile"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
}
