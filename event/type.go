package event

// EventType represents the type of game event
type EventType int

const (
	// EventTick is the zero type, never pushed by systems
	EventTick EventType = iota

	// EventProjectileFired signals a new projectile
	// Trigger: PlayerWeaponSystem, EnemyWeaponSystem
	// Consumer: AudioPlayer, feed | Payload: *ProjectileFiredPayload
	EventProjectileFired

	// EventFormationReversed signals the enemy formation changed direction
	// Trigger: MovementSystem
	// Consumer: feed, logging | Payload: *FormationReversedPayload
	EventFormationReversed

	// EventCollision signals a resolved projectile overlap
	// Trigger: CollisionSystem
	// Consumer: AudioPlayer, renderer, feed | Payload: *CollisionPayload
	EventCollision

	// EventSessionOver signals the player was destroyed
	// Trigger: CollisionSystem
	// Consumer: Session, front-ends, feed | Payload: *SessionOverPayload
	EventSessionOver

	// EventProjectileCulled signals a projectile left the arena
	// Trigger: CullSystem
	// Consumer: feed | Payload: *ProjectileCulledPayload
	EventProjectileCulled
)

// GameEvent is a single queued event stamped with the tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the type by name for JSON consumers
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
