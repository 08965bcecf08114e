package component

// Role determines collision consequences and system eligibility
type Role uint8

const (
	RolePlayer Role = iota
	RoleEnemy
	RoleWall
	RolePlayerProjectile
	RoleEnemyProjectile
)

var roleNames = [...]string{
	RolePlayer:           "player",
	RoleEnemy:            "enemy",
	RoleWall:             "wall",
	RolePlayerProjectile: "player_projectile",
	RoleEnemyProjectile:  "enemy_projectile",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// IsProjectile reports whether the role belongs to a projectile
func (r Role) IsProjectile() bool {
	return r == RolePlayerProjectile || r == RoleEnemyProjectile
}

// Faction groups roles into the side they fight for
type Faction uint8

const (
	FactionNeutral Faction = iota
	FactionPlayer
	FactionEnemy
)

// Faction returns the side of the role; walls are neutral
func (r Role) Faction() Faction {
	switch r {
	case RolePlayer, RolePlayerProjectile:
		return FactionPlayer
	case RoleEnemy, RoleEnemyProjectile:
		return FactionEnemy
	default:
		return FactionNeutral
	}
}

// RoleComponent tags an entity with its role
type RoleComponent struct {
	Role Role
}

// ColliderComponent marks an entity as a collision target for projectiles
type ColliderComponent struct{}

// MarshalText encodes the role by name
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
