package parameter

// Projectiles
const (
	PlayerProjectileWidth  = 4.0
	PlayerProjectileHeight = 12.0
	PlayerProjectileSpeed  = 500.0

	EnemyProjectileWidth  = 4.0
	EnemyProjectileHeight = 12.0
	EnemyProjectileSpeed  = 250.0

	// ProjectileCullMargin is the distance beyond the outer wall faces at which projectiles are despawned
	ProjectileCullMargin = 20.0

	// FriendlyFire lets projectiles hit colliders of their own faction
	// Disabling it makes same-side shots pass through; a shooter is never hit by its own projectile
	FriendlyFire = true
)
