package engine

import "github.com/lixenwraith/invaders/core"

// AnyStore provides type-erased operations for lifecycle management
// World uses it to strip a destroyed entity from every store without knowing T
type AnyStore interface {
	// RemoveEntity deletes the entity's component if present
	RemoveEntity(e core.Entity)

	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// CountEntities returns the number of entities with this component
	CountEntities() int

	// ClearAllComponents removes all components from this store
	ClearAllComponents()
}

// QueryableStore extends AnyStore with the iteration needed by QueryBuilder
type QueryableStore interface {
	AnyStore

	// GetAllEntities returns a copy of the entities holding this component
	GetAllEntities() []core.Entity
}
