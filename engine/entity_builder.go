package engine

import "github.com/lixenwraith/invaders/core"

// EntityBuilder provides a fluent, type-safe interface for constructing entities with components
// Components are staged and committed to their stores on Build, so a half-built entity is never visible
//
// Example usage:
//
//	e := With(With(world.NewEntity(),
//	    world.Components.Position, component.PositionComponent{X: 0, Y: -240}),
//	    world.Components.Size, component.SizeComponent{Width: 60, Height: 20}).
//	    Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	staged []func()
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved handle
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
		staged: make([]func(), 0, 8),
	}
}

// With stages a component of type T for the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.staged = append(eb.staged, func() { store.SetComponent(e, component) })
	return eb
}

// Entity returns the reserved handle before Build, for components that reference it
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build commits staged components and returns the handle
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		return eb.entity
	}
	eb.built = true
	for _, apply := range eb.staged {
		apply()
	}
	eb.staged = nil
	return eb.entity
}
