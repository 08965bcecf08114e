package engine

import (
	"sync"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/parameter"
)

// Store is a generic container for a specific component type T
// Sparse set: dense entity slice for iteration, index map for O(1) removal
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	dense      []core.Entity
	index      map[core.Entity]int
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		dense:      make([]core.Entity, 0, parameter.StoreInitialCapacity),
		index:      make(map[core.Entity]int),
	}
}

// SetComponent inserts or updates a component for an entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.index[e] = len(s.dense)
		s.dense = append(s.dense, e)
	}
	s.components[e] = val
}

// GetComponent retrieves a component for an entity
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// MustGetComponent retrieves a component, returning the zero value when absent
func (s *Store[T]) MustGetComponent(e core.Entity) T {
	val, _ := s.GetComponent(e)
	return val
}

// RemoveEntity deletes the component of an entity, swap-removing from the dense slice
func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, exists := s.index[e]
	if !exists {
		return
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[i] = moved
	s.index[moved] = i
	s.dense = s.dense[:last]

	delete(s.index, e)
	delete(s.components, e)
}

// HasEntity checks if entity has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// GetAllEntities returns all entities with this component type
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.dense))
	copy(result, s.dense)
	return result
}

// CountEntities returns number of entities with this component
func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.dense)
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.dense = make([]core.Entity, 0, parameter.StoreInitialCapacity)
	s.index = make(map[core.Entity]int)
}
