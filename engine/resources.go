package engine

import (
	"reflect"
	"sync"
	"time"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/layout"
	"github.com/lixenwraith/invaders/status"
)

// ResourceStore is a thread-safe container for global game resources
// Systems reach shared data (Time, Config, Input) without coupling to the session
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its static type
// Pointer types are recommended so systems observe in-place mutation
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[typeKey[T]()] = resource
}

// GetResource retrieves a resource of type T
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[typeKey[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Used for core resources that must exist once the session is built
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("Required resource not found: " + typeKey[T]().String())
	}
	return res
}

func typeKey[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(&zero).Elem()
}

// --- Core Resources ---

// TimeResource carries the fixed step of the tick being simulated
type TimeResource struct {
	// DeltaTime is the configured fixed step, never measured wall time
	DeltaTime time.Duration

	// Tick is the 1-based index of the tick being simulated
	Tick uint64
}

// Seconds returns DeltaTime in seconds for integration
func (t *TimeResource) Seconds() float64 {
	return t.DeltaTime.Seconds()
}

// ArenaResource holds the computed layout: walls, spawn points and interior bounds
type ArenaResource struct {
	Layout layout.Layout
}

// FormationResource is the single shared heading of the enemy formation
type FormationResource struct {
	Direction float64 // +1 right, -1 left
	Reversals int
}

// PlayerResource tracks the player handle, NoEntity once destroyed
type PlayerResource struct {
	Entity core.Entity
}

// InputResource exposes the latched action state for the tick
type InputResource struct {
	State *input.State[input.Action]
}

// Resources bundles cached resource pointers for systems
type Resources struct {
	Time      *TimeResource
	Config    *config.Config
	Arena     *ArenaResource
	Formation *FormationResource
	Player    *PlayerResource
	Input     *InputResource
	State     *GameState
	Status    *status.Registry
}

// GetResources resolves every game resource from the world, panicking on a missing one
func GetResources(w *World) Resources {
	rs := w.Resources
	return Resources{
		Time:      MustGetResource[*TimeResource](rs),
		Config:    MustGetResource[*config.Config](rs),
		Arena:     MustGetResource[*ArenaResource](rs),
		Formation: MustGetResource[*FormationResource](rs),
		Player:    MustGetResource[*PlayerResource](rs),
		Input:     MustGetResource[*InputResource](rs),
		State:     MustGetResource[*GameState](rs),
		Status:    MustGetResource[*status.Registry](rs),
	}
}
