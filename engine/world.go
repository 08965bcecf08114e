package engine

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/event"
)

// World contains all entities and their components using typed stores
type World struct {
	mu       sync.RWMutex
	entities entityAllocator

	// Lifecycle registry, every store is stripped on DestroyEntity
	stores    map[reflect.Type]AnyStore
	storeList []AnyStore

	// Global ResourceStore
	Resources *ResourceStore

	// Typed stores used by the game systems
	Components ComponentStore

	// Direct pointers for the PushEvent hot path
	eventQueue *event.EventQueue
	tickSource *atomic.Uint64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with the game component stores registered
func NewWorld() *World {
	w := &World{
		stores:    make(map[reflect.Type]AnyStore),
		Resources: NewResourceStore(),
		systems:   make([]System, 0),
	}
	w.Components = GetComponentStore(w)
	return w
}

// GetStore returns the store for component type T, registering it on first use
// Stores obtained this way take part in entity destruction like the typed ones
func GetStore[T any](w *World) *Store[T] {
	var zero T
	t := reflect.TypeOf(&zero).Elem()

	w.mu.Lock()
	defer w.mu.Unlock()

	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	w.storeList = append(w.storeList, s)
	return s
}

// CreateEntity allocates a new live handle with no components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entities.allocate()
}

// DestroyEntity removes all components of a live entity and retires its handle
// Returns false for stale or unknown handles
func (w *World) DestroyEntity(e core.Entity) bool {
	w.mu.Lock()
	if !w.entities.release(e) {
		w.mu.Unlock()
		return false
	}
	stores := w.storeList
	w.mu.Unlock()

	for _, s := range stores {
		s.RemoveEntity(e)
	}
	return true
}

// Alive reports whether e refers to a live entity
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.entities.live
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entities.releaseAll()
	for _, s := range w.storeList {
		s.ClearAllComponents()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N, stable for equal priorities)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the world's update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// TryLock attempts to acquire the update mutex without blocking
func (w *World) TryLock() bool {
	return w.updateMutex.TryLock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// SetEventMetadata wires the queue and tick counter used by PushEvent
// Called once during session initialization
func (w *World) SetEventMetadata(q *event.EventQueue, tick *atomic.Uint64) {
	w.eventQueue = q
	w.tickSource = tick
}

// CurrentTick returns the tick being simulated, 0 before wiring
func (w *World) CurrentTick() uint64 {
	if w.tickSource == nil {
		return 0
	}
	return w.tickSource.Load()
}

// PushEvent emits a game event stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return // Not yet initialized
	}
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    w.CurrentTick(),
	})
}
