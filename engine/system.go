package engine

// System is a per-tick update step
// Systems run in ascending Priority order inside World.UpdateLocked
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// SystemBase provides common dependency for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  Resources
	Component ComponentStore
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor, after the session resources are installed
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  GetResources(w),
		Component: w.Components,
	}
}
