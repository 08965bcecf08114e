package core

import "fmt"

// Entity is a generation-tagged handle into the world
// Low 32 bits hold the slot index, high 32 bits the slot generation
// Zero value means no entity
type Entity uint64

// NoEntity is the zero handle, never issued by the allocator
const NoEntity Entity = 0

// NewEntity packs an index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsZero reports whether e is the empty handle
func (e Entity) IsZero() bool {
	return e == NoEntity
}

func (e Entity) String() string {
	if e == NoEntity {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
