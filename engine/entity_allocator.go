package engine

import "github.com/lixenwraith/invaders/core"

// entityAllocator issues generation-tagged handles over reusable slots
// A destroyed slot bumps its generation so stale handles never alias the next occupant
type entityAllocator struct {
	generations []uint32
	alive       []bool
	free        []uint32 // LIFO for deterministic reuse
	live        int
}

func (a *entityAllocator) allocate() core.Entity {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.alive[idx] = true
		a.live++
		return core.NewEntity(idx, a.generations[idx])
	}

	idx := uint32(len(a.generations))
	a.generations = append(a.generations, 1)
	a.alive = append(a.alive, true)
	a.live++
	return core.NewEntity(idx, 1)
}

// release frees the slot of a live handle; stale or unknown handles are ignored
func (a *entityAllocator) release(e core.Entity) bool {
	if !a.isAlive(e) {
		return false
	}
	idx := e.Index()
	a.alive[idx] = false
	a.generations[idx]++
	if a.generations[idx] == 0 {
		a.generations[idx] = 1 // Generation 0 is reserved for NoEntity
	}
	a.free = append(a.free, idx)
	a.live--
	return true
}

func (a *entityAllocator) isAlive(e core.Entity) bool {
	if e.IsZero() {
		return false
	}
	idx := e.Index()
	if int(idx) >= len(a.generations) {
		return false
	}
	return a.alive[idx] && a.generations[idx] == e.Generation()
}

// releaseAll frees every live slot, keeping generations so old handles stay stale
func (a *entityAllocator) releaseAll() {
	for idx := len(a.alive) - 1; idx >= 0; idx-- {
		if a.alive[idx] {
			a.release(core.NewEntity(uint32(idx), a.generations[idx]))
		}
	}
}
