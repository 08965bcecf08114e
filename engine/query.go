package engine

import (
	"sort"

	"github.com/lixenwraith/invaders/core"
)

// QueryBuilder provides a fluent interface for querying entities by component intersection
// The query starts with the smallest store and filters through larger ones
// Results are ordered by handle so iteration is deterministic
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	filters  []func(core.Entity) bool
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
//
// Example:
//
//	enemies := world.Query().
//	    With(world.Components.Position).
//	    With(world.Components.Velocity).
//	    Where(isEnemy).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds a component store to the query filter
// Panics if called after Execute()
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Where adds a predicate evaluated on candidates that passed every store filter
// Panics if called after Execute()
func (qb *QueryBuilder) Where(pred func(core.Entity) bool) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.filters = append(qb.filters, pred)
	return qb
}

// Execute runs the query and returns entities present in ALL stores and accepted by ALL predicates
// Calling Execute() again returns the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	// Smallest store first minimizes HasEntity checks
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].CountEntities() < qb.stores[j].CountEntities()
	})

	candidates := qb.stores[0].GetAllEntities()
	for i := 1; i < len(qb.stores) && len(candidates) > 0; i++ {
		store := qb.stores[i]
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.HasEntity(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	for _, pred := range qb.filters {
		filtered := candidates[:0]
		for _, e := range candidates {
			if pred(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	qb.results = candidates
	return qb.results
}
