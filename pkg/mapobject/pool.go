package mapobject

import "github.com/mapron/freeheroes-rmg/pkg/rng"

// Pool is a shared, dedup-on-draw catalog: once an id is drawn it leaves
// the normal pool. When carryOverEnabled is set, a rejection (spec.md
// §4.4's onReject callback) returns the id to carryOver, a priority queue
// drained before fresh draws; this is the behavior ArtifactPool's
// SubPool::m_currentHigh queue gives artifacts only — SpellPool has no
// carry-over, so Return on a SpellPool is a no-op. The pool is generic
// over the catalog id type so it carries no knowledge of pkg/gamedb's
// record shapes.
type Pool[T comparable] struct {
	available        []T
	drawn            map[T]bool
	carryOver        []T
	carryOverEnabled bool
}

// NewPool seeds a pool, with its carry-over queue enabled, from the full
// candidate catalog. Use NewArtifactPool/NewSpellPool for the domain
// constructors; this is exposed for tests and other generic callers.
func NewPool[T comparable](catalog []T) *Pool[T] {
	return newPool(catalog, true)
}

func newPool[T comparable](catalog []T, carryOverEnabled bool) *Pool[T] {
	return &Pool[T]{
		available:        append([]T(nil), catalog...),
		drawn:            make(map[T]bool, len(catalog)),
		carryOverEnabled: carryOverEnabled,
	}
}

// Draw returns the next id satisfying filter, preferring the carry-over
// queue (items returned by a rejected object, when enabled) over fresh
// draws, and consuming src for the random index pick when more than one
// candidate ties. It reports ok=false when no candidate satisfies filter.
func (p *Pool[T]) Draw(src rng.Source, filter func(T) bool) (id T, ok bool) {
	if p.carryOverEnabled {
		if id, ok := p.drawFrom(&p.carryOver, src, filter); ok {
			return id, true
		}
	}
	if id, ok := p.drawFrom(&p.available, src, filter); ok {
		p.drawn[id] = true
		return id, true
	}
	var zero T
	return zero, false
}

func (p *Pool[T]) drawFrom(bucket *[]T, src rng.Source, filter func(T) bool) (T, bool) {
	var candidates []int
	for i, id := range *bucket {
		if filter == nil || filter(id) {
			candidates = append(candidates, i)
		}
	}
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}
	idx := candidates[0]
	if len(candidates) > 1 {
		idx = candidates[src.GenSmall(len(candidates))]
	}
	id := (*bucket)[idx]
	*bucket = append((*bucket)[:idx], (*bucket)[idx+1:]...)
	return id, true
}

// Return sends id back to the carry-over queue, to be tried again before
// any fresh draw. Called from a ZoneObject's onReject closure. A no-op on
// a pool built with carry-over disabled (SpellPool).
func (p *Pool[T]) Return(id T) {
	if !p.carryOverEnabled {
		return
	}
	p.carryOver = append(p.carryOver, id)
}

// Exhausted reports whether both the carry-over queue and the fresh
// catalog are empty.
func (p *Pool[T]) Exhausted() bool {
	return len(p.available) == 0 && len(p.carryOver) == 0
}

// ArtifactPool draws artifact catalog ids without replacement, returning a
// rejected draw to a high-priority carry-over queue tried before fresh
// draws (spec.md §4.4).
type ArtifactPool = Pool[string]

// SpellPool draws spell catalog ids without replacement. Unlike
// ArtifactPool it has no carry-over queue: a rejected spell id is simply
// dropped rather than retried ahead of fresh draws (spec.md §4.4: "SpellPool
// is analogous but without the high-priority queue").
type SpellPool = Pool[string]

// NewArtifactPool is NewPool specialized for artifact ids, with carry-over
// enabled; kept as a named constructor so call sites read as domain code
// rather than generic instantiation.
func NewArtifactPool(ids []string) *ArtifactPool { return newPool(ids, true) }

// NewSpellPool is NewPool specialized for spell ids, with carry-over
// disabled.
func NewSpellPool(ids []string) *SpellPool { return newPool(ids, false) }
