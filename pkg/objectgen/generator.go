package objectgen

import (
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/score"
)

// maxGenerationAttempts bounds the budget loop below (spec.md §4.4): a
// zone whose remaining target never converges (every candidate overflows,
// or every factory's pool is exhausted) stops here rather than spinning
// forever.
const maxGenerationAttempts = 100_000

// Generator drives ObjectGenerator's per-zone score-budget loop: repeatedly
// pick a factory weighted by its current TotalFreq, draw one record from
// it, and accept the resulting object while it still fits the remaining
// budget.
type Generator struct {
	factories []Factory
}

// NewGenerator collects factories into one driver.
func NewGenerator(factories ...Factory) *Generator {
	return &Generator{factories: factories}
}

// Run executes the budget loop for one Settings entry and returns every
// accepted object, pickables consolidated into Groups where the guard
// settings call for it.
func (g *Generator) Run(settings score.Settings, src rng.Source) []mapobject.ZoneObject {
	remaining := settings.Target
	var produced []mapobject.ZoneObject

	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		if satisfied(remaining, settings.Tolerance) {
			break
		}
		allowed := g.allowedFactories(settings)
		if len(allowed) == 0 {
			break
		}
		total := 0
		for _, f := range allowed {
			total += f.TotalFreq()
		}
		if total <= 0 {
			break
		}

		factory, localFreq := pickFactory(allowed, src.Gen(total))
		obj, err := factory.Build(localFreq, src)
		if err != nil {
			// The chosen record's pool (artifact/spell) ran dry between the
			// frequency computation and the draw; try another attempt.
			continue
		}

		sc := obj.GetScore()
		if sc.ExceedsAny(settings.MaxPerObject) || !meetsMin(sc, settings.MinPerObject) || exceedsBudget(remaining, sc, settings.Tolerance) {
			obj.SetAccepted(false)
			continue
		}

		remaining = remaining.Minus(sc)
		produced = append(produced, obj)
	}

	return groupPickables(produced, settings.Guard)
}

func (g *Generator) allowedFactories(settings score.Settings) []Factory {
	var out []Factory
	for _, f := range g.factories {
		if settings.Allows(f.Kind()) && f.TotalFreq() > 0 {
			out = append(out, f)
		}
	}
	return out
}

func pickFactory(factories []Factory, freq int) (Factory, int) {
	base := 0
	for _, f := range factories {
		t := f.TotalFreq()
		if t == 0 {
			continue
		}
		if freq < base+t {
			return f, freq - base
		}
		base += t
	}
	return factories[len(factories)-1], 0
}

func satisfied(remaining score.Score, tolerance int) bool {
	for _, a := range score.Attrs() {
		v := remaining.Get(a)
		if v < 0 {
			v = -v
		}
		if v > tolerance {
			return false
		}
	}
	return true
}

// exceedsBudget reports whether accepting sc would overshoot remaining by
// more than tolerance on any attribute.
func exceedsBudget(remaining, sc score.Score, tolerance int) bool {
	for _, a := range score.Attrs() {
		if sc.Get(a)-remaining.Get(a) > tolerance {
			return true
		}
	}
	return false
}

// meetsMin reports whether every nonzero attribute sc contributes clears
// its MinPerObject floor (a floor of 0 is unbounded).
func meetsMin(sc, min score.Score) bool {
	for _, a := range score.Attrs() {
		floor := min.Get(a)
		if floor <= 0 {
			continue
		}
		if v := sc.Get(a); v > 0 && v < floor {
			return false
		}
	}
	return true
}

// groupPickables consolidates eligible pickables (guard value at or above
// GuardMinToGroup) into shared-guard Groups up to GuardGroupLimit members,
// per spec.md §4.4. A group that ends up with a single member is unwrapped
// back to the plain object, since wrapping buys nothing without a peer to
// share a guard with.
func groupPickables(objs []mapobject.ZoneObject, guard score.GuardSettings) []mapobject.ZoneObject {
	var groups []*mapobject.Group
	var ungrouped []mapobject.ZoneObject

	for _, obj := range objs {
		candidate, ok := obj.(mapobject.Groupable)
		if !ok || obj.GetGuard() < guard.GuardMinToGroup {
			ungrouped = append(ungrouped, obj)
			continue
		}
		placed := false
		for _, grp := range groups {
			if grp.CanAdd(candidate, guard.GuardGroupLimit) {
				grp.Add(candidate)
				placed = true
				break
			}
		}
		if !placed {
			grp := mapobject.NewGroup(candidate.GetMask())
			grp.Add(candidate)
			groups = append(groups, grp)
		}
	}

	out := append([]mapobject.ZoneObject(nil), ungrouped...)
	for _, grp := range groups {
		if len(grp.Members()) == 1 {
			out = append(out, grp.Members()[0])
			continue
		}
		out = append(out, grp)
	}
	return out
}
