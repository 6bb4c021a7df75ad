package template

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
)

// resolveGuards assigns a creature composition to every non-mirror guard,
// then propagates mirrored guards from their referent (spec.md §4.6
// Guards: "resolve m_mirrorFromId references, stamp guard monsters on
// map"). Guards are processed in the order given, matching the
// per-connection mirror resolution ordering decision: a connection's
// MirrorFromID must reference an already-registered guard.
func resolveGuards(db gamedb.Database, guards []*mapobject.MapGuard) error {
	if len(guards) == 0 {
		return nil
	}
	units := db.Records(gamedb.KindUnit)
	if len(units) == 0 {
		return fmt.Errorf("template: no unit records available to compose guards")
	}
	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })

	byID := make(map[uuid.UUID]*mapobject.MapGuard, len(guards))
	for _, g := range guards {
		byID[g.ID()] = g
	}

	for _, g := range guards {
		if g.MirrorFromID == nil {
			assignCreature(units, g)
		}
	}
	for _, g := range guards {
		if g.MirrorFromID == nil {
			continue
		}
		source, ok := byID[*g.MirrorFromID]
		if !ok {
			return fmt.Errorf("%w: guard mirrors an unregistered guard", ErrTemplateInvalid)
		}
		g.CreatureID = source.CreatureID
		g.Count = source.Count
	}
	return nil
}

// assignCreature picks the most valuable unit (by declared "value") whose
// per-unit value does not exceed g.Value, falling back to the cheapest unit
// when none fits, and sizes the stack so its total value roughly matches
// g.Value.
func assignCreature(units []gamedb.Record, g *mapobject.MapGuard) {
	bestIdx, cheapest := -1, 0
	for i, u := range units {
		v := u.Int("value")
		if v < units[cheapest].Int("value") {
			cheapest = i
		}
		if v <= g.Value && (bestIdx < 0 || v > units[bestIdx].Int("value")) {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		bestIdx = cheapest
	}
	best := units[bestIdx]
	unitValue := best.Int("value")
	if unitValue <= 0 {
		unitValue = 1
	}
	count := g.Value / unitValue
	if count < 1 {
		count = 1
	}
	g.CreatureID = best.ID
	g.Count = count
}
