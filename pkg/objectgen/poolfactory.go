package objectgen

import (
	"fmt"
	"sort"

	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/score"
)

// tierPayload is the per-record data for every factory backed by a shared
// dedup Pool (Artifact, Scroll, Shrine): the record itself only names a
// tier (class/treasure/minor/major/relic, or "" for spells with no tier),
// the actual id comes from a Pool.Draw filtered to that tier, and its
// score is resolved from the drawn id's own gamedb record.
type tierPayload struct {
	Tier string
}

// tierRecords buckets db's records of kind by their "tier" attribute
// (empty string if absent), one Record per distinct tier with Weight
// equal to the member count.
func tierRecords(db gamedb.Database, kind gamedb.Kind) []*Record[tierPayload] {
	counts := make(map[string]int)
	for _, rec := range db.Records(kind) {
		counts[rec.String("tier")]++
	}
	tiers := make([]string, 0, len(counts))
	for t := range counts {
		tiers = append(tiers, t)
	}
	sort.Strings(tiers)

	out := make([]*Record[tierPayload], 0, len(tiers))
	for _, t := range tiers {
		out = append(out, &Record[tierPayload]{
			ID:                "tier:" + t,
			Weight:            counts[t],
			RemainingAttempts: 5,
			Enabled:           true,
			Payload:           tierPayload{Tier: t},
		})
	}
	return out
}

func scoreFromValue(db gamedb.Database, kind gamedb.Kind, id string, attr score.Attr) score.Score {
	rec, ok := db.Find(kind, id)
	if !ok {
		return score.Score{}
	}
	return score.Score{}.Set(attr, rec.Int("value"))
}

// NewArtifactFactory builds the Artifact factory: a tier-weighted
// CommonRecordList drawing the actual artifact id from pool so no two
// produced Artifacts ever repeat one (spec.md §4.4's pool semantics).
func NewArtifactFactory(db gamedb.Database, pool *mapobject.ArtifactPool) Factory {
	records := tierRecords(db, gamedb.KindArtifact)
	return NewSimpleFactory(score.GeneratorArtifact, records, func(rec *Record[tierPayload], src rng.Source) (mapobject.ZoneObject, error) {
		tier := rec.Payload.Tier
		id, ok := pool.Draw(src, func(candidate string) bool {
			r, found := db.Find(gamedb.KindArtifact, candidate)
			return found && r.String("tier") == tier
		})
		if !ok {
			return nil, fmt.Errorf("objectgen: artifact pool exhausted for tier %q", tier)
		}
		sc := scoreFromValue(db, gamedb.KindArtifact, id, score.AttrArtStat)
		return mapobject.NewArtifact(id, sc, 0, mapobject.Mask{}, func() {
			rec.reject()
			pool.Return(id)
		}), nil
	})
}

// NewScrollFactory builds the Scroll factory, drawing spell ids from the
// shared SpellPool filtered to the picked record's tier (one record per
// spell tier present in db).
func NewScrollFactory(db gamedb.Database, pool *mapobject.SpellPool) Factory {
	records := tierRecords(db, gamedb.KindSpell)
	return NewSimpleFactory(score.GeneratorScroll, records, func(rec *Record[tierPayload], src rng.Source) (mapobject.ZoneObject, error) {
		tier := rec.Payload.Tier
		id, ok := pool.Draw(src, func(candidate string) bool {
			r, found := db.Find(gamedb.KindSpell, candidate)
			return found && r.String("tier") == tier
		})
		if !ok {
			return nil, fmt.Errorf("objectgen: spell pool exhausted for tier %q", tier)
		}
		sc := scoreFromValue(db, gamedb.KindSpell, id, score.AttrSpellCommon)
		return mapobject.NewScroll(id, sc, 0, mapobject.Mask{}, func() {
			rec.reject()
		}), nil
	})
}

// NewShrineFactory builds the Shrine factory. Unlike Scroll, a Shrine is
// visitable rather than pickable; its pool handling is the same: each
// draw removes the spell id from pool for good, and a rejected shrine's
// spell is not returned, so no spell repeats among objects drawn from the
// same pool.
func NewShrineFactory(db gamedb.Database, pool *mapobject.SpellPool) Factory {
	records := tierRecords(db, gamedb.KindSpell)
	return NewSimpleFactory(score.GeneratorShrine, records, func(rec *Record[tierPayload], src rng.Source) (mapobject.ZoneObject, error) {
		tier := rec.Payload.Tier
		id, ok := pool.Draw(src, func(candidate string) bool {
			r, found := db.Find(gamedb.KindSpell, candidate)
			return found && r.String("tier") == tier
		})
		if !ok {
			return nil, fmt.Errorf("objectgen: spell pool exhausted for tier %q", tier)
		}
		sc := scoreFromValue(db, gamedb.KindSpell, id, score.AttrSpellOffensive)
		return mapobject.NewShrine(id, sc, 0, mapobject.Mask{}, func() {
			rec.reject()
		}), nil
	})
}
