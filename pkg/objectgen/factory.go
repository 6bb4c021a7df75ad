package objectgen

import (
	"fmt"

	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/score"
)

// Factory is the type-erased interface Generator drives: every concrete
// object kind wraps a RecordList[T] behind this common surface, per
// spec.md §9's note that per-kind factory templates are "specialization
// parameters" needing no runtime RTTI.
type Factory interface {
	Kind() score.GeneratorKind
	TotalFreq() int
	// Build picks the record covering rngFreq and constructs its object.
	Build(rngFreq int, src rng.Source) (mapobject.ZoneObject, error)
}

// SimpleFactory adapts a RecordList[T] and a build function to Factory.
type SimpleFactory[T any] struct {
	kind  score.GeneratorKind
	list  RecordList[T]
	build func(rec *Record[T], src rng.Source) (mapobject.ZoneObject, error)
}

// NewSimpleFactory builds a Factory over records, each resolved to an
// object via build.
func NewSimpleFactory[T any](kind score.GeneratorKind, records []*Record[T], build func(rec *Record[T], src rng.Source) (mapobject.ZoneObject, error)) *SimpleFactory[T] {
	return &SimpleFactory[T]{kind: kind, list: RecordList[T]{Records: records}, build: build}
}

func (f *SimpleFactory[T]) Kind() score.GeneratorKind { return f.kind }
func (f *SimpleFactory[T]) TotalFreq() int            { return f.list.TotalFreq() }

func (f *SimpleFactory[T]) Build(rngFreq int, src rng.Source) (mapobject.ZoneObject, error) {
	rec := f.list.PickByFreq(rngFreq)
	if rec == nil {
		return nil, fmt.Errorf("objectgen: %s factory has no record covering frequency %d", f.kind, rngFreq)
	}
	obj, err := f.build(rec, src)
	if err != nil {
		return nil, err
	}
	rec.recordGenerated()
	return obj, nil
}

// EntityPayload is the per-record data for every factory that draws
// directly from one gamedb record (Bank, ResourcePile, Pandora, Dwelling,
// Visitable, Mine, SkillHut): the kinds that need no pool-level dedup.
type EntityPayload struct {
	EntityID string
	Score    score.Score
	Guard    int
	Mask     mapobject.Mask
}

// entityRecords builds one Record[EntityPayload] per gamedb record of
// kind, reading weight/attempts/minLimit/maxLimit/guard from its Attrs
// (default weight=1, attempts=5) and computing its score via scoreFn.
func entityRecords(db gamedb.Database, kind gamedb.Kind, scoreFn func(gamedb.Record) score.Score) []*Record[EntityPayload] {
	var out []*Record[EntityPayload]
	for _, rec := range db.Records(kind) {
		weight := rec.Int("weight")
		if weight == 0 {
			weight = 1
		}
		attempts := rec.Int("attempts")
		if attempts == 0 {
			attempts = 5
		}
		out = append(out, &Record[EntityPayload]{
			ID:                rec.ID,
			Weight:            weight,
			RemainingAttempts: attempts,
			MinLimit:          rec.Int("minLimit"),
			MaxLimit:          rec.Int("maxLimit"),
			Enabled:           true,
			Payload: EntityPayload{
				EntityID: rec.ID,
				Score:    scoreFn(rec),
				Guard:    rec.Int("guard"),
			},
		})
	}
	return out
}

func valueScore(attr score.Attr) func(gamedb.Record) score.Score {
	return func(rec gamedb.Record) score.Score {
		return score.Score{}.Set(attr, rec.Int("value"))
	}
}

// NewBankFactory builds the Bank factory from every map_bank record.
func NewBankFactory(db gamedb.Database) Factory {
	records := entityRecords(db, gamedb.KindMapBank, valueScore(score.AttrArmy))
	return NewSimpleFactory(score.GeneratorBank, records, func(rec *Record[EntityPayload], _ rng.Source) (mapobject.ZoneObject, error) {
		p := rec.Payload
		return mapobject.NewBank(p.EntityID, p.Score, p.Guard, p.Mask, rec.reject), nil
	})
}

// NewResourceFactory builds the ResourcePile factory from every resource
// record.
func NewResourceFactory(db gamedb.Database) Factory {
	records := entityRecords(db, gamedb.KindResource, valueScore(score.AttrResource))
	return NewSimpleFactory(score.GeneratorResource, records, func(rec *Record[EntityPayload], src rng.Source) (mapobject.ZoneObject, error) {
		p := rec.Payload
		amount := src.GenDispersed(5, 2)
		return mapobject.NewResourcePile(p.EntityID, amount, p.Score, p.Guard, p.Mask, rec.reject), nil
	})
}

// NewPandoraFactory builds the Pandora factory from every map_visitable
// record; records are not filtered by type, so it draws from the same
// record set as NewVisitableFactory.
func NewPandoraFactory(db gamedb.Database) Factory {
	records := entityRecords(db, gamedb.KindMapVisitable, valueScore(score.AttrMisc))
	return NewSimpleFactory(score.GeneratorPandora, records, func(rec *Record[EntityPayload], _ rng.Source) (mapobject.ZoneObject, error) {
		p := rec.Payload
		return mapobject.NewPandora(p.EntityID, p.Score, p.Guard, p.Mask, rec.reject), nil
	})
}

// NewDwellingFactory builds the Dwelling factory from every dwelling
// record.
func NewDwellingFactory(db gamedb.Database) Factory {
	records := entityRecords(db, gamedb.KindDwelling, valueScore(score.AttrArmyDwelling))
	return NewSimpleFactory(score.GeneratorDwelling, records, func(rec *Record[EntityPayload], _ rng.Source) (mapobject.ZoneObject, error) {
		p := rec.Payload
		return mapobject.NewDwelling(p.EntityID, p.Score, p.Guard, p.Mask, rec.reject), nil
	})
}

// NewVisitableFactory builds the generic Visitable factory from every
// map_visitable record, including those NewPandoraFactory also uses.
func NewVisitableFactory(db gamedb.Database) Factory {
	records := entityRecords(db, gamedb.KindMapVisitable, valueScore(score.AttrMisc))
	return NewSimpleFactory(score.GeneratorVisitable, records, func(rec *Record[EntityPayload], _ rng.Source) (mapobject.ZoneObject, error) {
		p := rec.Payload
		return mapobject.NewVisitable(p.EntityID, p.Score, p.Guard, p.Mask, rec.reject), nil
	})
}

// NewMineFactory builds the Mine factory from every resource record
// (a mine is a capturable generator of its named resource).
func NewMineFactory(db gamedb.Database) Factory {
	records := entityRecords(db, gamedb.KindResource, valueScore(score.AttrResourceGen))
	return NewSimpleFactory(score.GeneratorMine, records, func(rec *Record[EntityPayload], _ rng.Source) (mapobject.ZoneObject, error) {
		p := rec.Payload
		return mapobject.NewMine(p.EntityID, p.Score, p.Guard, p.Mask, rec.reject), nil
	})
}

// NewSkillHutFactory builds the SkillHut factory from every
// secondary_skill record.
func NewSkillHutFactory(db gamedb.Database) Factory {
	records := entityRecords(db, gamedb.KindSecondarySkill, valueScore(score.AttrMisc))
	return NewSimpleFactory(score.GeneratorSkillHut, records, func(rec *Record[EntityPayload], _ rng.Source) (mapobject.ZoneObject, error) {
		p := rec.Payload
		return mapobject.NewSkillHut(p.EntityID, p.Score, p.Guard, p.Mask, rec.reject), nil
	})
}
