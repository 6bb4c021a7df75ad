package objectgen

import (
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/score"
)

func sampleDB() *gamedb.MemoryDB {
	return gamedb.NewMemoryDB([]gamedb.Record{
		{ID: "bank_crypt", Kind: gamedb.KindMapBank, Attrs: map[string]any{"value": 2000, "weight": 10, "guard": 3000}},
		{ID: "bank_derelict", Kind: gamedb.KindMapBank, Attrs: map[string]any{"value": 500, "weight": 20, "guard": 500}},
		{ID: "gold", Kind: gamedb.KindResource, Attrs: map[string]any{"value": 100, "weight": 10}},
		{ID: "gems", Kind: gamedb.KindResource, Attrs: map[string]any{"value": 400, "weight": 5}},
		{ID: "sword_of_might", Kind: gamedb.KindArtifact, Attrs: map[string]any{"tier": "treasure", "value": 300}},
		{ID: "shield_of_valor", Kind: gamedb.KindArtifact, Attrs: map[string]any{"tier": "treasure", "value": 350}},
		{ID: "angel_wings", Kind: gamedb.KindArtifact, Attrs: map[string]any{"tier": "relic", "value": 3000}},
		{ID: "fireball", Kind: gamedb.KindSpell, Attrs: map[string]any{"tier": "common", "value": 200}},
	})
}

func newSrc() rng.Source {
	return rng.DeriveStage(42, "objectgen-test", nil)
}

func TestRecordList_PickByFreq_FavorsUnderMinRecords(t *testing.T) {
	list := RecordList[string]{Records: []*Record[string]{
		{ID: "a", Weight: 10, Enabled: true},
		{ID: "b", Weight: 10, MinLimit: 1, Enabled: true},
	}}
	if got := list.TotalFreq(); got != 10+virtualBonus+10 {
		t.Fatalf("TotalFreq = %d, want %d", got, 10+virtualBonus+10)
	}
	// Frequencies in a's range [0,10) pick "a"; from 10 up they fall in b's
	// boosted range; verify both sides of the boundary.
	picked := list.PickByFreq(5)
	if picked == nil || picked.ID != "a" {
		t.Fatalf("PickByFreq(5) = %v, want record a", picked)
	}
	picked = list.PickByFreq(15)
	if picked == nil || picked.ID != "b" {
		t.Fatalf("PickByFreq(15) = %v, want record b", picked)
	}
}

func TestRecord_RejectDisablesAfterAttempts(t *testing.T) {
	r := &Record[string]{Weight: 1, RemainingAttempts: 2, Enabled: true}
	r.reject()
	if !r.Enabled {
		t.Fatalf("record disabled too early")
	}
	r.reject()
	if r.Enabled {
		t.Fatalf("record should be disabled after exhausting attempts")
	}
}

func TestRecord_RecordGeneratedRespectsMaxLimit(t *testing.T) {
	r := &Record[string]{Weight: 1, MaxLimit: 2, Enabled: true}
	r.recordGenerated()
	if !r.Enabled {
		t.Fatalf("record disabled before reaching MaxLimit")
	}
	r.recordGenerated()
	if r.Enabled {
		t.Fatalf("record should disable once MaxLimit is reached")
	}
}

func TestBankFactory_BuildProducesScoredObject(t *testing.T) {
	db := sampleDB()
	factory := NewBankFactory(db)
	if factory.TotalFreq() == 0 {
		t.Fatalf("expected nonzero total freq")
	}
	obj, err := factory.Build(0, newSrc())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	bank, ok := obj.(*mapobject.Bank)
	if !ok {
		t.Fatalf("expected *mapobject.Bank, got %T", obj)
	}
	if bank.GetScore().Get(score.AttrArmy) == 0 {
		t.Fatalf("expected nonzero army score")
	}
}

func singleTierArtifactDB() *gamedb.MemoryDB {
	return gamedb.NewMemoryDB([]gamedb.Record{
		{ID: "sword_of_might", Kind: gamedb.KindArtifact, Attrs: map[string]any{"tier": "treasure", "value": 300}},
		{ID: "shield_of_valor", Kind: gamedb.KindArtifact, Attrs: map[string]any{"tier": "treasure", "value": 350}},
	})
}

func TestArtifactFactory_PoolDrawsUniqueIDs(t *testing.T) {
	db := singleTierArtifactDB()
	pool := mapobject.NewArtifactPool([]string{"sword_of_might", "shield_of_valor"})
	factory := NewArtifactFactory(db, pool)
	src := newSrc()

	seen := make(map[string]bool)
	for i := 0; i < 2; i++ {
		obj, err := factory.Build(0, src)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		art, ok := obj.(*mapobject.Artifact)
		if !ok {
			t.Fatalf("expected *mapobject.Artifact, got %T", obj)
		}
		if seen[art.ArtifactID] {
			t.Fatalf("artifact id %q drawn twice", art.ArtifactID)
		}
		seen[art.ArtifactID] = true
	}
}

func TestArtifactFactory_RejectReturnsToPool(t *testing.T) {
	db := singleTierArtifactDB()
	pool := mapobject.NewArtifactPool([]string{"sword_of_might"})
	factory := NewArtifactFactory(db, pool)
	src := newSrc()

	obj, err := factory.Build(0, src)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if pool.Exhausted() == false {
		t.Fatalf("pool should be exhausted of fresh candidates after one draw")
	}
	obj.SetAccepted(false)
	if pool.Exhausted() {
		t.Fatalf("rejecting the object should return its id to carry-over")
	}

	obj2, err := factory.Build(0, src)
	if err != nil {
		t.Fatalf("Build after reject: %v", err)
	}
	art2 := obj2.(*mapobject.Artifact)
	if art2.ArtifactID != "sword_of_might" {
		t.Fatalf("expected returned id to be redrawn, got %q", art2.ArtifactID)
	}
}

func TestGenerator_RunConvergesWithinTolerance(t *testing.T) {
	db := sampleDB()
	gen := NewGenerator(
		NewBankFactory(db),
		NewResourceFactory(db),
	)
	settings := score.Settings{
		Target:    score.Score{}.Set(score.AttrArmy, 2000).Set(score.AttrResource, 500),
		Tolerance: 50,
	}
	objs := gen.Run(settings, newSrc())
	if len(objs) == 0 {
		t.Fatalf("expected at least one generated object")
	}
	var total score.Score
	for _, o := range objs {
		total = total.Plus(o.GetScore())
	}
	remaining := settings.Target.Minus(total)
	if v := remaining.Get(score.AttrArmy); v < -settings.Tolerance || v > settings.Tolerance {
		t.Fatalf("army remainder %d outside tolerance %d", v, settings.Tolerance)
	}
}

func TestGenerator_RunRespectsIncludeFilter(t *testing.T) {
	db := sampleDB()
	gen := NewGenerator(
		NewBankFactory(db),
		NewResourceFactory(db),
	)
	settings := score.Settings{
		Target:    score.Score{}.Set(score.AttrResource, 300),
		Tolerance: 20,
		Include:   []score.GeneratorKind{score.GeneratorResource},
	}
	objs := gen.Run(settings, newSrc())
	for _, o := range objs {
		if _, ok := o.(*mapobject.ResourcePile); !ok {
			t.Fatalf("expected only ResourcePile objects, got %T", o)
		}
	}
}

func TestGroupPickables_ConsolidatesHighGuardPickables(t *testing.T) {
	a := mapobject.NewArtifact("a", score.Score{}, 5000, mapobject.Mask{}, nil)
	b := mapobject.NewResourcePile("gold", 3, score.Score{}, 5000, mapobject.Mask{}, nil)
	c := mapobject.NewResourcePile("gems", 2, score.Score{}, 100, mapobject.Mask{}, nil)

	out := groupPickables([]mapobject.ZoneObject{a, b, c}, score.GuardSettings{GuardMinToGroup: 1000, GuardGroupLimit: 4})

	var groups, singles int
	for _, o := range out {
		switch o.(type) {
		case *mapobject.Group:
			groups++
		default:
			singles++
		}
	}
	if groups != 1 {
		t.Fatalf("expected exactly one group, got %d", groups)
	}
	if singles != 1 {
		t.Fatalf("expected the low-guard pile to stay ungrouped, got %d singles", singles)
	}
}

func TestGroupPickables_SingleMemberGroupUnwraps(t *testing.T) {
	a := mapobject.NewArtifact("a", score.Score{}, 5000, mapobject.Mask{}, nil)
	out := groupPickables([]mapobject.ZoneObject{a}, score.GuardSettings{GuardMinToGroup: 1000, GuardGroupLimit: 4})
	if len(out) != 1 {
		t.Fatalf("expected 1 object, got %d", len(out))
	}
	if _, ok := out[0].(*mapobject.Group); ok {
		t.Fatalf("a lone eligible member should not be wrapped in a Group")
	}
}
