package template

import (
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
)

func unitsDB() *gamedb.MemoryDB {
	return gamedb.NewMemoryDB([]gamedb.Record{
		{ID: "peasant", Kind: gamedb.KindUnit, Attrs: map[string]any{"value": 15}},
		{ID: "archer", Kind: gamedb.KindUnit, Attrs: map[string]any{"value": 100}},
		{ID: "knight", Kind: gamedb.KindUnit, Attrs: map[string]any{"value": 500}},
	})
}

func TestResolveGuards_AssignsWithinBudget(t *testing.T) {
	g := mapobject.NewMapGuard(1000)
	if err := resolveGuards(unitsDB(), []*mapobject.MapGuard{g}); err != nil {
		t.Fatalf("resolveGuards: %v", err)
	}
	if g.CreatureID != "knight" {
		t.Fatalf("CreatureID = %q, want knight", g.CreatureID)
	}
	if g.Count != 2 {
		t.Fatalf("Count = %d, want 2", g.Count)
	}
}

func TestResolveGuards_PropagatesMirror(t *testing.T) {
	source := mapobject.NewMapGuard(500)
	mirror := mapobject.NewMapGuard(0)
	mirror.Mirror(source)

	if err := resolveGuards(unitsDB(), []*mapobject.MapGuard{source, mirror}); err != nil {
		t.Fatalf("resolveGuards: %v", err)
	}
	if mirror.CreatureID != source.CreatureID || mirror.Count != source.Count {
		t.Fatalf("mirror did not copy source composition: %+v vs %+v", mirror, source)
	}
}

func TestResolveGuards_UnregisteredMirrorFails(t *testing.T) {
	mirror := mapobject.NewMapGuard(0)
	phantom := mapobject.NewMapGuard(100)
	mirror.Mirror(phantom)

	if err := resolveGuards(unitsDB(), []*mapobject.MapGuard{mirror}); err == nil {
		t.Fatalf("expected error for unregistered mirror target")
	}
}
