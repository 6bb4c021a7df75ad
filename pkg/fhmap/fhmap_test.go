package fhmap

import (
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/score"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

func TestFHMap_AddObject_GroupsByKind(t *testing.T) {
	grid, err := tilegrid.New(4, 4, 1)
	if err != nil {
		t.Fatalf("tilegrid.New: %v", err)
	}
	m := New(SOD, grid)

	bank := mapobject.NewBank("bank_crypt", score.Score{}, 1000, mapobject.Mask{}, nil)
	pile := mapobject.NewResourcePile("gold", 5, score.Score{}, 0, mapobject.Mask{}, nil)
	m.AddObject(bank)
	m.AddObject(pile)

	if got := len(m.ObjectsByKind("bank")); got != 1 {
		t.Fatalf("bank count = %d, want 1", got)
	}
	if got := len(m.AllObjects()); got != 2 {
		t.Fatalf("AllObjects count = %d, want 2", got)
	}
}

func TestFHMap_ZoneByID(t *testing.T) {
	grid, _ := tilegrid.New(2, 2, 1)
	m := New(HOTA, grid)
	m.Zones = []*zone.TileZone{zone.NewTileZone(0, zone.Settings{ID: "z0"})}

	if z := m.ZoneByID("z0"); z == nil {
		t.Fatalf("expected to find zone z0")
	}
	if z := m.ZoneByID("missing"); z != nil {
		t.Fatalf("expected nil for missing zone id")
	}
}

func TestGameVersion_LegacyOffset(t *testing.T) {
	if SOD.LegacyOffset("artifact") != 0 {
		t.Fatalf("SOD artifact offset should be 0")
	}
	if HOTA.LegacyOffset("artifact") == 0 {
		t.Fatalf("HOTA artifact offset should be nonzero")
	}
	if HOTA.LegacyOffset("unknown_table") != 0 {
		t.Fatalf("unknown table should default to 0 offset")
	}
}
