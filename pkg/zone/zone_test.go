package zone

import (
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/score"
)

func TestAbsoluteArea(t *testing.T) {
	got := AbsoluteArea(30, 10000, 100)
	if want := 3000; got != want {
		t.Fatalf("AbsoluteArea() = %d, want %d", got, want)
	}
	if got := AbsoluteArea(10, 10000, 0); got != 0 {
		t.Fatalf("AbsoluteArea() with zero total = %d, want 0", got)
	}
}

func TestSettings_Enabled(t *testing.T) {
	open := Settings{}
	if !open.Enabled(score.GeneratorBank) {
		t.Fatalf("expected empty GeneratorEnable to allow every kind")
	}

	restricted := Settings{GeneratorEnable: map[score.GeneratorKind]bool{score.GeneratorMine: true}}
	if restricted.Enabled(score.GeneratorBank) {
		t.Fatalf("expected restricted settings to disallow an unlisted kind")
	}
	if !restricted.Enabled(score.GeneratorMine) {
		t.Fatalf("expected restricted settings to allow a listed kind")
	}
}

func TestRoadLevel_Max(t *testing.T) {
	if got := Dirt.Max(Cobblestone); got != Cobblestone {
		t.Fatalf("Max() = %v, want Cobblestone", got)
	}
	if got := Gravel.Max(Trail); got != Gravel {
		t.Fatalf("Max() = %v, want Gravel", got)
	}
}

func TestNewTileZone_InitializesMaps(t *testing.T) {
	tz := NewTileZone(0, Settings{ID: "z0"})
	if tz.RoadNodes == nil || tz.HeatMap == nil || tz.Exits == nil {
		t.Fatalf("expected NewTileZone to initialize all maps")
	}
}
