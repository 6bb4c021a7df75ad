package distribute

import (
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/score"
	"github.com/mapron/freeheroes-rmg/pkg/segment"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

func testZone(t *testing.T) (*tilegrid.TileGrid, *zone.TileZone, *segment.Layout) {
	t.Helper()
	grid, err := tilegrid.New(20, 20, 1)
	if err != nil {
		t.Fatalf("tilegrid.New: %v", err)
	}
	z := zone.NewTileZone(0, zone.Settings{ID: "z0", CentroidTarget: tilegrid.Pos{X: 10, Y: 10}})
	z.InnerAreaUsable = region.New(grid.All())

	layout := segment.NewLayout(0)
	layout.Segments = []*segment.Segment{{Index: 0, Area: z.InnerAreaUsable}}
	return grid, z, layout
}

func TestDistributor_PlacesNonCollidingObjects(t *testing.T) {
	grid, z, layout := testZone(t)
	d := New(grid, z, layout)
	src := rng.DeriveStage(7, "distribute-test", nil)

	objs := []mapobject.ZoneObject{
		mapobject.NewResourcePile("gold", 5, score.Score{}, 0, mapobject.Mask{}, nil),
		mapobject.NewResourcePile("gems", 2, score.Score{}, 0, mapobject.Mask{}, nil),
		mapobject.NewBank("bank_crypt", score.Score{}, 2000, mapobject.Mask{}, nil),
	}

	placed := d.Place(objs, nil, src)
	if len(placed) != len(objs) {
		t.Fatalf("placed %d of %d objects on an empty 20x20 zone", len(placed), len(objs))
	}

	seen := make(map[tilegrid.Pos]bool)
	for _, o := range placed {
		anchor, ok := o.PlacedAnchor()
		if !ok {
			t.Fatalf("object reported placed but has no anchor")
		}
		if seen[anchor] {
			t.Fatalf("two objects share anchor %v", anchor)
		}
		seen[anchor] = true
	}
}

func TestDistributor_RejectsWhenZoneIsFull(t *testing.T) {
	grid, err := tilegrid.New(1, 1, 1)
	if err != nil {
		t.Fatalf("tilegrid.New: %v", err)
	}
	z := zone.NewTileZone(0, zone.Settings{ID: "z0", CentroidTarget: tilegrid.Pos{X: 0, Y: 0}})
	z.InnerAreaUsable = region.New(grid.All())
	layout := segment.NewLayout(0)
	layout.Segments = []*segment.Segment{{Index: 0, Area: z.InnerAreaUsable}}

	d := New(grid, z, layout)
	src := rng.DeriveStage(7, "distribute-test-full", nil)

	objs := []mapobject.ZoneObject{
		mapobject.NewResourcePile("gold", 5, score.Score{}, 0, mapobject.Mask{}, nil),
		mapobject.NewResourcePile("gems", 2, score.Score{}, 0, mapobject.Mask{}, nil),
	}
	placed := d.Place(objs, nil, src)
	if len(placed) != 1 {
		t.Fatalf("expected exactly 1 object to fit a single-tile zone, placed %d", len(placed))
	}
	if objs[1].Accepted() {
		t.Fatalf("the object that couldn't fit should have been rejected")
	}
}

func TestBinPack_RespectsFreeAreaCapacity(t *testing.T) {
	segments := []*segment.Segment{
		{Index: 0, Area: region.New([]*tilegrid.Tile{{Pos: tilegrid.Pos{X: 0, Y: 0}}, {Pos: tilegrid.Pos{X: 1, Y: 0}}})},
		{Index: 1, Area: region.New([]*tilegrid.Tile{{Pos: tilegrid.Pos{X: 0, Y: 1}}})},
	}
	areas := []int{1, 1, 1}
	assign := binPack(segments, nil, region.Region{}, areas, make([]int, 3))
	if len(assign) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(assign))
	}
	counts := map[int]int{}
	for _, s := range assign {
		counts[s]++
	}
	if counts[0] != 2 || counts[1] != 1 {
		t.Fatalf("expected 2 objects in the 2-tile segment and 1 in the 1-tile segment, got %v", counts)
	}
}

func TestBinPack_PrefersMinAvailableHeatOverPreference(t *testing.T) {
	segments := []*segment.Segment{
		{Index: 0, Area: region.New([]*tilegrid.Tile{{Pos: tilegrid.Pos{X: 0, Y: 0}}, {Pos: tilegrid.Pos{X: 1, Y: 0}}})},
		{Index: 1, Area: region.New([]*tilegrid.Tile{{Pos: tilegrid.Pos{X: 0, Y: 1}}, {Pos: tilegrid.Pos{X: 1, Y: 1}}})},
	}
	heat := map[tilegrid.Pos]int{
		{X: 0, Y: 0}: 60,
		{X: 1, Y: 0}: 60,
		{X: 0, Y: 1}: 50,
		{X: 1, Y: 1}: 50,
	}
	// No tile sits at the preferred heat 10, so placedHeat rises to the
	// minimum available level 50, which only segment 1 holds.
	assign := binPack(segments, heat, region.Region{}, []int{1}, []int{10})
	if len(assign) != 1 || assign[0] != 1 {
		t.Fatalf("expected the object assigned to the heat-50 segment 1, got %v", assign)
	}
}
