package roads

import (
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

func fullGrid(t *testing.T, w, h int) (*tilegrid.TileGrid, region.Region) {
	t.Helper()
	g, err := tilegrid.New(w, h, 1)
	if err != nil {
		t.Fatalf("tilegrid.New: %v", err)
	}
	return g, region.New(g.All())
}

func TestAStar_StraightLine(t *testing.T) {
	g, all := fullGrid(t, 10, 10)
	path, err := AStar(g, tilegrid.Pos{X: 0, Y: 5}, tilegrid.Pos{X: 9, Y: 5}, all, false)
	if err != nil {
		t.Fatalf("AStar: %v", err)
	}
	if path[0].Pos != (tilegrid.Pos{X: 0, Y: 5}) || path[len(path)-1].Pos != (tilegrid.Pos{X: 9, Y: 5}) {
		t.Fatalf("path endpoints wrong: %v .. %v", path[0].Pos, path[len(path)-1].Pos)
	}
	if len(path) != 10 {
		t.Fatalf("len(path) = %d, want 10", len(path))
	}
}

func TestAStar_UnreachableOutsideAllowedArea(t *testing.T) {
	g, _ := fullGrid(t, 5, 5)
	// Only a single tile is allowed, so a path across the grid is impossible.
	allowed := region.New([]*tilegrid.Tile{g.At(tilegrid.Pos{X: 0, Y: 0})})
	if _, err := AStar(g, tilegrid.Pos{X: 0, Y: 0}, tilegrid.Pos{X: 4, Y: 4}, allowed, true); err == nil {
		t.Fatalf("expected error for endpoint outside allowed area")
	}
}

func TestAStar_DiagonalPatchKeeps4Connected(t *testing.T) {
	g, all := fullGrid(t, 5, 5)
	path, err := AStar(g, tilegrid.Pos{X: 0, Y: 0}, tilegrid.Pos{X: 4, Y: 4}, all, true)
	if err != nil {
		t.Fatalf("AStar: %v", err)
	}
	for i := 1; i < len(path); i++ {
		dx := path[i].Pos.X - path[i-1].Pos.X
		dy := path[i].Pos.Y - path[i-1].Pos.Y
		if dx*dx+dy*dy != 1 {
			t.Fatalf("non-orthogonal step between %v and %v", path[i-1].Pos, path[i].Pos)
		}
	}
}

func TestLinkNodes_AssignsMaxLevel(t *testing.T) {
	g, all := fullGrid(t, 6, 1)
	nodes := []Node{
		{Tile: g.At(tilegrid.Pos{X: 0, Y: 0}), Priority: zone.NodeTown, Level: zone.Dirt},
		{Tile: g.At(tilegrid.Pos{X: 5, Y: 0}), Priority: zone.NodeTown, Level: zone.Cobblestone},
	}
	net, err := LinkNodes(g, nodes, all, false)
	if err != nil {
		t.Fatalf("LinkNodes: %v", err)
	}
	for _, t2 := range all.Tiles() {
		if lvl, ok := net.Levels[t2.Pos]; ok && lvl != zone.Cobblestone {
			t.Fatalf("tile %v level = %v, want Cobblestone (max of the two requests)", t2.Pos, lvl)
		}
	}
}

func TestRedundancyCleanup_RemovesBlock(t *testing.T) {
	net := NewNetwork()
	for _, p := range []tilegrid.Pos{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}} {
		net.Levels[p] = zone.Dirt
	}
	RedundancyCleanup(net)
	if len(net.Levels) == 4 {
		t.Fatalf("expected redundancy cleanup to remove at least one tile of the 2x2 block")
	}
}
