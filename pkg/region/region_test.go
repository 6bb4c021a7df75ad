package region

import (
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

func grid5x5(t *testing.T) *tilegrid.TileGrid {
	t.Helper()
	g, err := tilegrid.New(5, 5, 1)
	if err != nil {
		t.Fatalf("tilegrid.New: %v", err)
	}
	return g
}

// S2: a 5x5 grid with a 2x2 object placed at (1..2, 1..2): flood fill with
// diagonal adjacency returns exactly one region of 4 tiles.
func TestSplitByFloodFill_S2(t *testing.T) {
	g := grid5x5(t)
	var tiles []*tilegrid.Tile
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 2; x++ {
			tiles = append(tiles, g.At(tilegrid.Pos{X: x, Y: y, Z: 0}))
		}
	}
	r := New(tiles)
	components := r.SplitByFloodFill(true, nil)
	if len(components) != 1 {
		t.Fatalf("expected 1 component, got %d", len(components))
	}
	if components[0].Len() != 4 {
		t.Fatalf("expected component of 4 tiles, got %d", components[0].Len())
	}
}

func TestUnionIntersectDiff(t *testing.T) {
	g := grid5x5(t)
	var a, b []*tilegrid.Tile
	for x := 0; x < 3; x++ {
		a = append(a, g.At(tilegrid.Pos{X: x, Y: 0, Z: 0}))
	}
	for x := 1; x < 4; x++ {
		b = append(b, g.At(tilegrid.Pos{X: x, Y: 0, Z: 0}))
	}
	ra, rb := New(a), New(b)

	union := ra.Union(rb)
	inter := ra.Intersect(rb)
	if got, want := union.Len(), 4; got != want {
		t.Fatalf("|A union B| = %d, want %d", got, want)
	}
	if got, want := inter.Len(), 2; got != want {
		t.Fatalf("|A intersect B| = %d, want %d", got, want)
	}
	if got, want := ra.Len()+rb.Len()-inter.Len(), union.Len(); got != want {
		t.Fatalf("inclusion-exclusion violated: %d != %d", got, want)
	}

	diff := union.Diff(rb)
	aDiffB := ra.Diff(rb)
	if diff.Len() != aDiffB.Len() {
		t.Fatalf("(A union B) diff B should equal A diff B")
	}
	for i, tl := range diff.Tiles() {
		if tl.Pos != aDiffB.Tiles()[i].Pos {
			t.Fatalf("(A union B) diff B != A diff B at index %d", i)
		}
	}
}

func TestInnerOuterEdge(t *testing.T) {
	g, _ := tilegrid.New(5, 5, 1)
	var tiles []*tilegrid.Tile
	for y := 1; y < 4; y++ {
		for x := 1; x < 4; x++ {
			tiles = append(tiles, g.At(tilegrid.Pos{X: x, Y: y, Z: 0}))
		}
	}
	r := New(tiles)
	inner := r.InnerEdge(false)
	outer := r.OuterEdge()

	// Center tile (2,2) has all 4 ortho neighbors inside, so it is not on
	// the inner edge.
	center := g.At(tilegrid.Pos{X: 2, Y: 2, Z: 0})
	if inner.Contains(center) {
		t.Fatalf("center tile should not be on the inner edge")
	}
	corner := g.At(tilegrid.Pos{X: 1, Y: 1, Z: 0})
	if !inner.Contains(corner) {
		t.Fatalf("corner tile should be on the inner edge")
	}
	if outer.Intersect(r).Len() != 0 {
		t.Fatalf("outer edge must not overlap the region")
	}
}

func TestSplitByKExt_CoversInputAndNonEmpty(t *testing.T) {
	g, _ := tilegrid.New(10, 10, 1)
	r := New(g.All())
	parts, err := r.SplitByKExt(4, 30)
	if err != nil {
		t.Fatalf("SplitByKExt: %v", err)
	}
	if len(parts) != 4 {
		t.Fatalf("expected 4 parts, got %d", len(parts))
	}
	total := 0
	union := New(nil)
	for _, p := range parts {
		if p.Len() == 0 {
			t.Fatalf("K <= |region| must not produce an empty part")
		}
		total += p.Len()
		union = union.Union(p)
	}
	if total != r.Len() {
		t.Fatalf("parts overlap or lose tiles: total %d != region %d", total, r.Len())
	}
	if union.Len() != r.Len() {
		t.Fatalf("union of parts should equal the input region")
	}
}

func TestSplitByMaxArea_EmptyRegionErrors(t *testing.T) {
	var r Region
	if _, err := r.SplitByMaxArea(10); err == nil {
		t.Fatalf("expected error splitting an empty region")
	}
}

func TestCentroid_EnsureInbounds(t *testing.T) {
	g, _ := tilegrid.New(5, 5, 1)
	// An L-shaped region whose raw mean (2,2) falls outside the shape.
	var tiles []*tilegrid.Tile
	for x := 0; x < 4; x++ {
		tiles = append(tiles, g.At(tilegrid.Pos{X: x, Y: 3, Z: 0}))
	}
	tiles = append(tiles, g.At(tilegrid.Pos{X: 3, Y: 0, Z: 0}), g.At(tilegrid.Pos{X: 3, Y: 1, Z: 0}), g.At(tilegrid.Pos{X: 3, Y: 2, Z: 0}))
	r := New(tiles)
	if r.containsPos(r.Centroid(false)) {
		t.Fatalf("fixture: raw mean %v should lie outside the region", r.Centroid(false))
	}

	c := r.Centroid(true)
	if !r.containsPos(c) {
		t.Fatalf("ensureInbounds centroid %v is not a member of the region", c)
	}
}
