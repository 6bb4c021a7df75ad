package tilegrid

import "testing"

func TestNew_Dimensions(t *testing.T) {
	g, err := New(4, 3, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Len() != 12 {
		t.Fatalf("expected 12 tiles, got %d", g.Len())
	}
}

func TestNew_RejectsNonPositive(t *testing.T) {
	if _, err := New(0, 3, 1); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestNeighbors_EdgesAreNil(t *testing.T) {
	g, _ := New(3, 3, 1)
	corner := g.At(Pos{0, 0, 0})
	if corner.North != nil || corner.West != nil || corner.NorthWest != nil {
		t.Fatalf("corner tile should have nil N/W/NW neighbors")
	}
	if corner.East == nil || corner.South == nil || corner.SouthEast == nil {
		t.Fatalf("corner tile should have non-nil E/S/SE neighbors")
	}

	center := g.At(Pos{1, 1, 0})
	if len(center.Neighbors8()) != 8 {
		t.Fatalf("center tile should have 8 neighbors, got %d", len(center.Neighbors8()))
	}
	if len(center.NeighborsOrtho()) != 4 {
		t.Fatalf("center tile should have 4 ortho neighbors, got %d", len(center.NeighborsOrtho()))
	}
	if len(corner.Neighbors8()) != 3 {
		t.Fatalf("corner tile should have 3 neighbors, got %d", len(corner.Neighbors8()))
	}
}

func TestAt_OutOfBounds(t *testing.T) {
	g, _ := New(2, 2, 1)
	if g.At(Pos{5, 5, 0}) != nil {
		t.Fatalf("expected nil for out-of-bounds lookup")
	}
	if g.InBounds(Pos{5, 5, 0}) {
		t.Fatalf("InBounds should be false for out-of-range pos")
	}
}

func TestNeighborIdentity(t *testing.T) {
	g, _ := New(5, 5, 1)
	a := g.At(Pos{2, 2, 0})
	b := g.At(Pos{3, 2, 0})
	if a.East != b {
		t.Fatalf("a.East should point at b")
	}
	if b.West != a {
		t.Fatalf("b.West should point at a")
	}
}
