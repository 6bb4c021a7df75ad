package tilegrid

// Tile is one map cell. Neighbor pointers are nil at the map edge and are
// never mutated after TileGrid construction.
//
// ZoneIndex/SegmentIndex are transient scratch fields written by later
// passes (zone assignment, segmentation); Distance/ExclaveFix are not
// written by any pass in this module. They
// are plain ints/bools rather than pointers into other packages' types so
// that tilegrid never imports zone or segment — those packages import
// tilegrid instead, keeping the dependency graph acyclic.
type Tile struct {
	Pos Pos

	// Orthogonal neighbors, nil at map edges.
	North, East, South, West *Tile
	// Diagonal neighbors, nil at map edges.
	NorthEast, SouthEast, SouthWest, NorthWest *Tile

	// neighbors8 and neighborsOrtho are pre-sorted, cached on construction.
	neighbors8     []*Tile
	neighborsOrtho []*Tile

	// ZoneIndex is the index of the owning zone in the template's zone
	// slice, or -1 if unassigned.
	ZoneIndex int
	// SegmentIndex is the index of the owning segment within its zone, or
	// -1 if the tile is not part of any segment (road tile, border, etc).
	SegmentIndex int
	// Distance is a scratch distance slot. No pass in this module writes it;
	// the heat-map Dijkstra keeps its distances in a map of its own.
	Distance int
	// ExclaveFix is a scratch flag for exclave repair; no pass in this
	// module sets it.
	ExclaveFix bool
}

// Neighbors8 returns the tile's 8-neighborhood in a fixed, pre-sorted order
// (N, E, S, W, NE, SE, SW, NW), omitting nil entries.
func (t *Tile) Neighbors8() []*Tile { return t.neighbors8 }

// NeighborsOrtho returns the tile's 4-neighborhood (N, E, S, W), omitting
// nil entries.
func (t *Tile) NeighborsOrtho() []*Tile { return t.neighborsOrtho }

func (t *Tile) rebuildNeighborCache() {
	ortho := []*Tile{t.North, t.East, t.South, t.West}
	all := []*Tile{t.North, t.East, t.South, t.West, t.NorthEast, t.SouthEast, t.SouthWest, t.NorthWest}

	t.neighborsOrtho = t.neighborsOrtho[:0]
	for _, n := range ortho {
		if n != nil {
			t.neighborsOrtho = append(t.neighborsOrtho, n)
		}
	}
	t.neighbors8 = t.neighbors8[:0]
	for _, n := range all {
		if n != nil {
			t.neighbors8 = append(t.neighbors8, n)
		}
	}
}
