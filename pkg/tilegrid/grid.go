package tilegrid

import "fmt"

// TileGrid owns the tile array and a position→tile index. It allocates
// every tile once, wires up the 8-neighborhood, and is never mutated in
// shape afterward (see spec.md §4.1 Init).
type TileGrid struct {
	Width, Height, Depth int

	tiles []Tile
	index map[Pos]*Tile
}

// New allocates a W×H×D grid in row-major (z, y, x) order and wires every
// tile's 8-neighborhood, leaving nil at map edges.
func New(width, height, depth int) (*TileGrid, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("tilegrid: dimensions must be positive, got %dx%dx%d", width, height, depth)
	}

	g := &TileGrid{
		Width:  width,
		Height: height,
		Depth:  depth,
		tiles:  make([]Tile, width*height*depth),
		index:  make(map[Pos]*Tile, width*height*depth),
	}

	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				t := g.tileAt(x, y, z)
				t.Pos = Pos{X: x, Y: y, Z: z}
				t.ZoneIndex = -1
				t.SegmentIndex = -1
				g.index[t.Pos] = t
			}
		}
	}

	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				t := g.tileAt(x, y, z)
				t.North = g.lookup(x, y-1, z)
				t.South = g.lookup(x, y+1, z)
				t.West = g.lookup(x-1, y, z)
				t.East = g.lookup(x+1, y, z)
				t.NorthEast = g.lookup(x+1, y-1, z)
				t.SouthEast = g.lookup(x+1, y+1, z)
				t.SouthWest = g.lookup(x-1, y+1, z)
				t.NorthWest = g.lookup(x-1, y-1, z)
				t.rebuildNeighborCache()
			}
		}
	}

	return g, nil
}

func (g *TileGrid) tileAt(x, y, z int) *Tile {
	return &g.tiles[(z*g.Height+y)*g.Width+x]
}

func (g *TileGrid) lookup(x, y, z int) *Tile {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height || z < 0 || z >= g.Depth {
		return nil
	}
	return g.tileAt(x, y, z)
}

// At returns the tile at pos, or nil if pos is out of bounds.
func (g *TileGrid) At(pos Pos) *Tile {
	return g.index[pos]
}

// All returns every tile in the grid as a flat slice, in construction
// order. Callers that need a Region should sort it (see pkg/region).
func (g *TileGrid) All() []*Tile {
	out := make([]*Tile, len(g.tiles))
	for i := range g.tiles {
		out[i] = &g.tiles[i]
	}
	return out
}

// Len returns the total tile count (Width*Height*Depth).
func (g *TileGrid) Len() int { return len(g.tiles) }

// InBounds reports whether pos names a tile in this grid.
func (g *TileGrid) InBounds(pos Pos) bool {
	_, ok := g.index[pos]
	return ok
}
