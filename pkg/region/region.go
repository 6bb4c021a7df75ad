package region

import (
	"sort"

	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

// Region is a sorted, duplicate-free sequence of tile pointers. The zero
// value is an empty region. Callers that build a Region from an unsorted
// slice (instead of one of the constructors below) must call Sort before
// running any query that assumes order.
type Region struct {
	tiles []*tilegrid.Tile
}

// New builds a Region from tiles, sorting and deduplicating them.
func New(tiles []*tilegrid.Tile) Region {
	r := Region{tiles: append([]*tilegrid.Tile(nil), tiles...)}
	r.Sort()
	return r
}

// Sort restores the sortedness invariant and removes duplicates. Safe to
// call on an already-sorted Region (no-op cost beyond the scan).
func (r *Region) Sort() {
	sort.Slice(r.tiles, func(i, j int) bool { return r.tiles[i].Pos.Less(r.tiles[j].Pos) })
	if len(r.tiles) < 2 {
		return
	}
	out := r.tiles[:1]
	for _, t := range r.tiles[1:] {
		if t.Pos != out[len(out)-1].Pos {
			out = append(out, t)
		}
	}
	r.tiles = out
}

// Len returns the number of tiles in the region.
func (r Region) Len() int { return len(r.tiles) }

// Tiles returns the backing slice. Callers must not mutate it.
func (r Region) Tiles() []*tilegrid.Tile { return r.tiles }

// Contains reports whether t is a member of the region.
func (r Region) Contains(t *tilegrid.Tile) bool {
	i := sort.Search(len(r.tiles), func(i int) bool { return !r.tiles[i].Pos.Less(t.Pos) })
	return i < len(r.tiles) && r.tiles[i].Pos == t.Pos
}

// Union returns a new region containing every tile in r or o (sorted merge,
// O(n+m)).
func (r Region) Union(o Region) Region {
	out := make([]*tilegrid.Tile, 0, len(r.tiles)+len(o.tiles))
	i, j := 0, 0
	for i < len(r.tiles) && j < len(o.tiles) {
		a, b := r.tiles[i], o.tiles[j]
		switch {
		case a.Pos == b.Pos:
			out = append(out, a)
			i++
			j++
		case a.Pos.Less(b.Pos):
			out = append(out, a)
			i++
		default:
			out = append(out, b)
			j++
		}
	}
	out = append(out, r.tiles[i:]...)
	out = append(out, o.tiles[j:]...)
	return Region{tiles: out}
}

// Intersect returns the tiles present in both r and o.
func (r Region) Intersect(o Region) Region {
	out := make([]*tilegrid.Tile, 0, min(len(r.tiles), len(o.tiles)))
	i, j := 0, 0
	for i < len(r.tiles) && j < len(o.tiles) {
		a, b := r.tiles[i], o.tiles[j]
		switch {
		case a.Pos == b.Pos:
			out = append(out, a)
			i++
			j++
		case a.Pos.Less(b.Pos):
			i++
		default:
			j++
		}
	}
	return Region{tiles: out}
}

// Diff returns the tiles in r that are not in o.
func (r Region) Diff(o Region) Region {
	out := make([]*tilegrid.Tile, 0, len(r.tiles))
	i, j := 0, 0
	for i < len(r.tiles) && j < len(o.tiles) {
		a, b := r.tiles[i], o.tiles[j]
		switch {
		case a.Pos == b.Pos:
			i++
			j++
		case a.Pos.Less(b.Pos):
			out = append(out, a)
			i++
		default:
			j++
		}
	}
	out = append(out, r.tiles[i:]...)
	return Region{tiles: out}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
