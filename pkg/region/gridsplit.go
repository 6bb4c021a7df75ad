package region

import "github.com/mapron/freeheroes-rmg/pkg/tilegrid"

// GridSplit buckets r's tiles into width x height rectangles over r's
// bounding box, returning the non-empty buckets whose tile count is at
// least minSize.
func (r Region) GridSplit(width, height, minSize int) []Region {
	if r.Len() == 0 || width <= 0 || height <= 0 {
		return nil
	}

	minX, minY := r.tiles[0].Pos.X, r.tiles[0].Pos.Y
	for _, t := range r.tiles {
		if t.Pos.X < minX {
			minX = t.Pos.X
		}
		if t.Pos.Y < minY {
			minY = t.Pos.Y
		}
	}

	buckets := make(map[[2]int][]*tilegrid.Tile)
	var order [][2]int
	for _, t := range r.tiles {
		bx := (t.Pos.X - minX) / width
		by := (t.Pos.Y - minY) / height
		key := [2]int{bx, by}
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], t)
	}

	var out []Region
	for _, key := range order {
		members := buckets[key]
		if len(members) >= minSize {
			out = append(out, New(members))
		}
	}
	return out
}
