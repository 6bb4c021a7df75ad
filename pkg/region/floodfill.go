package region

import "github.com/mapron/freeheroes-rmg/pkg/tilegrid"

// SplitByFloodFill partitions r into its connected components using 4- or
// 8-adjacency (diagonal selects which). If hint is non-nil and a member of
// r, its component is returned first.
func (r Region) SplitByFloodFill(diagonal bool, hint *tilegrid.Tile) []Region {
	visited := make(map[tilegrid.Pos]bool, r.Len())
	var components []Region

	visitFrom := func(start *tilegrid.Tile) {
		if visited[start.Pos] {
			return
		}
		var members []*tilegrid.Tile
		queue := []*tilegrid.Tile{start}
		visited[start.Pos] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			members = append(members, cur)
			neighbors := cur.NeighborsOrtho()
			if diagonal {
				neighbors = cur.Neighbors8()
			}
			for _, n := range neighbors {
				if !visited[n.Pos] && r.Contains(n) {
					visited[n.Pos] = true
					queue = append(queue, n)
				}
			}
		}
		components = append(components, New(members))
	}

	if hint != nil && r.Contains(hint) {
		visitFrom(hint)
	}
	for _, t := range r.tiles {
		visitFrom(t)
	}
	return components
}
