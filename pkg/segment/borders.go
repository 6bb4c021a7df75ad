package segment

import (
	"fmt"

	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// ComputeBorders derives, for every zone, its ProtectionBorder (inner edge
// touching another zone), NeedPlaceObstacles (ProtectionBorder grown
// inward up to radius 2), and InnerAreaUsable (Area minus obstacles minus
// their one-tile halo, minus the usable area's bottom row) per
// spec.md §4.2 Borders.
func ComputeBorders(zones []*zone.TileZone) error {
	for _, z := range zones {
		if z.Area == nil {
			return fmt.Errorf("segment: zone %s has no Area; run PostProcess first", z.ID)
		}
	}

	boundaries := make([]region.Region, len(zones))
	for i, z := range zones {
		var interZone []*tilegrid.Tile
		for _, t := range z.Area.Outer.Tiles() {
			if t.ZoneIndex != z.Index && t.ZoneIndex >= 0 {
				interZone = append(interZone, t)
			}
		}
		boundaries[i] = region.New(interZone)
	}

	var allBoundaries region.Region
	for _, b := range boundaries {
		allBoundaries = allBoundaries.Union(b)
	}

	for i, z := range zones {
		z.ProtectionBorder = z.Area.Inner.Intersect(allBoundaries.Union(boundaries[i]))
		z.NeedPlaceObstacles = growInward(z.Area.Area, z.ProtectionBorder, 2)

		halo := growInward(z.Area.Area, z.NeedPlaceObstacles, 1)
		usable := z.Area.Area.Diff(z.NeedPlaceObstacles).Diff(halo)
		z.InnerAreaUsable = dropBottomRow(usable)
	}
	return nil
}

// growInward BFS-expands seed by up to radius steps, staying within area.
func growInward(area, seed region.Region, radius int) region.Region {
	frontier := seed
	result := seed
	for step := 0; step < radius; step++ {
		var next []*tilegrid.Tile
		for _, t := range frontier.Tiles() {
			for _, n := range t.NeighborsOrtho() {
				if n != nil && area.Contains(n) && !result.Contains(n) {
					next = append(next, n)
				}
			}
		}
		frontier = region.New(next)
		if frontier.Len() == 0 {
			break
		}
		result = result.Union(frontier)
	}
	return result
}

// dropBottomRow removes, from r, the tiles at the maximum Y for each X
// column present — in-game objects need a free tile immediately below to
// remain visible/approachable.
func dropBottomRow(r region.Region) region.Region {
	maxY := make(map[int]int)
	for _, t := range r.Tiles() {
		if cur, ok := maxY[t.Pos.X]; !ok || t.Pos.Y > cur {
			maxY[t.Pos.X] = t.Pos.Y
		}
	}
	var keep []*tilegrid.Tile
	for _, t := range r.Tiles() {
		if t.Pos.Y != maxY[t.Pos.X] {
			keep = append(keep, t)
		}
	}
	return region.New(keep)
}

// ProcessConnections realizes every template connection: finds the border
// tile pair closest to the shared boundary's centroid, registers both
// tiles as Exits in their zone's road-node map, places a MapGuard when the
// connection is guarded, carves a road strip to each zone's nearest usable
// tile, and erases a radius-bounded neighborhood so other connections
// cannot claim the same tiles.
func ProcessConnections(grid *tilegrid.TileGrid, zones []*zone.TileZone, byID map[string]*zone.TileZone, conns []zone.Connection) ([]*mapobject.MapGuard, error) {
	var guards []*mapobject.MapGuard
	guardByConnID := make(map[string]*mapobject.MapGuard)
	claimed := region.Region{}

	for _, c := range conns {
		from, ok := byID[c.From]
		if !ok {
			return nil, fmt.Errorf("segment: connection %s references unknown zone %s", c.ID, c.From)
		}
		to, ok := byID[c.To]
		if !ok {
			return nil, fmt.Errorf("segment: connection %s references unknown zone %s", c.ID, c.To)
		}

		// From-side tiles with an orthogonal neighbor in the to-zone.
		var sideTiles []*tilegrid.Tile
		for _, t := range from.Area.Area.Diff(claimed).Tiles() {
			for _, n := range t.NeighborsOrtho() {
				if n.ZoneIndex == to.Index {
					sideTiles = append(sideTiles, t)
					break
				}
			}
		}
		shared := region.New(sideTiles)
		if shared.Len() == 0 {
			return nil, fmt.Errorf("segment: no border tiles between zones %s and %s for connection %s", c.From, c.To, c.ID)
		}
		centroid := shared.Centroid(false)
		fromTile := shared.ClosestTo(centroid)
		var toTile *tilegrid.Tile
		for _, n := range fromTile.NeighborsOrtho() {
			if n != nil && n.ZoneIndex == to.Index {
				toTile = n
				break
			}
		}
		if toTile == nil || toTile.ZoneIndex != to.Index {
			return nil, fmt.Errorf("segment: connection %s: no paired exit tile found across the border", c.ID)
		}

		from.Exits[c.ID] = fromTile.Pos
		to.Exits[c.ID] = toTile.Pos
		from.RoadNodes[fromTile.Pos] = zone.NodeExit
		to.RoadNodes[toTile.Pos] = zone.NodeExit

		if c.Guarded {
			g := mapobject.NewMapGuard(c.GuardValue)
			if c.MirrorFromID != "" {
				if mirror, ok := guardByConnID[c.MirrorFromID]; ok {
					g.Mirror(mirror)
				}
			}
			guardByConnID[c.ID] = g
			guards = append(guards, g)
		}

		radius := c.Radius
		if radius <= 0 {
			radius = 1
		}
		erase := neighborhood(grid, fromTile.Pos, radius)
		erase = erase.Union(neighborhood(grid, toTile.Pos, radius))
		claimed = claimed.Union(erase)
	}
	return guards, nil
}

func neighborhood(grid *tilegrid.TileGrid, center tilegrid.Pos, radius int) region.Region {
	var tiles []*tilegrid.Tile
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := tilegrid.Pos{X: center.X + dx, Y: center.Y + dy, Z: center.Z}
			if t := grid.At(p); t != nil {
				tiles = append(tiles, t)
			}
		}
	}
	return region.New(tiles)
}
