package distribute

import (
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/norendren/go-fov/fov"
)

// visibilityRadius bounds how far a road tile's shadow-cast view extends
// when checking whether a candidate's visitable face is actually
// approachable, rather than hidden behind a wall of other objects.
const visibilityRadius = 12

// fovGrid adapts a zone's blocked-tile region to go-fov's GameMap
// contract: InBounds and IsOpaque, both by raw coordinate.
type fovGrid struct {
	grid    *tilegrid.TileGrid
	opaque  region.Region
	z       int
}

func (g fovGrid) InBounds(x, y int) bool {
	return g.grid.InBounds(tilegrid.Pos{X: x, Y: y, Z: g.z})
}

func (g fovGrid) IsOpaque(x, y int) bool {
	return g.opaque.Contains(&tilegrid.Tile{Pos: tilegrid.Pos{X: x, Y: y, Z: g.z}})
}

// visibleFromAnyRoad reports whether target is unobstructed (per go-fov's
// shadow-casting) from at least one of roadNodes, treating opaque as the
// set of already-occupied (blocked) tiles. It returns true unconditionally
// when roadNodes is empty, since a zone with no road network yet has
// nothing to check visibility against.
func visibleFromAnyRoad(grid *tilegrid.TileGrid, opaque region.Region, roadNodes []tilegrid.Pos, target tilegrid.Pos) bool {
	if len(roadNodes) == 0 {
		return true
	}
	g := fovGrid{grid: grid, opaque: opaque, z: target.Z}
	view := fov.New()
	for _, node := range roadNodes {
		view.Compute(g, node.X, node.Y, visibilityRadius)
		if view.IsVisible(target.X, target.Y) {
			return true
		}
	}
	return false
}
