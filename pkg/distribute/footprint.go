package distribute

import (
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

// dangerRadius is how far around a guarded object's guard tile other
// objects must stay clear, so two guards never share a fight.
const dangerRadius = 2

// Footprint is everything one candidate placement would occupy: the
// reward object's own visitable/blocked cells, its guard's danger zone
// (empty if unguarded), their union, and the one-tile ring around that
// union inside the usable area. The ring is computed for reference only:
// placement neither checks it nor adds it to the occupied region, so later
// objects may be placed on it.
type Footprint struct {
	RewardArea     region.Region
	GuardPos       *tilegrid.Pos
	DangerZone     region.Region
	Occupied       region.Region
	PassAroundEdge region.Region
}

// computeFootprint builds a Footprint for obj anchored at anchor, with
// guardPos (nil if obj is unguarded). usable bounds the pass-around edge
// to the zone's own walkable area.
func computeFootprint(obj mapobject.ZoneObject, anchor tilegrid.Pos, guardPos *tilegrid.Pos, usable region.Region) Footprint {
	mask := obj.GetMask()
	rewardTiles := make([]*tilegrid.Tile, 0, len(mask.Visitable)+len(mask.Blocked)+1)
	for _, p := range mask.AbsoluteVisitable(anchor) {
		rewardTiles = append(rewardTiles, &tilegrid.Tile{Pos: p})
	}
	for _, p := range mask.AbsoluteBlocked(anchor) {
		rewardTiles = append(rewardTiles, &tilegrid.Tile{Pos: p})
	}
	rewardTiles = append(rewardTiles, &tilegrid.Tile{Pos: anchor})
	rewardArea := region.New(rewardTiles)

	var dangerZone region.Region
	if guardPos != nil {
		dangerZone = region.New(box(*guardPos, dangerRadius))
	}

	occupied := rewardArea.Union(dangerZone)
	passAroundEdge := occupied.OuterEdge().Intersect(usable).Diff(occupied)

	return Footprint{
		RewardArea:     rewardArea,
		GuardPos:       guardPos,
		DangerZone:     dangerZone,
		Occupied:       occupied,
		PassAroundEdge: passAroundEdge,
	}
}

// box returns every tile position in the square of the given radius around
// center (inclusive), as synthetic tiles for region membership purposes.
func box(center tilegrid.Pos, radius int) []*tilegrid.Tile {
	out := make([]*tilegrid.Tile, 0, (2*radius+1)*(2*radius+1))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			out = append(out, &tilegrid.Tile{Pos: tilegrid.Pos{X: center.X + dx, Y: center.Y + dy, Z: center.Z}})
		}
	}
	return out
}
