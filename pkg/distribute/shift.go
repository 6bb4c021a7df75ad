package distribute

import (
	"sort"

	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

// maxShift bounds how far the oracle nudges a colliding candidate before
// giving up on it (spec.md §4.5's "shift/retry loop" radius).
const maxShift = 5

// ShiftKind classifies a collision-shift oracle's verdict.
type ShiftKind int

const (
	// NoCollision means the candidate fits exactly where it was asked.
	NoCollision ShiftKind = iota
	// HasShift means the candidate fits after moving by (DX, DY).
	HasShift
	// ImpossibleShift means no offset within maxShift (nor the 8-neighbor
	// and map-center-snap fallbacks) clears the collision.
	ImpossibleShift
)

// ShiftResult is the oracle's verdict for one candidate anchor.
type ShiftResult struct {
	Kind   ShiftKind
	DX, DY int
}

// spiralOffsets lists every (dx,dy) within Chebyshev distance maxShift,
// ring by ring (closest first), so the oracle always prefers the smallest
// displacement that clears a collision.
var spiralOffsets = buildSpiralOffsets(maxShift)

func buildSpiralOffsets(radius int) []tilegrid.Pos {
	var out []tilegrid.Pos
	out = append(out, tilegrid.Pos{})
	for r := 1; r <= radius; r++ {
		var ring []tilegrid.Pos
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if abs(dx) != r && abs(dy) != r {
					continue
				}
				ring = append(ring, tilegrid.Pos{X: dx, Y: dy})
			}
		}
		sort.Slice(ring, func(i, j int) bool {
			if ring[i].Y != ring[j].Y {
				return ring[i].Y < ring[j].Y
			}
			return ring[i].X < ring[j].X
		})
		out = append(out, ring...)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// fits reports whether footprint.Occupied lies entirely within usable and
// doesn't intersect existing occupied tiles. PassAroundEdge is not
// checked here.
func fits(fp Footprint, usable, occupied region.Region) bool {
	if fp.Occupied.Diff(usable).Len() != 0 {
		return false
	}
	if fp.Occupied.Intersect(occupied).Len() != 0 {
		return false
	}
	return true
}

// resolveCollision runs the shift/retry loop for obj anchored at anchor:
// try the exact anchor, then every offset in spiralOffsets (8-neighbor
// rings out to maxShift), then finally a map-center-snap retry at the tile
// of usable closest to center. guardPos, if non-nil, is translated by the
// same offset as the reward anchor.
func resolveCollision(obj mapobject.ZoneObject, anchor tilegrid.Pos, guardPos *tilegrid.Pos, usable, occupied region.Region, center tilegrid.Pos) (ShiftResult, Footprint) {
	tryAt := func(a tilegrid.Pos, g *tilegrid.Pos) (bool, Footprint) {
		fp := computeFootprint(obj, a, g, usable)
		return fits(fp, usable, occupied), fp
	}

	for _, off := range spiralOffsets {
		a := anchor.Add(off)
		var g *tilegrid.Pos
		if guardPos != nil {
			shifted := guardPos.Add(off)
			g = &shifted
		}
		if ok, fp := tryAt(a, g); ok {
			kind := NoCollision
			if off != (tilegrid.Pos{}) {
				kind = HasShift
			}
			return ShiftResult{Kind: kind, DX: off.X, DY: off.Y}, fp
		}
	}

	snap := usable.ClosestTo(center)
	if snap != nil {
		delta := snap.Pos.Sub(anchor)
		var g *tilegrid.Pos
		if guardPos != nil {
			shifted := guardPos.Add(delta)
			g = &shifted
		}
		if ok, fp := tryAt(snap.Pos, g); ok {
			return ShiftResult{Kind: HasShift, DX: delta.X, DY: delta.Y}, fp
		}
	}

	return ShiftResult{Kind: ImpossibleShift}, Footprint{}
}
