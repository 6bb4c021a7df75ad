package segment

import (
	"fmt"

	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// areaTolerance is satisfied when a zone's placed area is within 10 tiles
// or 5% of its target, whichever is larger — the looser of the two bounds
// spec.md §4.2 names for refinement termination.
func areaTolerance(target int) int {
	pct := target * 5 / 100
	if pct > 10 {
		return pct
	}
	return 10
}

// InitialAssignment runs the first K-means pass of spec.md §4.2: one
// cluster per zone, seeded at the zone's declared start tile, anchored
// against drift by an extra-mass point at that same tile weighted at
// 2*areaHint.
func InitialAssignment(all region.Region, zones []*zone.TileZone) ([]region.Region, error) {
	mapArea := all.Len()
	totalRelative := 0
	for _, z := range zones {
		totalRelative += z.RelativeSize
	}
	if totalRelative <= 0 {
		return nil, fmt.Errorf("segment: total relative zone size must be positive")
	}

	specs := make([]region.ClusterSpec, len(zones))
	for i, z := range zones {
		areaHint := zone.AbsoluteArea(z.RelativeSize, mapArea, totalRelative)
		start := z.CentroidTarget
		specs[i] = region.ClusterSpec{
			InitialCentroid: start,
			AreaHint:        areaHint,
			ExtraMassPoint:  &start,
			ExtraMassWeight: 2 * areaHint,
		}
	}
	return all.KMeansSplit(specs, 30)
}

// RefineAreas iterates up to maxPasses times, correcting each cluster's
// area hint toward its zone's target until every zone is within tolerance
// (areaTolerance) or the pass budget is exhausted. Returns the final
// per-zone regions in zone order.
func RefineAreas(all region.Region, zones []*zone.TileZone, maxPasses int) ([]region.Region, error) {
	if maxPasses <= 0 {
		maxPasses = 10
	}
	mapArea := all.Len()
	totalRelative := 0
	for _, z := range zones {
		totalRelative += z.RelativeSize
	}
	targets := make([]int, len(zones))
	areaHints := make([]int, len(zones))
	starts := make([]tilegrid.Pos, len(zones))
	for i, z := range zones {
		targets[i] = zone.AbsoluteArea(z.RelativeSize, mapArea, totalRelative)
		areaHints[i] = targets[i]
		starts[i] = z.CentroidTarget
	}

	var placed []region.Region
	for pass := 0; pass < maxPasses; pass++ {
		specs := make([]region.ClusterSpec, len(zones))
		for i := range zones {
			specs[i] = region.ClusterSpec{
				InitialCentroid: starts[i],
				AreaHint:        areaHints[i],
				ExtraMassPoint:  &starts[i],
				ExtraMassWeight: 2 * areaHints[i],
			}
		}
		result, err := all.KMeansSplit(specs, 30)
		if err != nil {
			return nil, fmt.Errorf("segment: area refinement pass %d: %w", pass, err)
		}
		placed = result

		converged := true
		for i, r := range placed {
			diff := targets[i] - r.Len()
			if diff < 0 {
				diff = -diff
			}
			if diff > areaTolerance(targets[i]) {
				converged = false
			}
			correction := areaHints[i] + (targets[i] - r.Len())
			if correction < 1 {
				correction = 1
			}
			areaHints[i] = correction
			starts[i] = r.Centroid(true)
		}
		if converged {
			return placed, nil
		}
	}
	return nil, fmt.Errorf("segment: area refinement did not converge within %d passes", maxPasses)
}

// PostProcess stamps each zone's final members onto its TileZone: the
// materialized Area/edges, the zone back-pointer on every member tile, and
// the inbound centroid override of CentroidTarget.
func PostProcess(zones []*zone.TileZone, placed []region.Region) error {
	if len(zones) != len(placed) {
		return fmt.Errorf("segment: PostProcess got %d zones but %d regions", len(zones), len(placed))
	}
	for i, z := range zones {
		r := placed[i]
		if r.Len() == 0 {
			return fmt.Errorf("segment: zone %s received an empty area", z.ID)
		}
		rwe := region.NewRegionWithEdge(r)
		z.Area = &rwe
		for _, t := range r.Tiles() {
			t.ZoneIndex = z.Index
		}
		z.CentroidTarget = r.Centroid(true)
	}
	return nil
}
