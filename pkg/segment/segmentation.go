package segment

import (
	"fmt"

	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/roads"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// BuildSegments splits z.InnerAreaUsable into sub-segments of at most
// maxArea tiles (spec.md §4.2 Segmentation), smooths each segment's edge
// with two successive refine passes (remove spikes, then fill hollows),
// and stamps SegmentIndex onto every member tile.
func BuildSegments(z *zone.TileZone, maxArea int) (*Layout, error) {
	if z.InnerAreaUsable.Len() == 0 {
		return nil, fmt.Errorf("segment: zone %s has an empty usable area", z.ID)
	}
	regions, err := z.InnerAreaUsable.SplitByMaxArea(maxArea)
	if err != nil {
		return nil, fmt.Errorf("segment: zone %s segmentation: %w", z.ID, err)
	}

	layout := NewLayout(z.Index)
	for i, r := range regions {
		if r.Len() == 0 {
			continue
		}
		rwe := region.NewRegionWithEdge(r)
		rwe.RefineRemoveSpikes()
		rwe.RefineRemoveHollows()

		idx := len(layout.Segments)
		seg := &Segment{Index: idx, Area: rwe.Area}
		layout.Segments = append(layout.Segments, seg)
		for _, t := range seg.Area.Tiles() {
			t.SegmentIndex = idx
		}
	}
	return layout, nil
}

// BuildRoadNet derives the zone's road-potential area from the shared
// borders between sub-segments, locates node candidates (tiles whose
// 8-neighborhood touches 3+ distinct segments), reduces each connected
// component of candidates to one node, and classifies every node by
// priority (spec.md §4.2 Road net within a zone). Exit nodes already
// registered by ProcessConnections are preserved and never downgraded.
func BuildRoadNet(z *zone.TileZone, layout *Layout) error {
	var roadTiles []*tilegrid.Tile
	for _, seg := range layout.Segments {
		for _, t := range seg.Area.Tiles() {
			for _, n := range t.NeighborsOrtho() {
				if n != nil && n.SegmentIndex >= 0 && n.SegmentIndex != t.SegmentIndex {
					roadTiles = append(roadTiles, t)
					break
				}
			}
		}
	}
	roadPotential := region.New(roadTiles)

	for _, seg := range layout.Segments {
		seg.Area = seg.Area.Diff(roadPotential)
	}
	for _, t := range roadPotential.Tiles() {
		t.SegmentIndex = -1
	}
	layout.RoadPotential = roadPotential

	var candidates []*tilegrid.Tile
	for _, t := range roadPotential.Tiles() {
		labels := map[int]bool{}
		for _, n := range t.Neighbors8() {
			if n != nil && n.SegmentIndex >= 0 {
				labels[n.SegmentIndex] = true
			}
		}
		if len(labels) >= 3 {
			candidates = append(candidates, t)
		}
	}

	components := region.New(candidates).SplitByFloodFill(true, nil)
	for _, comp := range components {
		if comp.Len() == 0 {
			continue
		}
		node := comp.Centroid(true)
		level := classifyNode(z, node)
		setNodeLevel(z, node, level)
	}
	return nil
}

func classifyNode(z *zone.TileZone, p tilegrid.Pos) zone.NodeLevel {
	if existing, ok := z.RoadNodes[p]; ok && existing >= zone.NodeExit {
		return existing
	}
	if z.Area != nil && z.Area.Inner.Contains(&tilegrid.Tile{Pos: p}) {
		return zone.NodeBorderPoint
	}
	if isNearTown(z, p) {
		return zone.NodeTown
	}
	return zone.NodeInnerPoint
}

// isNearTown treats any node within CentroidDispersion+1 tiles of the
// zone's configured start position on both axes as a Town node, since the template places the main town at
// the zone's declared centroid target.
func isNearTown(z *zone.TileZone, p tilegrid.Pos) bool {
	dx := p.X - z.CentroidTarget.X
	dy := p.Y - z.CentroidTarget.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= z.CentroidDispersion+1 && dy <= z.CentroidDispersion+1
}

func setNodeLevel(z *zone.TileZone, p tilegrid.Pos, level zone.NodeLevel) {
	if existing, ok := z.RoadNodes[p]; !ok || level > existing {
		z.RoadNodes[p] = level
	}
}

// RepairConnectivity flood-fills the zone's road-potential area; if it has
// more than one connected component, it A*-paths every orphan component's
// centroid to the nearest tile of the largest component (over the zone's
// whole area, diagonals allowed) and folds the path into the
// road-potential area, per spec.md §4.2 Connectivity repair.
func RepairConnectivity(grid *tilegrid.TileGrid, z *zone.TileZone, layout *Layout) error {
	components := layout.RoadPotential.SplitByFloodFill(false, nil)
	if len(components) <= 1 {
		return nil
	}

	largest := 0
	for i, c := range components {
		if c.Len() > components[largest].Len() {
			largest = i
		}
	}

	for i, c := range components {
		if i == largest || c.Len() == 0 {
			continue
		}
		from := c.Centroid(true)
		to := components[largest].ClosestTo(from).Pos
		potential := layout.RoadPotential
		cost := func(t *tilegrid.Tile) int {
			if potential.Contains(t) {
				return 60
			}
			return 100
		}
		path, err := roads.AStar(grid, from, to, z.Area.Area, true, roads.CostFunc(cost))
		if err != nil {
			return fmt.Errorf("segment: zone %s connectivity repair: %w", z.ID, err)
		}
		layout.RoadPotential = layout.RoadPotential.Union(region.New(path))
	}
	return nil
}
