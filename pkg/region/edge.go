package region

import "github.com/mapron/freeheroes-rmg/pkg/tilegrid"

// InnerEdge returns the tiles of r that lack at least one neighbor (within
// r) of the requested adjacency. diagonal=false checks the 4-neighborhood,
// diagonal=true checks the full 8-neighborhood.
func (r Region) InnerEdge(diagonal bool) Region {
	var out []*tilegrid.Tile
	for _, t := range r.tiles {
		neighbors := t.NeighborsOrtho()
		if diagonal {
			neighbors = t.Neighbors8()
		}
		count := 0
		for _, n := range neighbors {
			if r.Contains(n) {
				count++
			}
		}
		want := 4
		if diagonal {
			want = 8
		}
		if count < want {
			out = append(out, t)
		}
	}
	return New(out)
}

// OuterEdge returns the neighbors of r (8-neighborhood) that are not
// themselves members of r.
func (r Region) OuterEdge() Region {
	var out []*tilegrid.Tile
	for _, t := range r.tiles {
		for _, n := range t.Neighbors8() {
			if !r.Contains(n) {
				out = append(out, n)
			}
		}
	}
	return New(out)
}

// RegionWithEdge pairs a Region with its materialized inner and outer edge,
// kept in sync by the Refine* family below.
type RegionWithEdge struct {
	Area  Region
	Inner Region
	Outer Region
}

// NewRegionWithEdge materializes both edges of area.
func NewRegionWithEdge(area Region) RegionWithEdge {
	return RegionWithEdge{
		Area:  area,
		Inner: area.InnerEdge(false),
		Outer: area.OuterEdge(),
	}
}

func (rwe *RegionWithEdge) rematerialize() {
	rwe.Inner = rwe.Area.InnerEdge(false)
	rwe.Outer = rwe.Area.OuterEdge()
}

// RefineRemoveSpikes drops tiles that have only one orthogonal neighbor in
// the area (single-tile spikes protruding from the mass) and rematerializes
// both edges.
func (rwe *RegionWithEdge) RefineRemoveSpikes() {
	var keep []*tilegrid.Tile
	for _, t := range rwe.Area.tiles {
		count := 0
		for _, n := range t.NeighborsOrtho() {
			if rwe.Area.Contains(n) {
				count++
			}
		}
		if count > 1 {
			keep = append(keep, t)
		}
	}
	rwe.Area = New(keep)
	rwe.rematerialize()
}

// RefineRemoveHollows fills outer-edge tiles that have at least three
// orthogonal neighbors already in the area (single-tile holes) and
// rematerializes both edges.
func (rwe *RegionWithEdge) RefineRemoveHollows() {
	add := rwe.Outer.tiles[:0:0]
	for _, t := range rwe.Outer.tiles {
		count := 0
		for _, n := range t.NeighborsOrtho() {
			if rwe.Area.Contains(n) {
				count++
			}
		}
		if count >= 3 {
			add = append(add, t)
		}
	}
	rwe.Area = rwe.Area.Union(New(add))
	rwe.rematerialize()
}

// RefineExpand grows the area by one tile of outer edge and rematerializes
// both edges.
func (rwe *RegionWithEdge) RefineExpand() {
	rwe.Area = rwe.Area.Union(rwe.Outer)
	rwe.rematerialize()
}

// RefineShrink removes the current inner edge from the area and
// rematerializes both edges.
func (rwe *RegionWithEdge) RefineShrink() {
	rwe.Area = rwe.Area.Diff(rwe.Inner)
	rwe.rematerialize()
}
