package distribute

import (
	"sort"

	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/segment"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// Distributor places ObjectGenerator's output onto one zone's free tiles,
// tracking the running occupied region across every call to Place so later
// objects never collide with earlier ones.
type Distributor struct {
	grid     *tilegrid.TileGrid
	z        *zone.TileZone
	layout   *segment.Layout
	occupied region.Region
}

// New builds a Distributor for one zone's completed segmentation.
func New(grid *tilegrid.TileGrid, z *zone.TileZone, layout *segment.Layout) *Distributor {
	return &Distributor{grid: grid, z: z, layout: layout}
}

// Place runs the heat-aware bin-pack + K-means fragmentation + shift/retry
// loop over objs, in the order given (callers sort by descending
// guard/score so the hardest-to-place objects claim good ground first).
// preferredHeat[i] is objs[i]'s ScoreSettings.PreferredHeat first choice (0
// if unset); it must be the same length as objs, or is ignored if not. An
// object whose collision could not be resolved is rejected via
// SetAccepted(false) and excluded from the returned slice.
func (d *Distributor) Place(objs []mapobject.ZoneObject, preferredHeat []int, src rng.Source) []mapobject.ZoneObject {
	if len(preferredHeat) != len(objs) {
		preferredHeat = make([]int, len(objs))
	}
	areas := make([]int, len(objs))
	for i, obj := range objs {
		areas[i] = estimateArea(obj)
	}

	assign := binPack(d.layout.Segments, d.z.HeatMap, d.occupied, areas, preferredHeat)
	fragments := d.fragmentsBySegment(assign, areas)
	roadNodes := nodePositions(d.z)

	var placed []mapobject.ZoneObject
	for i, obj := range objs {
		anchor, ok := d.anchorFor(assign[i], fragments[i], src)
		if !ok {
			obj.SetAccepted(false)
			continue
		}

		var guardPos *tilegrid.Pos
		if obj.GetGuard() > 0 {
			guardPos = pickGuardNeighbor(d.grid, anchor, d.z.InnerAreaUsable, d.occupied)
		}

		result, fp := resolveCollision(obj, anchor, guardPos, d.z.InnerAreaUsable, d.occupied, d.z.CentroidTarget)
		if result.Kind == ImpossibleShift {
			obj.SetAccepted(false)
			continue
		}

		finalAnchor := anchor.Add(tilegrid.Pos{X: result.DX, Y: result.DY})
		if !visibleFromAnyRoad(d.grid, d.occupied, roadNodes, finalAnchor) {
			obj.SetAccepted(false)
			continue
		}

		var finalGuard *tilegrid.Pos
		if guardPos != nil {
			shifted := guardPos.Add(tilegrid.Pos{X: result.DX, Y: result.DY})
			finalGuard = &shifted
		}

		obj.Place(finalAnchor, finalGuard)
		d.occupied = d.occupied.Union(fp.Occupied)
		placed = append(placed, obj)
	}
	return placed
}

// estimateArea approximates spec.md §4.5's scheduling-time occupied-area
// estimate (reward cells + guard danger box) without needing a candidate
// anchor yet — the anchor-dependent pass-around edge is left out since it
// depends on tiles occupied by objects not yet placed.
func estimateArea(obj mapobject.ZoneObject) int {
	mask := obj.GetMask()
	area := len(mask.Visitable) + len(mask.Blocked) + 1
	if obj.GetGuard() > 0 {
		side := 2*dangerRadius + 1
		area += side * side
	}
	return area
}

// segState is one segment's scheduling-time free area and per-heat-level
// tile count histogram, both of which shrink as binPack assigns objects to
// it ahead of concrete placement.
type segState struct {
	freeLen int
	hist    map[int]int
}

func newSegState(seg *segment.Segment, occupied region.Region, heat map[tilegrid.Pos]int) segState {
	free := seg.Area.Diff(occupied)
	hist := make(map[int]int)
	for _, t := range free.Tiles() {
		hist[heat[t.Pos]]++
	}
	return segState{freeLen: free.Len(), hist: hist}
}

func sortedLevels(hist map[int]int) []int {
	levels := make([]int, 0, len(hist))
	for l := range hist {
		levels = append(levels, l)
	}
	sort.Ints(levels)
	return levels
}

// binPack implements spec.md §4.5's "Initial distribution (bin-packing)":
// objects are scheduled largest-estimated-area first; each is assigned the
// first segment with enough free area sitting at max(preferredHeat,
// minAvailableHeat) across all segments with enough free area, falling
// back to any segment with enough free area ignoring heat (the overflow
// bucket), and finally to the segment with the most free area if nothing
// has enough. It returns -1 for every object when there are no segments.
// There is no object-specific radiusVector offset modeled in this
// pipeline's object types, so "closest segment to radiusVector" collapses
// to "the first eligible segment" (see DESIGN.md).
func binPack(segments []*segment.Segment, heat map[tilegrid.Pos]int, occupied region.Region, areas []int, preferredHeat []int) []int {
	assign := make([]int, len(areas))
	if len(segments) == 0 {
		for i := range assign {
			assign[i] = -1
		}
		return assign
	}

	states := make([]segState, len(segments))
	for i, seg := range segments {
		states[i] = newSegState(seg, occupied, heat)
	}

	order := make([]int, len(areas))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return areas[order[a]] > areas[order[b]] })

	for _, i := range order {
		area := areas[i]
		pref := preferredHeat[i]

		minAvailable := -1
		for _, st := range states {
			if st.freeLen < area {
				continue
			}
			for level, count := range st.hist {
				if count <= 0 {
					continue
				}
				if minAvailable == -1 || level < minAvailable {
					minAvailable = level
				}
			}
		}
		placedHeat := pref
		if minAvailable > placedHeat {
			placedHeat = minAvailable
		}

		pick := -1
		for idx, st := range states {
			if st.freeLen >= area && st.hist[placedHeat] > 0 {
				pick = idx
				break
			}
		}
		if pick == -1 {
			for idx, st := range states {
				if st.freeLen >= area {
					pick = idx
					break
				}
			}
		}
		if pick == -1 {
			best := 0
			for idx := 1; idx < len(states); idx++ {
				if states[idx].freeLen > states[best].freeLen {
					best = idx
				}
			}
			pick = best
		}

		assign[i] = pick
		states[pick].freeLen -= area
		remaining := area
		if take := states[pick].hist[placedHeat]; take > 0 {
			if take > remaining {
				take = remaining
			}
			states[pick].hist[placedHeat] -= take
			remaining -= take
		}
		for _, level := range sortedLevels(states[pick].hist) {
			if remaining == 0 {
				break
			}
			count := states[pick].hist[level]
			if count <= 0 {
				continue
			}
			take := count
			if take > remaining {
				take = remaining
			}
			states[pick].hist[level] -= take
			remaining -= take
		}
	}
	return assign
}

// fragmentsBySegment runs spec.md §4.5's "Concrete placement per segment"
// K-means step: each segment's currently-free area is split into one
// fragment per object binPack assigned to it, seeded from the free area's
// own centroid (KMeansSplit's dedupeCentroids spreads identical seeds to
// distinct tiles deterministically, so no RNG draw is needed here, keeping
// this step RNG-free as spec.md §5 requires). Falls back to handing every
// object in an oversubscribed or unsplittable segment the whole free area.
func (d *Distributor) fragmentsBySegment(assign []int, areas []int) map[int]region.Region {
	bySeg := make(map[int][]int)
	for i, s := range assign {
		if s < 0 {
			continue
		}
		bySeg[s] = append(bySeg[s], i)
	}
	segIdxs := make([]int, 0, len(bySeg))
	for s := range bySeg {
		segIdxs = append(segIdxs, s)
	}
	sort.Ints(segIdxs)

	fragments := make(map[int]region.Region, len(areas))
	for _, segIdx := range segIdxs {
		idxs := bySeg[segIdx]
		if segIdx < 0 || segIdx >= len(d.layout.Segments) {
			continue
		}
		free := d.layout.Segments[segIdx].Area.Diff(d.occupied)
		if free.Len() == 0 {
			continue
		}
		if len(idxs) > free.Len() {
			for _, objIdx := range idxs {
				fragments[objIdx] = free
			}
			continue
		}

		seed := free.Centroid(true)
		specs := make([]region.ClusterSpec, len(idxs))
		for k, objIdx := range idxs {
			specs[k] = region.ClusterSpec{InitialCentroid: seed, AreaHint: areas[objIdx]}
		}
		parts, err := free.KMeansSplit(specs, 0)
		if err != nil {
			for _, objIdx := range idxs {
				fragments[objIdx] = free
			}
			continue
		}
		for k, objIdx := range idxs {
			fragments[objIdx] = parts[k]
		}
	}
	return fragments
}

// anchorFor resolves an object's candidate placement center: its K-means
// fragment centroid when one exists, else the heat-preferring pick over
// its assigned segment's free area, else over the whole zone. ok is false
// only when every one of those falls back to an empty region.
func (d *Distributor) anchorFor(segIdx int, frag region.Region, src rng.Source) (tilegrid.Pos, bool) {
	if frag.Len() > 0 {
		return frag.Centroid(true), true
	}
	if segIdx >= 0 && segIdx < len(d.layout.Segments) {
		free := d.layout.Segments[segIdx].Area.Diff(d.occupied)
		if free.Len() > 0 {
			return pickByHeat(free, d.z.HeatMap, src), true
		}
	}
	free := d.z.InnerAreaUsable.Diff(d.occupied)
	if free.Len() == 0 {
		return tilegrid.Pos{}, false
	}
	return pickByHeat(free, d.z.HeatMap, src), true
}

// pickByHeat favors the highest heat bucket present among free's tiles
// (the tiles farthest, by heat-map distance, from the zone's town or exit
// nodes), breaking ties with src.
func pickByHeat(free region.Region, heat map[tilegrid.Pos]int, src rng.Source) tilegrid.Pos {
	tiles := free.Tiles()
	best := -1
	var candidates []tilegrid.Pos
	for _, t := range tiles {
		h := heat[t.Pos]
		if h > best {
			best = h
			candidates = candidates[:0]
		}
		if h == best {
			candidates = append(candidates, t.Pos)
		}
	}
	if len(candidates) == 0 {
		return tiles[0].Pos
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[src.GenSmall(len(candidates))]
}

// pickGuardNeighbor returns the first free, usable 8-neighbor of anchor to
// stand a guard on, or nil if anchor has no such neighbor (the object then
// goes through resolveCollision unguarded at this anchor, which will
// relocate it since an unresolvable guard is itself a collision).
func pickGuardNeighbor(grid *tilegrid.TileGrid, anchor tilegrid.Pos, usable, occupied region.Region) *tilegrid.Pos {
	t := grid.At(anchor)
	if t == nil {
		return nil
	}
	for _, n := range t.Neighbors8() {
		if usable.Contains(n) && !occupied.Contains(n) {
			p := n.Pos
			return &p
		}
	}
	return nil
}

func nodePositions(z *zone.TileZone) []tilegrid.Pos {
	out := make([]tilegrid.Pos, 0, len(z.RoadNodes))
	for p := range z.RoadNodes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
