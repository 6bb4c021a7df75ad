package segment

import (
	"container/heap"
	"sort"

	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

type heatNode struct {
	pos      tilegrid.Pos
	priority int
	index    int
}

type heatQueue []*heatNode

func (q heatQueue) Len() int           { return len(q) }
func (q heatQueue) Less(i, j int) bool { return q[i].priority < q[j].priority }
func (q heatQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i]; q[i].index, q[j].index = i, j }
func (q *heatQueue) Push(x interface{}) {
	n := x.(*heatNode)
	n.index = len(*q)
	*q = append(*q, n)
}
func (q *heatQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// tileCost is spec.md §4.2's heat-map move cost: 100 for both road and
// ordinary tiles, raised to 160 for a tile inside NeedPlaceObstacles or
// orthogonally adjacent to it.
func tileCost(z *zone.TileZone, p tilegrid.Pos) int {
	for _, q := range append(neighborsOf(z, p), p) {
		if z.NeedPlaceObstacles.Contains(&tilegrid.Tile{Pos: q}) {
			return 160
		}
	}
	return 100
}

// ComputeHeatMap runs a multi-source Dijkstra from the zone's Town nodes
// (falling back to Exit nodes, then to the zone centroid) over
// InnerAreaUsable union the road-potential area, then quantizes the
// resulting distances into MaxHeatBins equal-count buckets, computed
// separately for road tiles and plain segment tiles (spec.md §4.2 Heat
// map).
func ComputeHeatMap(z *zone.TileZone, layout *Layout) error {
	sources := nodesWithLevel(z, zone.NodeTown)
	if len(sources) == 0 {
		sources = nodesWithLevel(z, zone.NodeExit)
	}
	if len(sources) == 0 {
		sources = []tilegrid.Pos{z.CentroidTarget}
	}

	walkable := z.InnerAreaUsable.Union(layout.RoadPotential)
	dist := dijkstra(z, walkable, sources)

	roadDist := make(map[tilegrid.Pos]int)
	plainDist := make(map[tilegrid.Pos]int)
	for p, d := range dist {
		if layout.RoadPotential.Contains(&tilegrid.Tile{Pos: p}) {
			roadDist[p] = d
		} else {
			plainDist[p] = d
		}
	}

	maxHeat := z.MaxHeatBins
	if maxHeat <= 0 {
		maxHeat = 5
	}
	for p, bucket := range quantize(roadDist, maxHeat) {
		z.HeatMap[p] = bucket
	}
	for p, bucket := range quantize(plainDist, maxHeat) {
		z.HeatMap[p] = bucket
	}
	return nil
}

func nodesWithLevel(z *zone.TileZone, level zone.NodeLevel) []tilegrid.Pos {
	var out []tilegrid.Pos
	for p, l := range z.RoadNodes {
		if l == level {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func dijkstra(z *zone.TileZone, walkable interface {
	Contains(*tilegrid.Tile) bool
}, sources []tilegrid.Pos) map[tilegrid.Pos]int {
	dist := make(map[tilegrid.Pos]int)
	q := &heatQueue{}
	heap.Init(q)
	for _, s := range sources {
		dist[s] = 0
		heap.Push(q, &heatNode{pos: s, priority: 0})
	}

	for q.Len() > 0 {
		cur := heap.Pop(q).(*heatNode)
		if cur.priority > dist[cur.pos] {
			continue
		}
		for _, n := range neighborsOf(z, cur.pos) {
			if !walkable.Contains(&tilegrid.Tile{Pos: n}) {
				continue
			}
			next := cur.priority + tileCost(z, n)
			if existing, ok := dist[n]; !ok || next < existing {
				dist[n] = next
				heap.Push(q, &heatNode{pos: n, priority: next})
			}
		}
	}
	return dist
}

// neighborsOf returns the 4 orthogonal neighbor positions of p, unfiltered
// (callers check membership themselves), without needing a *tilegrid.Tile (Dijkstra here operates on
// positions directly since the road-potential area holds tiles whose
// neighbor pointers were already rewired to the grid they came from).
func neighborsOf(z *zone.TileZone, p tilegrid.Pos) []tilegrid.Pos {
	return []tilegrid.Pos{
		{X: p.X + 1, Y: p.Y, Z: p.Z},
		{X: p.X - 1, Y: p.Y, Z: p.Z},
		{X: p.X, Y: p.Y + 1, Z: p.Z},
		{X: p.X, Y: p.Y - 1, Z: p.Z},
	}
}

func quantize(dist map[tilegrid.Pos]int, buckets int) map[tilegrid.Pos]int {
	type entry struct {
		pos tilegrid.Pos
		d   int
	}
	entries := make([]entry, 0, len(dist))
	for p, d := range dist {
		entries = append(entries, entry{p, d})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].d != entries[j].d {
			return entries[i].d < entries[j].d
		}
		return entries[i].pos.Less(entries[j].pos)
	})

	out := make(map[tilegrid.Pos]int, len(entries))
	if len(entries) == 0 || buckets <= 0 {
		return out
	}
	perBucket := (len(entries) + buckets - 1) / buckets
	for i, e := range entries {
		out[e.pos] = i / perBucket
	}
	return out
}
