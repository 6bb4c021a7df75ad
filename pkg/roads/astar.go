package roads

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

// CostFunc returns the move cost of entering t, where 100 is neutral
// (spec.md §4.2's heat-map baseline). AStar treats a nil CostFunc as
// uniform cost; pkg/segment supplies one in RepairConnectivity to bias
// repair paths toward tiles already claimed by the road network.
type CostFunc func(t *tilegrid.Tile) int

// astarNode is one entry in the open set.
type astarNode struct {
	tile     *tilegrid.Tile
	priority float64
	index    int
}

type astarQueue []*astarNode

func (q astarQueue) Len() int            { return len(q) }
func (q astarQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q astarQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index, q[j].index = i, j }
func (q *astarQueue) Push(x interface{}) {
	n := x.(*astarNode)
	n.index = len(*q)
	*q = append(*q, n)
}
func (q *astarQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// AStar finds a least-cost path from `from` to `to`, restricted to tiles in
// allowed, under cost. diagonals enables 8-neighbor movement at cost
// sqrt(2) relative to the orthogonal cost (the "allTiles" mode from
// spec.md §4.3, used for town-to-usable-inner-area connections); the
// default is 4-neighbor movement. The heuristic is Chebyshev distance * 10,
// matching spec.md's A* heuristic.
// cost is optional; when given, its first element scales each step (cost
// 100 is neutral, matching spec.md's heat-map baseline), letting a caller
// steer the path toward or away from tiles it cares about without changing
// reachability.
func AStar(grid *tilegrid.TileGrid, from, to tilegrid.Pos, allowed region.Region, diagonals bool, cost ...CostFunc) ([]*tilegrid.Tile, error) {
	var costFn CostFunc
	if len(cost) > 0 {
		costFn = cost[0]
	}
	start := grid.At(from)
	goal := grid.At(to)
	if start == nil || goal == nil {
		return nil, fmt.Errorf("roads: AStar endpoints must be in-bounds")
	}
	if !allowed.Contains(start) || !allowed.Contains(goal) {
		return nil, fmt.Errorf("roads: AStar endpoints must lie in the allowed area")
	}

	open := &astarQueue{}
	heap.Init(open)
	heap.Push(open, &astarNode{tile: start, priority: heuristic(start.Pos, goal.Pos)})

	cameFrom := map[tilegrid.Pos]*tilegrid.Tile{}
	gScore := map[tilegrid.Pos]float64{start.Pos: 0}
	closed := map[tilegrid.Pos]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*astarNode).tile
		if cur.Pos == goal.Pos {
			return reconstruct(grid, cameFrom, cur), nil
		}
		if closed[cur.Pos] {
			continue
		}
		closed[cur.Pos] = true

		neighbors := cur.NeighborsOrtho()
		if diagonals {
			neighbors = cur.Neighbors8()
		}
		for _, n := range neighbors {
			if n == nil || !allowed.Contains(n) || closed[n.Pos] {
				continue
			}
			stepCost := 1.0
			if diagonals && isDiagonalStep(cur.Pos, n.Pos) {
				stepCost = math.Sqrt2
			}
			if costFn != nil {
				stepCost *= float64(costFn(n)) / 100.0
			}
			tentative := gScore[cur.Pos] + stepCost
			if existing, ok := gScore[n.Pos]; ok && tentative >= existing {
				continue
			}
			cameFrom[n.Pos] = cur
			gScore[n.Pos] = tentative
			heap.Push(open, &astarNode{tile: n, priority: tentative + heuristic(n.Pos, goal.Pos)})
		}
	}
	return nil, fmt.Errorf("roads: no path from %s to %s within allowed area", from, to)
}

func heuristic(a, b tilegrid.Pos) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	cheby := dx
	if dy > cheby {
		cheby = dy
	}
	return float64(cheby) * 10
}

func isDiagonalStep(a, b tilegrid.Pos) bool {
	return a.X != b.X && a.Y != b.Y
}

func reconstruct(grid *tilegrid.TileGrid, cameFrom map[tilegrid.Pos]*tilegrid.Tile, end *tilegrid.Tile) []*tilegrid.Tile {
	path := []*tilegrid.Tile{end}
	cur := end
	for {
		prev, ok := cameFrom[cur.Pos]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return patchDiagonals(grid, path)
}

// patchDiagonals inserts, for every diagonal step in path, one of the two
// intermediate orthogonal tiles so the rendered road stays 4-connected
// (spec.md §4.3). Ties prefer a tile already present elsewhere in the path;
// patched tiles are fetched from grid so they remain the canonical instance
// rather than a detached copy.
func patchDiagonals(grid *tilegrid.TileGrid, path []*tilegrid.Tile) []*tilegrid.Tile {
	if len(path) < 2 {
		return path
	}
	out := make([]*tilegrid.Tile, 0, len(path)*2)
	inPath := make(map[tilegrid.Pos]bool, len(path))
	for _, t := range path {
		inPath[t.Pos] = true
	}
	out = append(out, path[0])
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if isDiagonalStep(prev.Pos, cur.Pos) {
			optA := tilegrid.Pos{X: cur.Pos.X, Y: prev.Pos.Y, Z: prev.Pos.Z}
			optB := tilegrid.Pos{X: prev.Pos.X, Y: cur.Pos.Y, Z: prev.Pos.Z}
			pick := optA
			if inPath[optB] && !inPath[optA] {
				pick = optB
			}
			if t := grid.At(pick); t != nil {
				out = append(out, t)
			}
		}
		out = append(out, cur)
	}
	return out
}
