package roads

import (
	"sort"

	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// Node is one candidate road-node endpoint: a tile plus the priority class
// that orders linking (Towns and Exits are linked before BorderPoints and
// InnerPoints, per spec.md §4.3).
type Node struct {
	Tile     *tilegrid.Tile
	Priority zone.NodeLevel
	Level    zone.RoadLevel // requested road level for paths touching this node
}

// Network is the realized road tile set for one zone: every tile's
// strongest assigned RoadLevel.
type Network struct {
	Levels map[tilegrid.Pos]zone.RoadLevel
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network {
	return &Network{Levels: make(map[tilegrid.Pos]zone.RoadLevel)}
}

// Assign raises every tile in path to at least level (spec.md: "the
// maximum wins when two requirements cross the same tile").
func (n *Network) Assign(path []*tilegrid.Tile, level zone.RoadLevel) {
	for _, t := range path {
		n.Levels[t.Pos] = n.Levels[t.Pos].Max(level)
	}
}

// Region materializes the network's tiles as a region.Region.
func (n *Network) Region(grid *tilegrid.TileGrid) region.Region {
	tiles := make([]*tilegrid.Tile, 0, len(n.Levels))
	for p := range n.Levels {
		if t := grid.At(p); t != nil {
			tiles = append(tiles, t)
		}
	}
	return region.New(tiles)
}

// LinkNodes links every pair of nodes, high priority first, with an A*
// path restricted to roadArea; diagonals enables 8-neighbor movement
// (spec.md's "allTiles" mode, used for town-to-inner-area links). Failures
// to link a lower-priority pair are tolerated (redundant connectivity);
// failures to link two Town/Exit nodes are returned as an error.
func LinkNodes(grid *tilegrid.TileGrid, nodes []Node, roadArea region.Region, diagonals bool) (*Network, error) {
	ordered := append([]Node(nil), nodes...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Priority > ordered[j].Priority })

	net := NewNetwork()
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			a, b := ordered[i], ordered[j]
			path, err := AStar(grid, a.Tile.Pos, b.Tile.Pos, roadArea, diagonals)
			if err != nil {
				if a.Priority >= zone.NodeExit && b.Priority >= zone.NodeExit {
					return nil, err
				}
				continue
			}
			level := a.Level.Max(b.Level)
			if level == zone.NoRoad {
				level = zone.Trail
			}
			net.Assign(path, level)
		}
	}
	RedundancyCleanup(net)
	return net, nil
}

// RedundancyCleanup iteratively removes road tiles whose road neighbors
// form a 2x2 block, a sign of a spurious loop, until no more are found.
// Candidates are visited in sorted-position order so the result is
// deterministic regardless of map iteration order.
func RedundancyCleanup(net *Network) {
	for {
		positions := make([]tilegrid.Pos, 0, len(net.Levels))
		for p := range net.Levels {
			positions = append(positions, p)
		}
		sort.Slice(positions, func(i, j int) bool { return positions[i].Less(positions[j]) })

		removed := false
		for _, p := range positions {
			if _, ok := net.Levels[p]; !ok {
				continue // already removed earlier this pass
			}
			if formsBlock(net, p) {
				delete(net.Levels, p)
				removed = true
			}
		}
		if !removed {
			return
		}
	}
}

func formsBlock(net *Network, p tilegrid.Pos) bool {
	corners := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for _, origin := range corners {
		ox, oy := p.X-origin[0], p.Y-origin[1]
		complete := true
		for _, off := range corners {
			q := tilegrid.Pos{X: ox + off[0], Y: oy + off[1], Z: p.Z}
			if _, ok := net.Levels[q]; !ok {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}
