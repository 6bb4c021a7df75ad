package region

import (
	"fmt"
	"math"

	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

// ClusterSpec describes one cluster's seed for KMeansSplit, matching
// spec.md §4.1's K-means input shape.
type ClusterSpec struct {
	InitialCentroid tilegrid.Pos
	AreaHint        int
	InsideWeight    int // default 2 when zero
	OutsideWeight   int // default 3 when zero
	ExtraMassPoint  *tilegrid.Pos
	ExtraMassWeight int
}

func (c ClusterSpec) insideWeight() int {
	if c.InsideWeight == 0 {
		return 2
	}
	return c.InsideWeight
}

func (c ClusterSpec) outsideWeight() int {
	if c.OutsideWeight == 0 {
		return 3
	}
	return c.OutsideWeight
}

// radiusPromille implements spec.md's radius formula:
// radiusPromille = sqrt(area * 1e6 * 100 / 314).
func radiusPromille(area int) float64 {
	if area <= 0 {
		return 0
	}
	return math.Sqrt(float64(area) * 1e6 * 100 / 314)
}

// linearDistancePromille is the scaled pixel distance between two
// positions: sqrt(dx^2+dy^2) * 1000.
func linearDistancePromille(a, b tilegrid.Pos) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx+dy*dy) * 1000
}

type kmeansCluster struct {
	spec     ClusterSpec
	centroid tilegrid.Pos
	members  []*tilegrid.Tile
}

// KMeansSplit runs the weighted K-means segmentation primitive of
// spec.md §4.1 over r, seeded by specs. It returns one Region per cluster,
// in spec order, possibly empty if a cluster ends up with no members.
func (r Region) KMeansSplit(specs []ClusterSpec, maxIterations int) ([]Region, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("region: KMeansSplit requires at least one cluster spec")
	}
	if len(specs) > r.Len() {
		return nil, fmt.Errorf("region: KMeansSplit cluster count %d exceeds region size %d", len(specs), r.Len())
	}
	if maxIterations <= 0 {
		maxIterations = 30
	}

	clusters := make([]*kmeansCluster, len(specs))
	for i, s := range specs {
		clusters[i] = &kmeansCluster{spec: s, centroid: s.InitialCentroid}
	}
	dedupeCentroids(r, clusters)

	var prevAssignment map[tilegrid.Pos]int
	for iter := 0; iter < maxIterations; iter++ {
		dedupeCentroids(r, clusters)

		assignment := make(map[tilegrid.Pos]int, r.Len())
		for _, c := range clusters {
			c.members = c.members[:0]
		}
		for _, t := range r.tiles {
			best := -1
			bestScore := math.Inf(1)
			for ci, c := range clusters {
				score := clusterScore(c, t.Pos)
				if score < bestScore {
					bestScore = score
					best = ci
				}
			}
			assignment[t.Pos] = best
			clusters[best].members = append(clusters[best].members, t)
		}

		if assignmentsEqual(prevAssignment, assignment) {
			break
		}
		prevAssignment = assignment

		for _, c := range clusters {
			c.centroid = weightedMean(c)
		}
	}

	out := make([]Region, len(clusters))
	for i, c := range clusters {
		out[i] = New(c.members)
	}
	return out, nil
}

func clusterScore(c *kmeansCluster, p tilegrid.Pos) float64 {
	linear := linearDistancePromille(p, c.centroid)
	radius := radiusPromille(c.spec.AreaHint)
	iw := float64(c.spec.insideWeight())
	ow := float64(c.spec.outsideWeight())
	if linear <= radius {
		return linear * iw
	}
	return (linear-radius)*ow + radius*iw
}

func weightedMean(c *kmeansCluster) tilegrid.Pos {
	if len(c.members) == 0 {
		return c.centroid
	}
	var sumX, sumY, count int64
	for _, t := range c.members {
		sumX += int64(t.Pos.X)
		sumY += int64(t.Pos.Y)
		count++
	}
	if c.spec.ExtraMassPoint != nil && c.spec.ExtraMassWeight > 0 {
		sumX += int64(c.spec.ExtraMassWeight) * int64(c.spec.ExtraMassPoint.X)
		sumY += int64(c.spec.ExtraMassWeight) * int64(c.spec.ExtraMassPoint.Y)
		count += int64(c.spec.ExtraMassWeight)
	}
	return tilegrid.Pos{X: int(sumX / count), Y: int(sumY / count), Z: c.centroid.Z}
}

// dedupeCentroids reassigns any centroid that collides with another
// cluster's centroid, or that has drifted outside r, to the nearest member
// tile not already claimed by another cluster.
func dedupeCentroids(r Region, clusters []*kmeansCluster) {
	claimed := make(map[tilegrid.Pos]bool, len(clusters))
	seen := make(map[tilegrid.Pos]bool, len(clusters))

	for _, c := range clusters {
		needsReassign := seen[c.centroid] || !r.containsPos(c.centroid)
		if !needsReassign {
			seen[c.centroid] = true
			claimed[c.centroid] = true
			continue
		}
		best := r.nearestUnclaimed(c.centroid, claimed)
		if best != nil {
			c.centroid = best.Pos
			claimed[c.centroid] = true
			seen[c.centroid] = true
		}
	}
}

func (r Region) nearestUnclaimed(p tilegrid.Pos, claimed map[tilegrid.Pos]bool) *tilegrid.Tile {
	var best *tilegrid.Tile
	bestDist := int64(-1)
	for _, t := range r.tiles {
		if claimed[t.Pos] {
			continue
		}
		dx := int64(t.Pos.X - p.X)
		dy := int64(t.Pos.Y - p.Y)
		d := dx*dx + dy*dy
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = t
		}
	}
	return best
}

func assignmentsEqual(a, b map[tilegrid.Pos]int) bool {
	if a == nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// SplitByKExt seeds k clusters via deterministic farthest-point sampling
// (no RNG is consumed, per spec.md §5's "RNG must not be touched inside the
// [K-means] parallel region") and runs KMeansSplit with equal area hints.
func (r Region) SplitByKExt(k, maxIterations int) ([]Region, error) {
	if k <= 0 {
		return nil, fmt.Errorf("region: SplitByKExt requires k > 0, got %d", k)
	}
	if k > r.Len() {
		return nil, fmt.Errorf("region: SplitByKExt k=%d exceeds region size %d", k, r.Len())
	}

	seeds := farthestPointSeeds(r, k)
	areaHint := r.Len() / k
	specs := make([]ClusterSpec, k)
	for i, s := range seeds {
		specs[i] = ClusterSpec{InitialCentroid: s, AreaHint: areaHint}
	}
	return r.KMeansSplit(specs, maxIterations)
}

func farthestPointSeeds(r Region, k int) []tilegrid.Pos {
	if r.Len() == 0 || k == 0 {
		return nil
	}
	seeds := []tilegrid.Pos{r.tiles[0].Pos}
	for len(seeds) < k {
		var farthest tilegrid.Pos
		bestMinDist := int64(-1)
		for _, t := range r.tiles {
			minDist := int64(math.MaxInt64)
			for _, s := range seeds {
				dx := int64(t.Pos.X - s.X)
				dy := int64(t.Pos.Y - s.Y)
				d := dx*dx + dy*dy
				if d < minDist {
					minDist = d
				}
			}
			if minDist > bestMinDist {
				bestMinDist = minDist
				farthest = t.Pos
			}
		}
		seeds = append(seeds, farthest)
	}
	return seeds
}

// SplitByMaxArea derives K = ceil(|r|/maxArea) and calls SplitByKExt with at
// least 30 iterations, per spec.md §4.2's segmentation step.
func (r Region) SplitByMaxArea(maxArea int) ([]Region, error) {
	if maxArea <= 0 {
		return nil, fmt.Errorf("region: SplitByMaxArea requires maxArea > 0")
	}
	if r.Len() == 0 {
		return nil, fmt.Errorf("region: SplitByMaxArea called on empty region")
	}
	k := (r.Len() + maxArea - 1) / maxArea
	if k < 1 {
		k = 1
	}
	return r.SplitByKExt(k, 30)
}
