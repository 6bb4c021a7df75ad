package region

import "github.com/mapron/freeheroes-rmg/pkg/tilegrid"

// Centroid returns the integer mean position of the region's members. If
// ensureInbounds is true and the raw mean is not itself a member, the
// result snaps to whichever of the member nearest the mean and that
// member's 8-neighbors (members only) minimizes the summed squared
// distance to every tile in the region.
func (r Region) Centroid(ensureInbounds bool) tilegrid.Pos {
	if len(r.tiles) == 0 {
		return tilegrid.Pos{}
	}

	var sumX, sumY, sumZ int
	for _, t := range r.tiles {
		sumX += t.Pos.X
		sumY += t.Pos.Y
		sumZ += t.Pos.Z
	}
	n := len(r.tiles)
	mean := tilegrid.Pos{X: sumX / n, Y: sumY / n, Z: sumZ / n}

	if !ensureInbounds || r.containsPos(mean) {
		return mean
	}

	candidates := []tilegrid.Pos{mean}
	if t := r.nearestTileTo(mean); t != nil {
		candidates = append(candidates, t.Pos)
		for _, nb := range t.Neighbors8() {
			candidates = append(candidates, nb.Pos)
		}
	}

	best := mean
	bestScore := int64(-1)
	for _, c := range candidates {
		if !r.containsPos(c) {
			continue
		}
		score := r.sumSquaredDistanceTo(c)
		if bestScore < 0 || score < bestScore {
			bestScore = score
			best = c
		}
	}
	if bestScore < 0 {
		// No candidate landed inside the region; fall back to nearest member.
		if t := r.nearestTileTo(mean); t != nil {
			return t.Pos
		}
	}
	return best
}

func (r Region) containsPos(p tilegrid.Pos) bool {
	for _, t := range r.tiles {
		if t.Pos == p {
			return true
		}
	}
	return false
}

func (r Region) sumSquaredDistanceTo(p tilegrid.Pos) int64 {
	var sum int64
	for _, t := range r.tiles {
		dx := int64(t.Pos.X - p.X)
		dy := int64(t.Pos.Y - p.Y)
		sum += dx*dx + dy*dy
	}
	return sum
}

// ClosestTo returns the member of r whose position is nearest to p under
// squared Euclidean distance (ties broken by sort order).
func (r Region) ClosestTo(p tilegrid.Pos) *tilegrid.Tile {
	return r.nearestTileTo(p)
}

func (r Region) nearestTileTo(p tilegrid.Pos) *tilegrid.Tile {
	var best *tilegrid.Tile
	bestDist := int64(-1)
	for _, t := range r.tiles {
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
