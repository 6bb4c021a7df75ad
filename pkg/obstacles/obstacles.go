package obstacles

import (
	"sort"
	"strings"

	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

// Placement is one committed obstacle: its catalog id and the anchor
// (bottom-right tile, per mapobject.Mask convention) it was fitted at.
type Placement struct {
	ObstacleID string
	Anchor     tilegrid.Pos
	Mask       mapobject.Mask
}

type candidate struct {
	id     string
	mask   mapobject.Mask
	blocks int
}

// allowsTerrain reports whether rec's "terrain" attribute (a comma-separated
// list of terrain ids it may be placed on) admits terrainID. An empty or
// absent attribute means the obstacle is terrain-agnostic.
func allowsTerrain(rec gamedb.Record, terrainID string) bool {
	raw := rec.String("terrain")
	if raw == "" || terrainID == "" {
		return true
	}
	for _, t := range strings.Split(raw, ",") {
		if strings.TrimSpace(t) == terrainID {
			return true
		}
	}
	return false
}

// candidatesFromDB reads map_obstacle records filtered to those allowed on
// terrainID, building one rectangular blocking mask per record from its
// width/height attributes (defaulting to a 1x1 filler when absent), anchored
// at the bottom-right cell. Candidates are sorted by mask area descending so
// Fill's fresh-position sweep prefers the largest obstacle that fits before
// falling back to smaller fillers.
func candidatesFromDB(db gamedb.Database, terrainID string) []candidate {
	var out []candidate
	for _, rec := range db.Records(gamedb.KindMapObstacle) {
		if !allowsTerrain(rec, terrainID) {
			continue
		}
		w := rec.Int("width")
		if w <= 0 {
			w = 1
		}
		h := rec.Int("height")
		if h <= 0 {
			h = 1
		}
		out = append(out, candidate{id: rec.ID, mask: rectMask(w, h), blocks: w * h})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].blocks != out[j].blocks {
			return out[i].blocks > out[j].blocks
		}
		return out[i].id < out[j].id
	})
	return out
}

func rectMask(w, h int) mapobject.Mask {
	blocked := make([]tilegrid.Pos, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			blocked = append(blocked, tilegrid.Pos{X: -dx, Y: -dy})
		}
	}
	return mapobject.Mask{Blocked: blocked}
}

// fitsAt reports whether every cell of mask anchored at anchor lies inside
// remaining, i.e. placing it here would not block a tile outside the area
// that actually needs blocking.
func fitsAt(remaining region.Region, mask mapobject.Mask, anchor tilegrid.Pos) bool {
	for _, p := range mask.AbsoluteBlocked(anchor) {
		if !remaining.Contains(&tilegrid.Tile{Pos: p}) {
			return false
		}
	}
	return true
}

// Fill sweeps needBeBlocked row by row (Y ascending, then X ascending,
// matching the grid's natural tile order) and, at every still-unconsumed
// position in a pass, randomly picks among every catalog obstacle allowed
// on terrainID whose mask fits exactly within the remaining area anchored
// there. It repeats passes until every tile has been covered or no candidate fits
// any remaining position, in which case the leftover tiles are returned
// uncovered rather than forcing an oversized obstacle to spill outside the
// zone's border.
func Fill(db gamedb.Database, terrainID string, needBeBlocked region.Region, src rng.Source) (placed []Placement, leftover region.Region) {
	candidates := candidatesFromDB(db, terrainID)
	remaining := needBeBlocked

	for remaining.Len() > 0 {
		positions := remaining.Tiles()
		progressed := false

		for _, t := range positions {
			if !remaining.Contains(t) {
				continue // already consumed by an obstacle placed earlier this pass
			}
			var fitting []candidate
			for _, c := range candidates {
				if fitsAt(remaining, c.mask, t.Pos) {
					fitting = append(fitting, c)
				}
			}
			if len(fitting) == 0 {
				continue
			}
			chosen := fitting[0]
			if len(fitting) > 1 {
				chosen = fitting[src.GenSmall(len(fitting))]
			}
			placed = append(placed, Placement{ObstacleID: chosen.id, Anchor: t.Pos, Mask: chosen.mask})

			blockedTiles := make([]*tilegrid.Tile, 0, len(chosen.mask.Blocked))
			for _, p := range chosen.mask.AbsoluteBlocked(t.Pos) {
				blockedTiles = append(blockedTiles, &tilegrid.Tile{Pos: p})
			}
			remaining = remaining.Diff(region.New(blockedTiles))
			progressed = true
		}

		if !progressed {
			break
		}
	}

	return placed, remaining
}
