package segment

import (
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/roads"
)

// Segment is one MapTileSegment: a sub-area of a zone's usable interior,
// produced by splitting on segmentAreaSize. Index is stable for the
// lifetime of the zone and is what tilegrid.Tile.SegmentIndex points back
// to.
type Segment struct {
	Index int
	Area  region.Region
}

// Layout is everything SegmentHelper derives for one zone beyond the
// TileZone fields already carried on zone.TileZone: its sub-segments, the
// road-potential area (tiles erased from segments at their shared
// borders), and the realized intra-zone Network once roads.LinkNodes has
// run. Kept as a sibling struct instead of embedding into zone.TileZone to
// avoid an import cycle (roads.Network references zone.RoadLevel, and
// zone must not import roads or segment).
type Layout struct {
	ZoneIndex     int
	Segments      []*Segment
	RoadPotential region.Region
	Network       *roads.Network
}

// NewLayout starts an empty Layout for the zone at zoneIndex.
func NewLayout(zoneIndex int) *Layout {
	return &Layout{ZoneIndex: zoneIndex}
}

// SegmentByIndex returns the segment with index idx, or nil if idx is out
// of range.
func (l *Layout) SegmentByIndex(idx int) *Segment {
	if idx < 0 || idx >= len(l.Segments) {
		return nil
	}
	return l.Segments[idx]
}
