package zone

import (
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/score"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

// Settings is a zone's generation configuration, taken verbatim from the
// template: where it should grow from, how big it should be, which
// catalog entities it draws from, and the score targets its
// ObjectGenerator factory loop must satisfy.
type Settings struct {
	ID   string
	Name string

	CentroidTarget     tilegrid.Pos
	CentroidDispersion int

	RelativeSize           int
	RelativeSizeDispersion int

	TerrainID          string
	MainTownFactionID  string
	RewardsFactionID   string
	DwellFactionID     string
	PlayerID           string

	GuardMin   int
	GuardMax   int
	GuardBlock int

	SegmentAreaSize int
	MaxHeatBins     int

	ScoreTargets []score.Settings

	// GeneratorEnable restricts which GeneratorKinds this zone's factories
	// may produce at all, independent of any per-target Include/Exclude.
	GeneratorEnable map[score.GeneratorKind]bool
}

// Enabled reports whether kind is allowed in this zone; an empty
// GeneratorEnable map means every kind is allowed.
func (s Settings) Enabled(kind score.GeneratorKind) bool {
	if len(s.GeneratorEnable) == 0 {
		return true
	}
	return s.GeneratorEnable[kind]
}

// TileZone is one output zone: its configuration plus everything the
// pipeline accumulates onto it as stages run. Fields are populated
// incrementally — Area and the edge regions after §4.2's initial K-means,
// ProtectionBorder/NeedPlaceObstacles/InnerAreaUsable after border
// processing, Exits after connection processing, HeatMap after the
// Dijkstra pass.
type TileZone struct {
	Settings
	Index int

	Area *region.RegionWithEdge

	// ProtectionBorder is this zone's inner edge intersected with the
	// union of all inter-zone boundaries (§4.2 Borders).
	ProtectionBorder region.Region
	// NeedPlaceObstacles is ProtectionBorder grown inward up to radius 2.
	NeedPlaceObstacles region.Region
	// InnerAreaUsable is Area minus obstacles minus their one-tile halo,
	// minus the bottom edge (so objects stay visible in-game).
	InnerAreaUsable region.Region
	// RewardTilesDanger holds the NeedPlaceObstacles tiles the Obstacles
	// stage could not cover with any catalog obstacle. No later stage reads
	// it.
	RewardTilesDanger region.Region

	// RoadNodes classifies tiles on the zone's road-potential area by
	// priority (§4.2 Road net within a zone).
	RoadNodes map[tilegrid.Pos]NodeLevel

	// HeatMap maps every usable-area tile to its quantized Dijkstra
	// distance bucket from the nearest high-priority road node.
	HeatMap map[tilegrid.Pos]int

	// Exits maps a named connection endpoint to the tile chosen as this
	// zone's side of the border crossing.
	Exits map[string]tilegrid.Pos
}

// NewTileZone starts a bare TileZone from its template settings; every
// derived field is populated by later pipeline stages.
func NewTileZone(index int, settings Settings) *TileZone {
	return &TileZone{
		Settings:  settings,
		Index:     index,
		RoadNodes: make(map[tilegrid.Pos]NodeLevel),
		HeatMap:   make(map[tilegrid.Pos]int),
		Exits:     make(map[string]tilegrid.Pos),
	}
}

// AbsoluteArea converts RelativeSize into a tile count given the map's
// total tile area and the sum of every zone's RelativeSize.
func AbsoluteArea(relativeSize, mapArea, totalRelativeSize int) int {
	if totalRelativeSize <= 0 {
		return 0
	}
	return relativeSize * mapArea / totalRelativeSize
}

// Connection is a directed or undirected link between two zones declared
// by the template (spec.md §3/§6). A guarded connection adds a MapGuard of
// GuardValue to the map's guard list; the guard records no tile position.
// MirrorFromID, when set, makes the guard copy another connection's
// resolved stack instead of rolling its own.
type Connection struct {
	ID   string
	From string
	To   string

	Guarded        bool
	GuardValue     int
	MirrorFromID   string
	RequestedLevel RoadLevel
	// Radius is the tolerance around the chosen border tile within which
	// other connections may not also claim tiles.
	Radius int
}
