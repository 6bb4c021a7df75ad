package template

import (
	"github.com/mapron/freeheroes-rmg/pkg/fhmap"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// Template is the declarative map description spec.md §6 names: map
// geometry and seed, one zone.Settings per zone, the zone.Connection
// graph, and UserSettings. Loaded by LoadFile from a YAML document via the
// yamlTemplate DTO in convert.go.
type Template struct {
	Width  int
	Height int
	Depth  int
	Seed   uint64

	GameVersion fhmap.GameVersion

	// FlipZones mirrors every zone's CentroidTarget horizontally before
	// segmentation runs (§4.6 ZoneCenterPlacement's "optional global flip").
	FlipZones bool

	Zones       []zone.Settings
	Connections []zone.Connection

	UserSettings UserSettings
}

// UserSettings carries the player-facing knobs spec.md §6 lists alongside
// the template proper: default road type, difficulty multipliers (§4
// "Supplemented features" — scaled into ScoreSettings before objectgen
// runs), map size, underground flag, and per-player faction/hero choices.
type UserSettings struct {
	DefaultRoadType zone.RoadLevel
	HasUnderground  bool
	MapSize         string

	// GuardMinPercent/GuardMaxPercent, ArmyMinPercent/ArmyMaxPercent, and
	// GoldMinPercent/GoldMaxPercent each bound a percentage applied to the
	// matching ScoreSettings axis (Guard, Army/ArmyDwelling,
	// Gold/Resource/ResourceGen) before generation; 100/100 is a no-op.
	GuardMinPercent int
	GuardMaxPercent int
	ArmyMinPercent  int
	ArmyMaxPercent  int
	GoldMinPercent  int
	GoldMaxPercent  int

	// PlayerFactions and StartingHeroes map a template player id to its
	// chosen faction id / starting hero id.
	PlayerFactions map[string]string
	StartingHeroes map[string]string
}
