package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mapron/freeheroes-rmg/pkg/fhmap"
	"github.com/mapron/freeheroes-rmg/pkg/score"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// yamlTemplate and its nested DTOs mirror Template/zone.Settings/
// score.Settings in a YAML-friendly shape (string enum names instead of
// the domain's typed constants), the same split pkg/gamedb uses between
// fixtureRecord and Record: hand-written conversion instead of tagging the
// domain types themselves with yaml struct tags.
type yamlTemplate struct {
	Width       int              `yaml:"width"`
	Height      int              `yaml:"height"`
	Depth       int              `yaml:"depth"`
	Seed        uint64           `yaml:"seed"`
	GameVersion string           `yaml:"game_version"`
	FlipZones   bool             `yaml:"flip_zones"`
	Zones       []yamlZone       `yaml:"zones"`
	Connections []yamlConnection `yaml:"connections"`
	UserSettings yamlUserSettings `yaml:"user_settings"`
}

type yamlZone struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`

	CentroidX          int `yaml:"centroid_x"`
	CentroidY          int `yaml:"centroid_y"`
	CentroidDispersion int `yaml:"centroid_dispersion"`

	RelativeSize           int `yaml:"relative_size"`
	RelativeSizeDispersion int `yaml:"relative_size_dispersion"`

	TerrainID         string `yaml:"terrain_id"`
	MainTownFactionID string `yaml:"main_town_faction_id"`
	RewardsFactionID  string `yaml:"rewards_faction_id"`
	DwellFactionID    string `yaml:"dwell_faction_id"`
	PlayerID          string `yaml:"player_id"`

	GuardMin   int `yaml:"guard_min"`
	GuardMax   int `yaml:"guard_max"`
	GuardBlock int `yaml:"guard_block"`

	SegmentAreaSize int `yaml:"segment_area_size"`
	MaxHeatBins     int `yaml:"max_heat_bins"`

	GeneratorEnable []string            `yaml:"generator_enable"`
	ScoreTargets    []yamlScoreSettings `yaml:"score_targets"`
}

type yamlScoreSettings struct {
	Target       map[string]int `yaml:"target"`
	MinPerObject map[string]int `yaml:"min_per_object"`
	MaxPerObject map[string]int `yaml:"max_per_object"`

	GuardMin        int `yaml:"guard_min"`
	GuardMax        int `yaml:"guard_max"`
	GuardMinToGroup int `yaml:"guard_min_to_group"`
	GuardGroupLimit int `yaml:"guard_group_limit"`

	Include       []string `yaml:"include"`
	Exclude       []string `yaml:"exclude"`
	PreferredHeat []int    `yaml:"preferred_heat"`
	Tolerance     int      `yaml:"tolerance"`
}

type yamlConnection struct {
	ID   string `yaml:"id"`
	From string `yaml:"from"`
	To   string `yaml:"to"`

	Guarded         bool   `yaml:"guarded"`
	GuardValue      int    `yaml:"guard_value"`
	MirrorFromID    string `yaml:"mirror_from_id"`
	RequestedLevel  string `yaml:"requested_level"`
	Radius          int    `yaml:"radius"`
}

type yamlUserSettings struct {
	DefaultRoadType string `yaml:"default_road_type"`
	HasUnderground  bool   `yaml:"has_underground"`
	MapSize         string `yaml:"map_size"`

	GuardMinPercent int `yaml:"guard_min_percent"`
	GuardMaxPercent int `yaml:"guard_max_percent"`
	ArmyMinPercent  int `yaml:"army_min_percent"`
	ArmyMaxPercent  int `yaml:"army_max_percent"`
	GoldMinPercent  int `yaml:"gold_min_percent"`
	GoldMaxPercent  int `yaml:"gold_max_percent"`

	PlayerFactions map[string]string `yaml:"player_factions"`
	StartingHeroes map[string]string `yaml:"starting_heroes"`
}

// attrByName indexes score.Attrs() by their String() form for YAML lookup.
var attrByName = func() map[string]score.Attr {
	out := make(map[string]score.Attr)
	for _, a := range score.Attrs() {
		out[a.String()] = a
	}
	return out
}()

func parseAttr(name string) (score.Attr, error) {
	a, ok := attrByName[name]
	if !ok {
		return 0, fmt.Errorf("template: unknown score attribute %q", name)
	}
	return a, nil
}

func parseScoreMap(m map[string]int) (score.Score, error) {
	var out score.Score
	for name, v := range m {
		a, err := parseAttr(name)
		if err != nil {
			return score.Score{}, err
		}
		out = out.Set(a, v)
	}
	return out, nil
}

var roadLevelByName = map[string]zone.RoadLevel{
	zone.NoRoad.String():      zone.NoRoad,
	zone.Trail.String():       zone.Trail,
	zone.Pothole.String():     zone.Pothole,
	zone.Dirt.String():        zone.Dirt,
	zone.Gravel.String():      zone.Gravel,
	zone.Cobblestone.String(): zone.Cobblestone,
}

func parseRoadLevel(name string) (zone.RoadLevel, error) {
	if name == "" {
		return zone.NoRoad, nil
	}
	l, ok := roadLevelByName[name]
	if !ok {
		return 0, fmt.Errorf("template: unknown road level %q", name)
	}
	return l, nil
}

var gameVersionByName = map[string]fhmap.GameVersion{
	fhmap.SOD.String():  fhmap.SOD,
	fhmap.HOTA.String(): fhmap.HOTA,
}

func parseGameVersion(name string) (fhmap.GameVersion, error) {
	if name == "" {
		return fhmap.SOD, nil
	}
	v, ok := gameVersionByName[name]
	if !ok {
		return 0, fmt.Errorf("template: unknown game version %q", name)
	}
	return v, nil
}

func convertScoreSettings(y yamlScoreSettings) (score.Settings, error) {
	target, err := parseScoreMap(y.Target)
	if err != nil {
		return score.Settings{}, err
	}
	minPer, err := parseScoreMap(y.MinPerObject)
	if err != nil {
		return score.Settings{}, err
	}
	maxPer, err := parseScoreMap(y.MaxPerObject)
	if err != nil {
		return score.Settings{}, err
	}
	include := make([]score.GeneratorKind, len(y.Include))
	for i, s := range y.Include {
		include[i] = score.GeneratorKind(s)
	}
	exclude := make([]score.GeneratorKind, len(y.Exclude))
	for i, s := range y.Exclude {
		exclude[i] = score.GeneratorKind(s)
	}
	return score.Settings{
		Target:       target,
		MinPerObject: minPer,
		MaxPerObject: maxPer,
		Guard: score.GuardSettings{
			Min:             y.GuardMin,
			Max:             y.GuardMax,
			GuardMinToGroup: y.GuardMinToGroup,
			GuardGroupLimit: y.GuardGroupLimit,
		},
		Include:       include,
		Exclude:       exclude,
		PreferredHeat: y.PreferredHeat,
		Tolerance:     y.Tolerance,
	}, nil
}

func convertZone(y yamlZone) (zone.Settings, error) {
	scoreTargets := make([]score.Settings, len(y.ScoreTargets))
	for i, ys := range y.ScoreTargets {
		s, err := convertScoreSettings(ys)
		if err != nil {
			return zone.Settings{}, fmt.Errorf("template: zone %s score target %d: %w", y.ID, i, err)
		}
		scoreTargets[i] = s
	}
	enable := make(map[score.GeneratorKind]bool, len(y.GeneratorEnable))
	for _, s := range y.GeneratorEnable {
		enable[score.GeneratorKind(s)] = true
	}
	return zone.Settings{
		ID:                     y.ID,
		Name:                   y.Name,
		CentroidTarget:         tilegrid.Pos{X: y.CentroidX, Y: y.CentroidY},
		CentroidDispersion:     y.CentroidDispersion,
		RelativeSize:           y.RelativeSize,
		RelativeSizeDispersion: y.RelativeSizeDispersion,
		TerrainID:              y.TerrainID,
		MainTownFactionID:      y.MainTownFactionID,
		RewardsFactionID:       y.RewardsFactionID,
		DwellFactionID:         y.DwellFactionID,
		PlayerID:               y.PlayerID,
		GuardMin:               y.GuardMin,
		GuardMax:               y.GuardMax,
		GuardBlock:             y.GuardBlock,
		SegmentAreaSize:        y.SegmentAreaSize,
		MaxHeatBins:            y.MaxHeatBins,
		ScoreTargets:           scoreTargets,
		GeneratorEnable:        enable,
	}, nil
}

func convertConnection(y yamlConnection) (zone.Connection, error) {
	level, err := parseRoadLevel(y.RequestedLevel)
	if err != nil {
		return zone.Connection{}, fmt.Errorf("template: connection %s: %w", y.ID, err)
	}
	return zone.Connection{
		ID:             y.ID,
		From:           y.From,
		To:             y.To,
		Guarded:        y.Guarded,
		GuardValue:     y.GuardValue,
		MirrorFromID:   y.MirrorFromID,
		RequestedLevel: level,
		Radius:         y.Radius,
	}, nil
}

func clampPercent(minV, maxV int) (int, int) {
	if minV <= 0 && maxV <= 0 {
		return 100, 100
	}
	if maxV < minV {
		maxV = minV
	}
	return minV, maxV
}

func convertUserSettings(y yamlUserSettings) (UserSettings, error) {
	road, err := parseRoadLevel(y.DefaultRoadType)
	if err != nil {
		return UserSettings{}, err
	}
	guardMin, guardMax := clampPercent(y.GuardMinPercent, y.GuardMaxPercent)
	armyMin, armyMax := clampPercent(y.ArmyMinPercent, y.ArmyMaxPercent)
	goldMin, goldMax := clampPercent(y.GoldMinPercent, y.GoldMaxPercent)
	return UserSettings{
		DefaultRoadType: road,
		HasUnderground:  y.HasUnderground,
		MapSize:         y.MapSize,
		GuardMinPercent: guardMin,
		GuardMaxPercent: guardMax,
		ArmyMinPercent:  armyMin,
		ArmyMaxPercent:  armyMax,
		GoldMinPercent:  goldMin,
		GoldMaxPercent:  goldMax,
		PlayerFactions:  y.PlayerFactions,
		StartingHeroes:  y.StartingHeroes,
	}, nil
}

func convertTemplate(y yamlTemplate) (*Template, error) {
	if y.Width <= 0 || y.Height <= 0 {
		return nil, fmt.Errorf("%w: width/height must be positive", ErrTemplateInvalid)
	}
	if len(y.Zones) == 0 {
		return nil, fmt.Errorf("%w: template declares no zones", ErrTemplateInvalid)
	}

	version, err := parseGameVersion(y.GameVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}

	seen := make(map[string]bool, len(y.Zones))
	zones := make([]zone.Settings, len(y.Zones))
	totalRelative := 0
	for i, yz := range y.Zones {
		if yz.ID == "" || seen[yz.ID] {
			return nil, fmt.Errorf("%w: duplicate or empty zone id %q", ErrTemplateInvalid, yz.ID)
		}
		seen[yz.ID] = true
		if yz.RelativeSize < 0 {
			return nil, fmt.Errorf("%w: zone %s has a negative relative size", ErrTemplateInvalid, yz.ID)
		}
		totalRelative += yz.RelativeSize
		z, err := convertZone(yz)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
		}
		zones[i] = z
	}
	if totalRelative <= 0 {
		return nil, fmt.Errorf("%w: zones' relative sizes sum to zero", ErrTemplateInvalid)
	}

	conns := make([]zone.Connection, len(y.Connections))
	for i, yc := range y.Connections {
		c, err := convertConnection(yc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
		}
		if !seen[c.From] || !seen[c.To] {
			return nil, fmt.Errorf("%w: connection %s references unknown zone", ErrTemplateInvalid, c.ID)
		}
		conns[i] = c
	}

	userSettings, err := convertUserSettings(y.UserSettings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}

	return &Template{
		Width:        y.Width,
		Height:       y.Height,
		Depth:        y.Depth,
		Seed:         y.Seed,
		GameVersion:  version,
		FlipZones:    y.FlipZones,
		Zones:        zones,
		Connections:  conns,
		UserSettings: userSettings,
	}, nil
}

// LoadFile reads a YAML template document from path.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: read %s: %w", path, err)
	}
	return LoadData(data)
}

// LoadData parses an already-read YAML template document.
func LoadData(data []byte) (*Template, error) {
	var y yamlTemplate
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("%w: parse template: %v", ErrTemplateInvalid, err)
	}
	return convertTemplate(y)
}
