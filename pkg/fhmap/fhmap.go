package fhmap

import (
	"sort"

	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/obstacles"
	"github.com/mapron/freeheroes-rmg/pkg/roads"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// FHMap is the completed run's in-memory output: everything a serializer
// needs and nothing a serializer itself does (no file I/O happens here).
type FHMap struct {
	Version GameVersion
	Grid    *tilegrid.TileGrid
	Zones   []*zone.TileZone

	objectsByKind map[string][]mapobject.ZoneObject
	Guards        []*mapobject.MapGuard

	// Obstacles is the ObstacleHelper's mask-fitting sweep output, kept
	// separate from objectsByKind since obstacles carry no score/guard and
	// never participate in objectgen's grouping or budget accounting.
	Obstacles []obstacles.Placement

	// RoadNetworks holds each zone's realized intra-zone road tile levels,
	// keyed by zone.Settings.ID, as produced by RoadHelper's LinkNodes.
	RoadNetworks map[string]*roads.Network

	// ObjectDefOverrides maps a gamedb entity id to a concrete object-def
	// template id, for callers that need to pin a specific sprite/def
	// variant rather than take the catalog default.
	ObjectDefOverrides map[string]string

	// Config carries template-level global settings through to the output
	// (e.g. map name, difficulty label) as freeform key/value pairs.
	Config map[string]string
}

// New constructs an empty FHMap over grid.
func New(version GameVersion, grid *tilegrid.TileGrid) *FHMap {
	return &FHMap{
		Version:            version,
		Grid:               grid,
		objectsByKind:      make(map[string][]mapobject.ZoneObject),
		RoadNetworks:       make(map[string]*roads.Network),
		ObjectDefOverrides: make(map[string]string),
		Config:             make(map[string]string),
	}
}

// AddRoadNetwork registers a zone's realized road network.
func (m *FHMap) AddRoadNetwork(zoneID string, net *roads.Network) {
	m.RoadNetworks[zoneID] = net
}

// AddObject files obj under its Kind() for later retrieval by
// ObjectsByKind. Multiple objects of the same kind accumulate in
// insertion order.
func (m *FHMap) AddObject(obj mapobject.ZoneObject) {
	m.objectsByKind[obj.Kind()] = append(m.objectsByKind[obj.Kind()], obj)
}

// ObjectsByKind returns every object filed under kind, in insertion order.
func (m *FHMap) ObjectsByKind(kind string) []mapobject.ZoneObject {
	return m.objectsByKind[kind]
}

// Kinds returns every kind with at least one object, sorted for stable
// iteration.
func (m *FHMap) Kinds() []string {
	out := make([]string, 0, len(m.objectsByKind))
	for k := range m.objectsByKind {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// AllObjects flattens every kind's objects into one slice, kinds visited
// in sorted order.
func (m *FHMap) AllObjects() []mapobject.ZoneObject {
	var out []mapobject.ZoneObject
	for _, k := range m.Kinds() {
		out = append(out, m.objectsByKind[k]...)
	}
	return out
}

// AddGuard registers a resolved guard, e.g. a connection's MapGuard once
// its CreatureID or mirror target has been decided.
func (m *FHMap) AddGuard(g *mapobject.MapGuard) {
	m.Guards = append(m.Guards, g)
}

// AddObstacles appends a zone's ObstacleHelper sweep output.
func (m *FHMap) AddObstacles(placements []obstacles.Placement) {
	m.Obstacles = append(m.Obstacles, placements...)
}

// ZoneByID returns the zone with the given Settings.ID, or nil if absent.
func (m *FHMap) ZoneByID(id string) *zone.TileZone {
	for _, z := range m.Zones {
		if z.ID == id {
			return z
		}
	}
	return nil
}
