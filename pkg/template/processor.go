package template

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mapron/freeheroes-rmg/pkg/distribute"
	"github.com/mapron/freeheroes-rmg/pkg/fhmap"
	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/objectgen"
	"github.com/mapron/freeheroes-rmg/pkg/obstacles"
	"github.com/mapron/freeheroes-rmg/pkg/region"
	"github.com/mapron/freeheroes-rmg/pkg/rng"
	"github.com/mapron/freeheroes-rmg/pkg/roads"
	"github.com/mapron/freeheroes-rmg/pkg/score"
	"github.com/mapron/freeheroes-rmg/pkg/segment"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// Stage names from spec.md §4.6's table, used both for slog's "stage"
// field and for StopAfterStage matching.
const (
	StageZoneCenterPlacement = "ZoneCenterPlacement"
	StageZoneTilesInitial    = "ZoneTilesInitial"
	StageZoneTilesExpand     = "ZoneTilesExpand"
	StageZoneTilesRefinement = "ZoneTilesRefinement"
	StageTownsPlacement      = "TownsPlacement"
	StageBorders             = "Borders"
	StageSegmentation        = "Segmentation"
	StageRoadsPlacement      = "RoadsPlacement"
	StageHeatMap             = "HeatMap"
	StageObstacles           = "Obstacles"
	StageObjects             = "Objects"
	StageGuards              = "Guards"
)

// Processor is the TemplateProcessor orchestrator: it owns nothing but a
// game database and a logger, and runs the fixed stage sequence fresh for
// every Run call.
type Processor struct {
	db     gamedb.Database
	logger *slog.Logger
}

// NewProcessor builds a Processor reading from db. A nil logger falls back
// to slog.Default().
func NewProcessor(db gamedb.Database, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{db: db, logger: logger}
}

// Run executes every stage in order, short-circuiting after stopAfterStage
// completes (empty string runs to completion). Each stage's wall time is
// logged via a "stage complete" record with µs precision.
func (p *Processor) Run(tmpl *Template, stopAfterStage string) (*fhmap.FHMap, error) {
	grid, err := tilegrid.New(tmpl.Width, tmpl.Height, depthOf(tmpl))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateInvalid, err)
	}

	zones := make([]*zone.TileZone, len(tmpl.Zones))
	byID := make(map[string]*zone.TileZone, len(tmpl.Zones))
	for i, s := range tmpl.Zones {
		z := zone.NewTileZone(i, s)
		zones[i] = z
		byID[s.ID] = z
	}

	out := fhmap.New(tmpl.GameVersion, grid)
	out.Zones = zones

	layouts := make([]*segment.Layout, len(zones))
	exitLevel := make([]map[tilegrid.Pos]zone.RoadLevel, len(zones))
	var guards []*mapobject.MapGuard

	configHash := []byte(fmt.Sprintf("%dx%dx%d", tmpl.Width, tmpl.Height, tmpl.Depth))
	stageSrc := func(name string) rng.Source { return rng.DeriveStage(tmpl.Seed, name, configHash) }

	done, err := p.stage(stopAfterStage, StageZoneCenterPlacement, func() error {
		if tmpl.FlipZones {
			for _, z := range zones {
				z.Settings.CentroidTarget.X = tmpl.Width - 1 - z.Settings.CentroidTarget.X
			}
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	all := region.New(grid.All())

	done, err = p.stage(stopAfterStage, StageZoneTilesInitial, func() error {
		_, err := segment.InitialAssignment(all, zones)
		if err != nil {
			return generationErr(ErrInfeasibleLayout, "", StageZoneTilesInitial, err)
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	var placed []region.Region
	done, err = p.stage(stopAfterStage, StageZoneTilesExpand, func() error {
		var rerr error
		placed, rerr = segment.RefineAreas(all, zones, 10)
		if rerr != nil {
			return generationErr(ErrInfeasibleLayout, "", StageZoneTilesExpand, rerr)
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	done, err = p.stage(stopAfterStage, StageZoneTilesRefinement, func() error {
		if perr := segment.PostProcess(zones, placed); perr != nil {
			return generationErr(ErrInfeasibleLayout, "", StageZoneTilesRefinement, perr)
		}
		for _, z := range zones {
			smoothZoneEdges(z, 10)
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	done, err = p.stage(stopAfterStage, StageTownsPlacement, func() error {
		for _, z := range zones {
			z.RoadNodes[z.CentroidTarget] = zone.NodeTown
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	// Borders runs before Segmentation/RoadsPlacement, ahead of the
	// literal table order: ComputeBorders derives InnerAreaUsable that
	// Segmentation needs, and ProcessConnections registers the Exit nodes
	// RoadsPlacement must link. See DESIGN.md.
	done, err = p.stage(stopAfterStage, StageBorders, func() error {
		if berr := segment.ComputeBorders(zones); berr != nil {
			return generationErr(ErrInfeasibleLayout, "", StageBorders, berr)
		}
		connGuards, cerr := segment.ProcessConnections(grid, zones, byID, tmpl.Connections)
		if cerr != nil {
			return generationErr(ErrInfeasibleConnection, "", StageBorders, cerr)
		}
		guards = append(guards, connGuards...)
		for _, z := range zones {
			exitLevel[z.Index] = make(map[tilegrid.Pos]zone.RoadLevel)
		}
		for _, c := range tmpl.Connections {
			if from, ok := byID[c.From]; ok {
				if pos, ok := from.Exits[c.ID]; ok {
					exitLevel[from.Index][pos] = c.RequestedLevel
				}
			}
			if to, ok := byID[c.To]; ok {
				if pos, ok := to.Exits[c.ID]; ok {
					exitLevel[to.Index][pos] = c.RequestedLevel
				}
			}
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	done, err = p.stage(stopAfterStage, StageSegmentation, func() error {
		for _, z := range zones {
			layout, serr := segment.BuildSegments(z, z.SegmentAreaSize)
			if serr != nil {
				return generationErr(ErrInfeasibleLayout, z.ID, StageSegmentation, serr)
			}
			if rerr := segment.BuildRoadNet(z, layout); rerr != nil {
				return generationErr(ErrInfeasibleLayout, z.ID, StageSegmentation, rerr)
			}
			if rerr := segment.RepairConnectivity(grid, z, layout); rerr != nil {
				return generationErr(ErrInfeasibleLayout, z.ID, StageSegmentation, rerr)
			}
			layouts[z.Index] = layout
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	done, err = p.stage(stopAfterStage, StageRoadsPlacement, func() error {
		for _, z := range zones {
			layout := layouts[z.Index]
			nodes := roadNodesOf(grid, z, exitLevel[z.Index], tmpl.UserSettings.DefaultRoadType)
			if len(nodes) < 2 {
				continue
			}
			roadArea := z.InnerAreaUsable.Union(layout.RoadPotential)
			net, rerr := roads.LinkNodes(grid, nodes, roadArea, true)
			if rerr != nil {
				return generationErr(ErrInfeasibleConnection, z.ID, StageRoadsPlacement, rerr)
			}
			layout.Network = net
			out.AddRoadNetwork(z.ID, net)
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	done, err = p.stage(stopAfterStage, StageHeatMap, func() error {
		for _, z := range zones {
			if herr := segment.ComputeHeatMap(z, layouts[z.Index]); herr != nil {
				return generationErr(ErrInfeasibleLayout, z.ID, StageHeatMap, herr)
			}
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	done, err = p.stage(stopAfterStage, StageObstacles, func() error {
		for _, z := range zones {
			src := stageSrc("obstacles-" + z.ID)
			placements, leftover := obstacles.Fill(p.db, z.TerrainID, z.NeedPlaceObstacles, src)
			out.AddObstacles(placements)
			z.RewardTilesDanger = leftover
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	done, err = p.stage(stopAfterStage, StageObjects, func() error {
		for _, z := range zones {
			objSrc := stageSrc("objects-" + z.ID)
			factories := newZoneFactories(p.db)
			gen := objectgen.NewGenerator(factories...)

			var zoneObjects []mapobject.ZoneObject
			var preferredHeat []int
			for _, target := range z.ScoreTargets {
				scaled := applyDifficulty(target, tmpl.UserSettings, objSrc)
				produced := gen.Run(scaled, objSrc)
				if budgetErr := checkBudget(scaled, produced); budgetErr != nil {
					return generationErr(ErrObjectBudgetUnmet, z.ID, StageObjects, budgetErr)
				}
				heat := 0
				if len(scaled.PreferredHeat) > 0 {
					heat = scaled.PreferredHeat[0]
				}
				for range produced {
					preferredHeat = append(preferredHeat, heat)
				}
				zoneObjects = append(zoneObjects, produced...)
			}

			dist := distribute.New(grid, z, layouts[z.Index])
			placed := dist.Place(zoneObjects, preferredHeat, objSrc)
			if len(placed) != len(zoneObjects) {
				return generationErr(ErrPlacementFailure, z.ID, StageObjects,
					fmt.Errorf("placed %d of %d generated objects", len(placed), len(zoneObjects)))
			}
			for _, obj := range placed {
				out.AddObject(obj)
				if obj.GetGuard() > 0 {
					if pos := obj.GuardPos(); pos != nil {
						g := mapobject.NewMapGuard(obj.GetGuard())
						guards = append(guards, g)
					}
				}
			}
		}
		return nil
	})
	if done || err != nil {
		return out, err
	}

	_, err = p.stage(stopAfterStage, StageGuards, func() error {
		if gerr := resolveGuards(p.db, guards); gerr != nil {
			return generationErr(ErrTemplateInvalid, "", StageGuards, gerr)
		}
		for _, g := range guards {
			out.AddGuard(g)
		}
		return nil
	})
	return out, err
}

// stage runs fn, logs its elapsed time, and reports whether execution
// should stop here (either fn errored, or name matches stopAfterStage).
func (p *Processor) stage(stopAfterStage, name string, fn func() error) (bool, error) {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	if err != nil {
		p.logger.Error("stage failed", "stage", name, "elapsed", elapsed, "error", err)
		return true, err
	}
	p.logger.Info("stage complete", "stage", name, "elapsed", elapsed)
	return name == stopAfterStage, nil
}

func depthOf(tmpl *Template) int {
	if tmpl.Depth > 0 {
		return tmpl.Depth
	}
	if tmpl.UserSettings.HasUnderground {
		return 2
	}
	return 1
}

// smoothZoneEdges runs the spike/hollow refine pair on z's area up to
// maxPasses times or until a pass makes no change, approximating spec.md
// §4.6's "fix exclaves iteratively" with the edge-refine primitives pkg/
// region already exposes.
func smoothZoneEdges(z *zone.TileZone, maxPasses int) {
	for i := 0; i < maxPasses; i++ {
		before := z.Area.Area.Len()
		z.Area.RefineRemoveSpikes()
		z.Area.RefineRemoveHollows()
		if z.Area.Area.Len() == before {
			return
		}
	}
}

// roadNodesOf converts z's classified RoadNodes into roads.Node values,
// defaulting every node's requested level to defaultLevel, raised to a
// connection's requested level where exitLevel names a stronger one.
func roadNodesOf(grid *tilegrid.TileGrid, z *zone.TileZone, exitLevel map[tilegrid.Pos]zone.RoadLevel, defaultLevel zone.RoadLevel) []roads.Node {
	var out []roads.Node
	for pos, priority := range z.RoadNodes {
		t := grid.At(pos)
		if t == nil {
			continue
		}
		level := defaultLevel
		if lv, ok := exitLevel[pos]; ok && lv > level {
			level = lv
		}
		out = append(out, roads.Node{Tile: t, Priority: priority, Level: level})
	}
	return out
}

// checkBudget reports an error if produced's total score differs from
// target.Target on any attribute by more than target.Tolerance, whether
// short of the target or over it.
func checkBudget(target score.Settings, produced []mapobject.ZoneObject) error {
	var sum score.Score
	for _, obj := range produced {
		sum = sum.Plus(obj.GetScore())
	}
	remaining := target.Target.Minus(sum)
	for _, a := range score.Attrs() {
		v := remaining.Get(a)
		if v < 0 {
			v = -v
		}
		if v > target.Tolerance {
			return fmt.Errorf("attribute %s left %d unconsumed (tolerance %d)", a, v, target.Tolerance)
		}
	}
	return nil
}
