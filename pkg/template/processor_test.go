package template

import (
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
)

func smallTemplate() *Template {
	tmpl, err := LoadData([]byte(`
width: 24
height: 24
seed: 123
zones:
  - id: zone-a
    relative_size: 1
    centroid_x: 6
    centroid_y: 12
    segment_area_size: 30
  - id: zone-b
    relative_size: 1
    centroid_x: 18
    centroid_y: 12
    segment_area_size: 30
connections:
  - id: a-b
    from: zone-a
    to: zone-b
`))
	if err != nil {
		panic(err)
	}
	return tmpl
}

func TestProcessor_Run_StopsAtRequestedStage(t *testing.T) {
	p := NewProcessor(gamedb.NewMemoryDB(nil), nil)
	out, err := p.Run(smallTemplate(), StageHeatMap)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out == nil || len(out.Zones) != 2 {
		t.Fatalf("expected 2 zones in output, got %v", out)
	}
	for _, z := range out.Zones {
		if z.Area == nil || z.Area.Area.Len() == 0 {
			t.Fatalf("zone %s has no area after segmentation stages", z.ID)
		}
		if len(z.HeatMap) == 0 {
			t.Fatalf("zone %s has no heat map after StageHeatMap", z.ID)
		}
	}
	if len(out.AllObjects()) != 0 {
		t.Fatalf("expected no objects to be generated before StageObjects ran")
	}
}

func TestProcessor_Run_FullPipelineWithEmptyCatalogSkipsObjects(t *testing.T) {
	p := NewProcessor(gamedb.NewMemoryDB(nil), nil)
	out, err := p.Run(smallTemplate(), "")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(out.AllObjects()) != 0 {
		t.Fatalf("expected no objects with an empty catalog, got %d", len(out.AllObjects()))
	}
	if len(out.Guards) != 0 {
		t.Fatalf("expected no guards without any guarded connections")
	}
}
