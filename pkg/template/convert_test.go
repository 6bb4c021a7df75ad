package template

import "testing"

func minimalYAML() []byte {
	return []byte(`
width: 20
height: 20
seed: 7
zones:
  - id: zone-a
    relative_size: 1
    centroid_x: 5
    centroid_y: 5
    segment_area_size: 40
    score_targets:
      - target: {Gold: 1000}
        tolerance: 50
  - id: zone-b
    relative_size: 1
    centroid_x: 14
    centroid_y: 14
    segment_area_size: 40
connections:
  - id: a-b
    from: zone-a
    to: zone-b
`)
}

func TestLoadData_ParsesMinimalTemplate(t *testing.T) {
	tmpl, err := LoadData(minimalYAML())
	if err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	if len(tmpl.Zones) != 2 {
		t.Fatalf("got %d zones, want 2", len(tmpl.Zones))
	}
	if tmpl.Zones[0].ScoreTargets[0].Target.Get(attrByName["Gold"]) != 1000 {
		t.Fatalf("gold target not parsed")
	}
	if len(tmpl.Connections) != 1 || tmpl.Connections[0].From != "zone-a" {
		t.Fatalf("connection not parsed: %+v", tmpl.Connections)
	}
}

func TestLoadData_RejectsDuplicateZoneID(t *testing.T) {
	data := []byte(`
width: 10
height: 10
zones:
  - id: z
    relative_size: 1
  - id: z
    relative_size: 1
`)
	if _, err := LoadData(data); err == nil {
		t.Fatalf("expected error for duplicate zone id")
	}
}

func TestLoadData_RejectsZeroRelativeSizeSum(t *testing.T) {
	data := []byte(`
width: 10
height: 10
zones:
  - id: z
    relative_size: 0
`)
	if _, err := LoadData(data); err == nil {
		t.Fatalf("expected error for zero total relative size")
	}
}

func TestLoadData_RejectsUnknownConnectionEndpoint(t *testing.T) {
	data := []byte(`
width: 10
height: 10
zones:
  - id: z
    relative_size: 1
connections:
  - id: c
    from: z
    to: nope
`)
	if _, err := LoadData(data); err == nil {
		t.Fatalf("expected error for unknown connection endpoint")
	}
}

func TestLoadData_RejectsUnknownScoreAttribute(t *testing.T) {
	data := []byte(`
width: 10
height: 10
zones:
  - id: z
    relative_size: 1
    score_targets:
      - target: {NotAnAttr: 5}
`)
	if _, err := LoadData(data); err == nil {
		t.Fatalf("expected error for unknown score attribute")
	}
}

func TestClampPercent_DefaultsToNoOp(t *testing.T) {
	min, max := clampPercent(0, 0)
	if min != 100 || max != 100 {
		t.Fatalf("clampPercent(0,0) = (%d,%d), want (100,100)", min, max)
	}
	min, max = clampPercent(150, 50)
	if min != 150 || max != 150 {
		t.Fatalf("clampPercent(150,50) = (%d,%d), want max raised to min", min, max)
	}
}
