package gamedb

import "testing"

func sampleRecords() []Record {
	return []Record{
		{ID: "sword-of-might", LegacyID: 2, Kind: KindArtifact, Attrs: map[string]any{"value": 3000}},
		{ID: "armor-of-wonder", LegacyID: 0, Kind: KindArtifact, Attrs: map[string]any{"value": 6000}},
		{ID: "spellbook", LegacyID: -1, Kind: KindArtifact, Attrs: map[string]any{"value": 500}},
		{ID: "wood", LegacyID: 0, Kind: KindResource, Attrs: map[string]any{"value": 1}},
	}
}

func TestMemoryDB_Find(t *testing.T) {
	db := NewMemoryDB(sampleRecords())

	r, ok := db.Find(KindArtifact, "sword-of-might")
	if !ok || r.Int("value") != 3000 {
		t.Fatalf("Find(artifact, sword-of-might) = %+v, %v", r, ok)
	}

	if _, ok := db.Find(KindArtifact, "nonexistent"); ok {
		t.Fatalf("expected miss for unknown id")
	}
	if _, ok := db.Find(KindUnit, "sword-of-might"); ok {
		t.Fatalf("expected miss across kinds for shared id")
	}
}

func TestMemoryDB_Records_StableOrder(t *testing.T) {
	db := NewMemoryDB(sampleRecords())
	got := db.Records(KindArtifact)
	if len(got) != 3 {
		t.Fatalf("Records(artifact) len = %d, want 3", len(got))
	}
	want := []string{"sword-of-might", "armor-of-wonder", "spellbook"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("Records(artifact)[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestMemoryDB_LegacyOrderedRecords_HolesAreNil(t *testing.T) {
	db := NewMemoryDB(sampleRecords())
	got := db.LegacyOrderedRecords(KindArtifact)

	if len(got) != 3 {
		t.Fatalf("LegacyOrderedRecords len = %d, want 3 (max legacy id 2 + 1)", len(got))
	}
	if got[0] == nil || got[0].ID != "armor-of-wonder" {
		t.Fatalf("legacy slot 0 = %v, want armor-of-wonder", got[0])
	}
	if got[1] != nil {
		t.Fatalf("legacy slot 1 = %v, want nil hole", got[1])
	}
	if got[2] == nil || got[2].ID != "sword-of-might" {
		t.Fatalf("legacy slot 2 = %v, want sword-of-might", got[2])
	}
}

func TestLoadFixtureData(t *testing.T) {
	data := []byte(`
records:
  - id: gold-pile
    kind: resource
    legacyId: 5
    attrs:
      value: 1000
  - id: basilisk
    kind: unit
    attrs:
      value: 1
`)
	db, err := LoadFixtureData(data)
	if err != nil {
		t.Fatalf("LoadFixtureData: %v", err)
	}
	r, ok := db.Find(KindResource, "gold-pile")
	if !ok || r.Int("value") != 1000 {
		t.Fatalf("Find(resource, gold-pile) = %+v, %v", r, ok)
	}
	u, ok := db.Find(KindUnit, "basilisk")
	if !ok || u.LegacyID != -1 {
		t.Fatalf("expected basilisk to default to LegacyID -1, got %+v", u)
	}
}
