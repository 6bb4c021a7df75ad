package gamedb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fixtureRecord mirrors Record but with a YAML-friendly Attrs shape
// (map[string]interface{} decodes natively; yaml.v3 already produces the
// types Record.Int/Record.String expect).
type fixtureRecord struct {
	ID       string         `yaml:"id"`
	LegacyID *int           `yaml:"legacyId"`
	Kind     string         `yaml:"kind"`
	Attrs    map[string]any `yaml:"attrs"`
}

type fixtureFile struct {
	Records []fixtureRecord `yaml:"records"`
}

// LoadFixture reads a YAML fixture file and builds a MemoryDB from it.
// The only file I/O in pkg/gamedb; callers needing a fully file-I/O-free
// core should build records programmatically with NewMemoryDB instead.
func LoadFixture(path string) (*MemoryDB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gamedb: read fixture %s: %w", path, err)
	}
	return LoadFixtureData(data)
}

// LoadFixtureData builds a MemoryDB from already-read YAML fixture bytes.
func LoadFixtureData(data []byte) (*MemoryDB, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("gamedb: parse fixture: %w", err)
	}
	records := make([]Record, 0, len(f.Records))
	for _, fr := range f.Records {
		legacyID := -1
		if fr.LegacyID != nil {
			legacyID = *fr.LegacyID
		}
		records = append(records, Record{
			ID:       fr.ID,
			LegacyID: legacyID,
			Kind:     Kind(fr.Kind),
			Attrs:    fr.Attrs,
		})
	}
	return NewMemoryDB(records), nil
}
