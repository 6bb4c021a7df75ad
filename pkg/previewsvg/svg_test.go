package previewsvg

import (
	"bytes"
	"testing"

	"github.com/mapron/freeheroes-rmg/pkg/fhmap"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
)

func TestExport_ProducesWellFormedSVG(t *testing.T) {
	grid, err := tilegrid.New(10, 10, 1)
	if err != nil {
		t.Fatalf("tilegrid.New: %v", err)
	}
	m := fhmap.New(fhmap.SOD, grid)

	data, err := Export(m, DefaultOptions())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) || !bytes.Contains(data, []byte("</svg>")) {
		t.Fatalf("output does not look like an SVG document: %q", data[:min(len(data), 80)])
	}
}

func TestExport_RejectsNilGrid(t *testing.T) {
	if _, err := Export(&fhmap.FHMap{}, DefaultOptions()); err == nil {
		t.Fatalf("expected error for a map with no grid")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
