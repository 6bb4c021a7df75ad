package previewsvg

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/mapron/freeheroes-rmg/pkg/fhmap"
	"github.com/mapron/freeheroes-rmg/pkg/mapobject"
	"github.com/mapron/freeheroes-rmg/pkg/tilegrid"
	"github.com/mapron/freeheroes-rmg/pkg/zone"
)

// Options configures a debug SVG render of a completed FHMap.
type Options struct {
	CellSize      int // Pixel size of one map tile
	ShowRoads     bool
	ShowObstacles bool
	ShowObjects   bool
	ShowLegend    bool
	Title         string
}

// DefaultOptions returns sensible defaults for an ad-hoc debug render.
func DefaultOptions() Options {
	return Options{
		CellSize:      8,
		ShowRoads:     true,
		ShowObstacles: true,
		ShowObjects:   true,
		ShowLegend:    true,
		Title:         "Map preview",
	}
}

// Export renders m to an SVG document: one colored rect per tile (colored
// by owning zone), road tiles tinted by RoadLevel, obstacle tiles
// filled in solid brown, and placed objects drawn as colored circles over their
// anchor tile.
func Export(m *fhmap.FHMap, opts Options) ([]byte, error) {
	if m == nil || m.Grid == nil {
		return nil, fmt.Errorf("previewsvg: map has no grid")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 8
	}

	header := 0
	if opts.Title != "" {
		header = 30
	}
	legendWidth := 0
	if opts.ShowLegend {
		legendWidth = 160
	}
	width := m.Grid.Width*opts.CellSize + legendWidth
	height := m.Grid.Height*opts.CellSize + header

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#101014")

	if opts.Title != "" {
		canvas.Text(width/2, 20, opts.Title, "text-anchor:middle;font-size:16px;fill:#eee;font-family:sans-serif")
	}

	drawTiles(canvas, m, opts, header)
	if opts.ShowObstacles {
		drawObstacles(canvas, m, opts, header)
	}
	if opts.ShowRoads {
		drawRoads(canvas, m, opts, header)
	}
	if opts.ShowObjects {
		drawObjects(canvas, m, opts, header)
	}
	if opts.ShowLegend {
		drawLegend(canvas, m, opts, width-legendWidth+10, header+20)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders m and writes it to path.
func SaveToFile(m *fhmap.FHMap, path string, opts Options) error {
	data, err := Export(m, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func drawTiles(canvas *svg.SVG, m *fhmap.FHMap, opts Options, yOffset int) {
	for _, t := range m.Grid.All() {
		if t.Pos.Z != 0 {
			continue
		}
		color := "#2d2d34"
		if t.ZoneIndex >= 0 && t.ZoneIndex < len(m.Zones) {
			color = zoneColor(t.ZoneIndex)
		}
		canvas.Rect(t.Pos.X*opts.CellSize, yOffset+t.Pos.Y*opts.CellSize, opts.CellSize, opts.CellSize,
			fmt.Sprintf("fill:%s;stroke:#000;stroke-width:0.3;opacity:0.55", color))
	}
}

func drawObstacles(canvas *svg.SVG, m *fhmap.FHMap, opts Options, yOffset int) {
	for _, o := range m.Obstacles {
		for _, p := range o.Mask.AbsoluteVisitable(o.Anchor) {
			drawHatch(canvas, p, opts, yOffset)
		}
		for _, p := range o.Mask.AbsoluteBlocked(o.Anchor) {
			drawHatch(canvas, p, opts, yOffset)
		}
		drawHatch(canvas, o.Anchor, opts, yOffset)
	}
}

func drawHatch(canvas *svg.SVG, p tilegrid.Pos, opts Options, yOffset int) {
	x, y := p.X*opts.CellSize, yOffset+p.Y*opts.CellSize
	canvas.Rect(x, y, opts.CellSize, opts.CellSize, "fill:#5a4632;opacity:0.8")
}

func drawRoads(canvas *svg.SVG, m *fhmap.FHMap, opts Options, yOffset int) {
	for _, net := range m.RoadNetworks {
		for pos, level := range net.Levels {
			if level == zone.NoRoad {
				continue
			}
			cx := pos.X*opts.CellSize + opts.CellSize/2
			cy := yOffset + pos.Y*opts.CellSize + opts.CellSize/2
			canvas.Circle(cx, cy, opts.CellSize/3, fmt.Sprintf("fill:%s;opacity:0.9", roadColor(level)))
		}
	}
}

func drawObjects(canvas *svg.SVG, m *fhmap.FHMap, opts Options, yOffset int) {
	for _, obj := range m.AllObjects() {
		anchor, ok := obj.PlacedAnchor()
		if !ok {
			continue
		}
		cx := anchor.X*opts.CellSize + opts.CellSize/2
		cy := yOffset + anchor.Y*opts.CellSize + opts.CellSize/2
		r := opts.CellSize/2 + 1
		canvas.Circle(cx, cy, r, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", classColor(obj.Class())))
		if pos := obj.GuardPos(); pos != nil {
			gx := pos.X*opts.CellSize + opts.CellSize/2
			gy := yOffset + pos.Y*opts.CellSize + opts.CellSize/2
			canvas.Circle(gx, gy, opts.CellSize/3, "fill:#e53e3e;stroke:#000;stroke-width:0.5")
		}
	}
}

func drawLegend(canvas *svg.SVG, m *fhmap.FHMap, opts Options, x, y int) {
	canvas.Text(x, y, "Zones", "font-size:12px;font-weight:bold;fill:#eee")
	y += 16
	for _, z := range m.Zones {
		canvas.Circle(x+5, y, 5, fmt.Sprintf("fill:%s", zoneColor(z.Index)))
		canvas.Text(x+16, y+4, z.ID, "font-size:10px;fill:#ccc")
		y += 14
	}
	y += 10
	canvas.Text(x, y, "Objects", "font-size:12px;font-weight:bold;fill:#eee")
	y += 16
	entries := []struct {
		name  string
		class mapobject.Class
	}{
		{"Visitable", mapobject.ClassVisitable},
		{"Pickable", mapobject.ClassPickable},
		{"Joinable", mapobject.ClassJoinable},
		{"Removable", mapobject.ClassRemovable},
	}
	for _, e := range entries {
		canvas.Circle(x+5, y, 5, fmt.Sprintf("fill:%s", classColor(e.class)))
		canvas.Text(x+16, y+4, e.name, "font-size:10px;fill:#ccc")
		y += 14
	}
	y += 10
	canvas.Text(x, y, "Guard", "font-size:12px;font-weight:bold;fill:#eee")
	y += 16
	canvas.Circle(x+5, y, 5, "fill:#e53e3e")
	canvas.Text(x+16, y+4, "Guard stack", "font-size:10px;fill:#ccc")
}

var zonePalette = []string{
	"#4299e1", "#48bb78", "#ed8936", "#9f7aea", "#f56565",
	"#38b2ac", "#ecc94b", "#ed64a6", "#667eea", "#68d391",
}

func zoneColor(index int) string {
	return zonePalette[index%len(zonePalette)]
}

func classColor(c mapobject.Class) string {
	switch c {
	case mapobject.ClassVisitable:
		return "#4299e1"
	case mapobject.ClassPickable:
		return "#ecc94b"
	case mapobject.ClassJoinable:
		return "#48bb78"
	case mapobject.ClassRemovable:
		return "#718096"
	default:
		return "#cbd5e0"
	}
}

func roadColor(level zone.RoadLevel) string {
	switch level {
	case zone.Trail:
		return "#a0522d"
	case zone.Pothole:
		return "#8b6914"
	case zone.Dirt:
		return "#c2a060"
	case zone.Gravel:
		return "#b0b0b0"
	case zone.Cobblestone:
		return "#e2e2e2"
	default:
		return "#6b6b6b"
	}
}
