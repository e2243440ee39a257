package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/odtools/oddraw/pkg/colors"
	"github.com/odtools/oddraw/pkg/shapes"
)

func testShapes() []shapes.Shape {
	red := colors.Red
	blue := colors.Blue
	return []shapes.Shape{
		&shapes.Rect{X: 10, Y: 10, Width: 100, Height: 50, Fill: &red, StrokeWidth: 2},
		&shapes.Circle{X: 200, Y: 200, Radius: 30, Stroke: &blue, StrokeWidth: 1},
		&shapes.Line{X0: 0, Y0: 0, X1: 50, Y1: 50, Thickness: 1},
	}
}

func TestSVGBytes(t *testing.T) {
	out := string(SVG{}.Bytes(testShapes(), Options{Width: 800, Height: 600}))

	if !strings.HasPrefix(out, `<svg width="800" height="600" xmlns="http://www.w3.org/2000/svg">`) {
		t.Errorf("missing svg header:\n%s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Errorf("missing svg footer:\n%s", out)
	}
	if !strings.Contains(out, `<rect x="10" y="10" width="100" height="50" fill="#FF0000" stroke="#000000" stroke-width="2"/>`) {
		t.Errorf("rect element wrong:\n%s", out)
	}
	if !strings.Contains(out, `<circle cx="230" cy="230" r="30" fill="none" stroke="#0000FF" stroke-width="1"/>`) {
		t.Errorf("circle element wrong:\n%s", out)
	}
	if !strings.Contains(out, `<line x1="0" y1="0" x2="50" y2="50" stroke="#000000" stroke-width="1"/>`) {
		t.Errorf("line element wrong:\n%s", out)
	}
}

func TestSVGPolygonAndRotation(t *testing.T) {
	tri := shapes.Triangle(0, 0, 100, 100)
	rect := &shapes.Rect{X: 0, Y: 0, Width: 10, Height: 10, Rotation: 45, StrokeWidth: 1}

	out := string(SVG{}.Bytes([]shapes.Shape{tri, rect}, Options{Width: 200, Height: 200}))

	if !strings.Contains(out, `<polygon points="50,0 0,100 100,100"`) {
		t.Errorf("polygon points wrong:\n%s", out)
	}
	if !strings.Contains(out, `transform="rotate(45 5 5)"`) {
		t.Errorf("rotation transform wrong:\n%s", out)
	}
}

func TestSVGRenderWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "out.svg")
	if err := (SVG{}).Render(testShapes(), path, Options{Width: 800, Height: 600}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("written file does not look like SVG")
	}
}

func TestForName(t *testing.T) {
	for name, want := range map[string]Backend{
		"svg":    SVG{},
		"png":    PNG{},
		"drawio": Drawio{},
	} {
		got, err := ForName(name)
		if err != nil {
			t.Errorf("ForName(%q) error: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ForName(%q) = %T, want %T", name, got, want)
		}
	}

	if _, err := ForName("pdf"); err == nil {
		t.Error("ForName(pdf) should fail")
	}
}

func TestForPath(t *testing.T) {
	if _, ok := ForPath("x/y.png").(PNG); !ok {
		t.Error("ForPath(.png) should pick the PNG backend")
	}
	if _, ok := ForPath("diagram.drawio").(Drawio); !ok {
		t.Error("ForPath(.drawio) should pick the drawio backend")
	}
	if _, ok := ForPath("out.svg").(SVG); !ok {
		t.Error("ForPath(.svg) should pick the SVG backend")
	}
	if _, ok := ForPath("no-extension").(SVG); !ok {
		t.Error("ForPath without extension should fall back to SVG")
	}
}
