package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/odtools/oddraw/pkg/shapes"
)

func TestNewDefaults(t *testing.T) {
	d := New(0, 0)
	if d.Width != DefaultWidth || d.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", d.Width, d.Height, DefaultWidth, DefaultHeight)
	}
	if d.Units != "px" {
		t.Errorf("Units = %q, want px", d.Units)
	}

	d = New(1024, 768)
	if d.Width != 1024 || d.Height != 768 {
		t.Errorf("size = %dx%d, want 1024x768", d.Width, d.Height)
	}
}

func TestAddShapeOrder(t *testing.T) {
	d := New(0, 0)
	a := shapes.Block(0, 0, 10, 10)
	b := &shapes.Circle{Radius: 5}
	d.AddShape(a)
	d.AddShape(b)

	got := d.Shapes()
	if len(got) != 2 || got[0] != shapes.Shape(a) || got[1] != shapes.Shape(b) {
		t.Errorf("Shapes() order wrong: %v", got)
	}
}

func TestRenderPicksBackendFromExtension(t *testing.T) {
	d := New(100, 100)
	d.AddShape(shapes.Block(10, 10, 20, 20))

	dir := t.TempDir()
	for _, name := range []string{"out.svg", "out.png", "out.drawio"} {
		path := filepath.Join(dir, name)
		if err := d.Render(path, ""); err != nil {
			t.Fatalf("Render(%s) error: %v", name, err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Render(%s) left no file: %v", name, err)
		}
	}
}

func TestRenderExplicitBackendWins(t *testing.T) {
	d := New(100, 100)
	d.AddShape(shapes.Block(0, 0, 10, 10))

	// Explicit svg backend regardless of the .txt extension.
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := d.Render(path, "svg"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("explicit backend name should override the extension")
	}
}

func TestRenderUnknownBackend(t *testing.T) {
	d := New(100, 100)
	if err := d.Render("out.svg", "pdf"); err == nil {
		t.Error("Render() with an unknown backend should fail")
	}
}

func TestBackendForPath(t *testing.T) {
	tests := map[string]string{
		"a.svg":        "svg",
		"a.PNG":        "png",
		"dir/a.drawio": "drawio",
		"noext":        "svg",
	}
	for path, want := range tests {
		if got := BackendForPath(path); got != want {
			t.Errorf("BackendForPath(%q) = %q, want %q", path, got, want)
		}
	}
}
