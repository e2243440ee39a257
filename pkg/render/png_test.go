package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPNGRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img", "out.png")
	if err := (PNG{}).Render(testShapes(), path, Options{Width: 400, Height: 300}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 300 {
		t.Errorf("image size = %dx%d, want 400x300", b.Dx(), b.Dy())
	}
}
