// Package diagram provides the top-level container callers build scenes
// with: create a diagram, add shapes, render or show.
package diagram

import (
	"path/filepath"
	"strings"

	"github.com/odtools/oddraw/pkg/config"
	"github.com/odtools/oddraw/pkg/render"
	"github.com/odtools/oddraw/pkg/shapes"
)

// Default canvas size when the caller provides none.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Diagram is an ordered collection of shapes plus canvas dimensions.
// Shape order is paint order.
type Diagram struct {
	Width  int
	Height int
	Units  string

	shapes []shapes.Shape
}

// New creates a diagram. Zero width or height falls back to the default
// canvas size.
func New(width, height int) *Diagram {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Diagram{Width: width, Height: height, Units: "px"}
}

// AddShape appends a shape. Later shapes paint over earlier ones.
func (d *Diagram) AddShape(s shapes.Shape) {
	d.shapes = append(d.shapes, s)
}

// Shapes returns the shapes in paint order.
func (d *Diagram) Shapes() []shapes.Shape {
	out := make([]shapes.Shape, len(d.shapes))
	copy(out, d.shapes)
	return out
}

// Render writes the diagram to path. An empty backendName picks the
// backend from the path's extension.
func (d *Diagram) Render(path, backendName string) error {
	b, err := d.backend(path, backendName)
	if err != nil {
		return err
	}
	return b.Render(d.shapes, path, d.options(""))
}

// Show renders the diagram to a temporary file and opens it in the
// platform viewer configured for the backend.
func (d *Diagram) Show(backendName string, cfg config.Config) error {
	if backendName == "" {
		backendName = cfg.DefaultBackend
	}
	b, err := render.ForName(backendName)
	if err != nil {
		return err
	}
	return b.Show(d.shapes, d.options(cfg.ViewerFor(backendName)))
}

func (d *Diagram) backend(path, backendName string) (render.Backend, error) {
	if backendName != "" {
		return render.ForName(backendName)
	}
	return render.ForPath(path), nil
}

func (d *Diagram) options(viewer string) render.Options {
	return render.Options{Width: d.Width, Height: d.Height, Viewer: viewer}
}

// BackendForPath reports the backend name an output path implies.
func BackendForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return render.BackendPNG
	case ".drawio":
		return render.BackendDrawio
	default:
		return render.BackendSVG
	}
}
