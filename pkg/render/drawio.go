package render

import (
	"path/filepath"
	"strconv"

	"github.com/odtools/oddraw/pkg/colors"
	"github.com/odtools/oddraw/pkg/drawio"
	"github.com/odtools/oddraw/pkg/shapes"
)

// Drawio renders shapes to the draw.io diagram-interchange format.
type Drawio struct{}

// Render implements Backend. Each shape becomes one cell on a single
// page; cell identifiers count up from 2, past the two structural cells.
func (Drawio) Render(sh []shapes.Shape, path string, opts Options) error {
	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}

	doc, err := drawio.NewDocument(filepath.Base(path), dir)
	if err != nil {
		return err
	}
	page := drawio.NewPage(doc, "")
	doc.AddPage(page)

	id := 2
	for _, s := range sh {
		page.AddCell(cellForShape(s, strconv.Itoa(id)))
		id++
	}

	_, err = doc.Write()
	return err
}

// Show implements Backend.
func (d Drawio) Show(sh []shapes.Shape, opts Options) error {
	path, err := tempFile(".drawio")
	if err != nil {
		return err
	}
	if err := d.Render(sh, path, opts); err != nil {
		return err
	}
	return launchViewer(opts.Viewer, path)
}

// cellForShape maps a shape onto an interchange cell. Circles become
// ellipses; every other shape is represented by a rectangle over its
// bounding box, since the format has no primitive for arbitrary polygons
// or lines without edge semantics.
func cellForShape(s shapes.Shape, id string) *drawio.Cell {
	base := "rectangle"
	if _, ok := s.(*shapes.Circle); ok {
		base = "ellipse"
	}

	style := drawio.NewStyle(base).
		Set("rounded", 0).
		Set("whiteSpace", "wrap")

	switch v := s.(type) {
	case *shapes.Rect:
		setPaint(style, v.Fill, v.Stroke, v.StrokeWidth)
	case *shapes.Circle:
		setPaint(style, v.Fill, v.Stroke, v.StrokeWidth)
	case *shapes.Polygon:
		setPaint(style, v.Fill, v.Stroke, v.StrokeWidth)
	case *shapes.Line:
		setPaint(style, nil, v.Color, v.Thickness)
	}

	x, y, w, h := s.Bounds()
	return drawio.NewCell(id, "", style, drawio.Geometry{X: x, Y: y, Width: w, Height: h}, "")
}

func setPaint(style *drawio.Style, fill, stroke *colors.Color, width float64) {
	if fill != nil {
		style.Set("fillColor", fill.Hex())
	}
	if stroke != nil {
		style.Set("strokeColor", stroke.Hex())
	}
	if width > 0 {
		style.Set("strokeWidth", width)
	}
}
