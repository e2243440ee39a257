package render

import (
	"github.com/fogleman/gg"

	"github.com/odtools/oddraw/pkg/colors"
	"github.com/odtools/oddraw/pkg/errors"
	"github.com/odtools/oddraw/pkg/shapes"
)

// PNG renders shapes to a raster image using a 2-D drawing context.
// The background is left transparent.
type PNG struct{}

// Render implements Backend.
func (PNG) Render(sh []shapes.Shape, path string, opts Options) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	for _, s := range sh {
		drawShape(dc, s)
	}

	if err := dc.SavePNG(path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// Show implements Backend.
func (p PNG) Show(sh []shapes.Shape, opts Options) error {
	path, err := tempFile(".png")
	if err != nil {
		return err
	}
	if err := p.Render(sh, path, opts); err != nil {
		return err
	}
	return launchViewer(opts.Viewer, path)
}

func drawShape(dc *gg.Context, s shapes.Shape) {
	switch v := s.(type) {
	case *shapes.Rect:
		withRotation(dc, v.Rotation, v.X+v.Width/2, v.Y+v.Height/2, func() {
			dc.DrawRectangle(v.X, v.Y, v.Width, v.Height)
			paint(dc, v.Fill, v.Stroke, v.StrokeWidth)
		})
	case *shapes.Circle:
		c := v.Center()
		dc.DrawCircle(c.X, c.Y, v.Radius)
		paint(dc, v.Fill, v.Stroke, v.StrokeWidth)
	case *shapes.Line:
		stroke := colors.Black
		if v.Color != nil {
			stroke = *v.Color
		}
		dc.SetColor(stroke)
		dc.SetLineWidth(v.Thickness)
		dc.DrawLine(v.X0, v.Y0, v.X1, v.Y1)
		dc.Stroke()
	case *shapes.Polygon:
		x, y, w, h := v.Bounds()
		withRotation(dc, v.Rotation, x+w/2, y+h/2, func() {
			dc.NewSubPath()
			for i, p := range v.Points {
				if i == 0 {
					dc.MoveTo(p.X, p.Y)
				} else {
					dc.LineTo(p.X, p.Y)
				}
			}
			dc.ClosePath()
			paint(dc, v.Fill, v.Stroke, v.StrokeWidth)
		})
	}
}

// paint fills and strokes the current path. A nil stroke defaults to
// black, matching the SVG backend.
func paint(dc *gg.Context, fill, stroke *colors.Color, width float64) {
	if fill != nil {
		dc.SetColor(*fill)
		dc.FillPreserve()
	}
	s := colors.Black
	if stroke != nil {
		s = *stroke
	}
	dc.SetColor(s)
	dc.SetLineWidth(width)
	dc.Stroke()
}

func withRotation(dc *gg.Context, deg, cx, cy float64, draw func()) {
	if deg == 0 {
		draw()
		return
	}
	dc.Push()
	dc.RotateAbout(gg.Radians(deg), cx, cy)
	draw()
	dc.Pop()
}
