package render

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/odtools/oddraw/pkg/colors"
	"github.com/odtools/oddraw/pkg/errors"
	"github.com/odtools/oddraw/pkg/shapes"
)

// SVG renders shapes as Scalable Vector Graphics markup.
type SVG struct{}

// Render implements Backend.
func (SVG) Render(sh []shapes.Shape, path string, opts Options) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	data := renderSVG(sh, opts)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

// Show implements Backend.
func (s SVG) Show(sh []shapes.Shape, opts Options) error {
	path, err := tempFile(".svg")
	if err != nil {
		return err
	}
	if err := s.Render(sh, path, opts); err != nil {
		return err
	}
	return launchViewer(opts.Viewer, path)
}

// Bytes returns the SVG markup without touching the filesystem.
func (SVG) Bytes(sh []shapes.Shape, opts Options) []byte {
	return renderSVG(sh, opts)
}

func renderSVG(sh []shapes.Shape, opts Options) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n",
		opts.Width, opts.Height)

	for _, s := range sh {
		writeShapeSVG(&buf, s)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeShapeSVG(buf *bytes.Buffer, s shapes.Shape) {
	switch v := s.(type) {
	case *shapes.Rect:
		fmt.Fprintf(buf, `  <rect x="%s" y="%s" width="%s" height="%s"%s%s/>`+"\n",
			num(v.X), num(v.Y), num(v.Width), num(v.Height),
			paintAttrs(v.Fill, v.Stroke, v.StrokeWidth),
			rotateAttr(v.Rotation, v.X+v.Width/2, v.Y+v.Height/2))
	case *shapes.Circle:
		c := v.Center()
		fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s"%s/>`+"\n",
			num(c.X), num(c.Y), num(v.Radius),
			paintAttrs(v.Fill, v.Stroke, v.StrokeWidth))
	case *shapes.Line:
		stroke := colors.Black
		if v.Color != nil {
			stroke = *v.Color
		}
		fmt.Fprintf(buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
			num(v.X0), num(v.Y0), num(v.X1), num(v.Y1), stroke.Hex(), num(v.Thickness))
	case *shapes.Polygon:
		pts := make([]string, len(v.Points))
		for i, p := range v.Points {
			pts[i] = num(p.X) + "," + num(p.Y)
		}
		x, y, w, h := v.Bounds()
		fmt.Fprintf(buf, `  <polygon points="%s"%s%s/>`+"\n",
			strings.Join(pts, " "),
			paintAttrs(v.Fill, v.Stroke, v.StrokeWidth),
			rotateAttr(v.Rotation, x+w/2, y+h/2))
	}
}

// paintAttrs renders fill/stroke/stroke-width attributes. A nil fill maps
// to "none" and a nil stroke defaults to black, matching how unstyled
// shapes are displayed.
func paintAttrs(fill, stroke *colors.Color, width float64) string {
	f := "none"
	if fill != nil {
		f = fill.Hex()
	}
	s := colors.Black.Hex()
	if stroke != nil {
		s = stroke.Hex()
	}
	return fmt.Sprintf(` fill="%s" stroke="%s" stroke-width="%s"`, f, s, num(width))
}

func rotateAttr(deg, cx, cy float64) string {
	if deg == 0 {
		return ""
	}
	return fmt.Sprintf(` transform="rotate(%s %s %s)"`, num(deg), num(cx), num(cy))
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
