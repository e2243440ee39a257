// Package scene loads declarative TOML scene files into diagrams.
//
// A scene file describes the canvas and a list of shapes:
//
//	width = 800
//	height = 600
//
//	[[shapes]]
//	kind = "rect"
//	x = 10
//	y = 10
//	width = 100
//	height = 50
//	fill = "#FF0000"
//
//	[[shapes]]
//	kind = "circle"
//	x = 200
//	y = 200
//	radius = 30
//	stroke = "#0000FF"
package scene

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/odtools/oddraw/pkg/colors"
	"github.com/odtools/oddraw/pkg/diagram"
	"github.com/odtools/oddraw/pkg/errors"
	"github.com/odtools/oddraw/pkg/shapes"
)

type sceneFile struct {
	Width  int          `toml:"width"`
	Height int          `toml:"height"`
	Units  string       `toml:"units"`
	Shapes []sceneShape `toml:"shapes"`
}

type sceneShape struct {
	Kind string `toml:"kind"`

	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Size   float64 `toml:"size"`
	Radius float64 `toml:"radius"`

	X0 float64 `toml:"x0"`
	Y0 float64 `toml:"y0"`
	X1 float64 `toml:"x1"`
	Y1 float64 `toml:"y1"`

	Points [][]float64 `toml:"points"`

	Fill        string  `toml:"fill"`
	Stroke      string  `toml:"stroke"`
	StrokeWidth float64 `toml:"stroke_width"`
	Thickness   float64 `toml:"thickness"`
	Rotation    float64 `toml:"rotation"`
}

// Load reads a scene file and builds the diagram it describes.
func Load(path string) (*diagram.Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read scene %s", path)
	}

	var sf sceneFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "parse scene %s", path)
	}

	d := diagram.New(sf.Width, sf.Height)
	if sf.Units != "" {
		d.Units = sf.Units
	}

	for i, ss := range sf.Shapes {
		s, err := buildShape(ss)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "scene %s: shape %d", path, i+1)
		}
		d.AddShape(s)
	}
	return d, nil
}

func buildShape(ss sceneShape) (shapes.Shape, error) {
	fill, err := optColor(ss.Fill)
	if err != nil {
		return nil, err
	}
	stroke, err := optColor(ss.Stroke)
	if err != nil {
		return nil, err
	}

	switch ss.Kind {
	case "rect", "rectangle", "block":
		return &shapes.Rect{
			X: ss.X, Y: ss.Y, Width: ss.Width, Height: ss.Height,
			Rotation: ss.Rotation,
			Fill:     fill, Stroke: stroke, StrokeWidth: ss.StrokeWidth,
		}, nil
	case "square":
		return &shapes.Rect{
			X: ss.X, Y: ss.Y, Width: ss.Size, Height: ss.Size,
			Rotation: ss.Rotation,
			Fill:     fill, Stroke: stroke, StrokeWidth: ss.StrokeWidth,
		}, nil
	case "circle":
		return &shapes.Circle{
			X: ss.X, Y: ss.Y, Radius: ss.Radius,
			Fill: fill, Stroke: stroke, StrokeWidth: ss.StrokeWidth,
		}, nil
	case "line":
		return &shapes.Line{
			X0: ss.X0, Y0: ss.Y0, X1: ss.X1, Y1: ss.Y1,
			Color: stroke, Thickness: ss.Thickness,
		}, nil
	case "triangle":
		t := shapes.Triangle(ss.X, ss.Y, ss.Width, ss.Height)
		t.Rotation = ss.Rotation
		t.Fill = fill
		t.Stroke = stroke
		if ss.StrokeWidth > 0 {
			t.StrokeWidth = ss.StrokeWidth
		}
		return t, nil
	case "polygon":
		pts := make([]shapes.Point, 0, len(ss.Points))
		for _, p := range ss.Points {
			if len(p) != 2 {
				return nil, errors.New(errors.ErrCodeInvalidShape, "polygon point must be [x, y], got %v", p)
			}
			pts = append(pts, shapes.Point{X: p[0], Y: p[1]})
		}
		poly, err := shapes.NewPolygon(pts)
		if err != nil {
			return nil, err
		}
		poly.Rotation = ss.Rotation
		poly.Fill = fill
		poly.Stroke = stroke
		poly.StrokeWidth = ss.StrokeWidth
		return poly, nil
	case "":
		return nil, errors.New(errors.ErrCodeInvalidShape, "shape has no kind")
	default:
		return nil, errors.New(errors.ErrCodeInvalidShape, "unknown shape kind %q", ss.Kind)
	}
}

func optColor(s string) (*colors.Color, error) {
	if s == "" {
		return nil, nil
	}
	c, err := colors.Parse(s)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
