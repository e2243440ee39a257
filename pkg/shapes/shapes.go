// Package shapes defines the 2-D primitives a diagram is built from.
//
// Shapes are plain value types: position and size plus visual properties
// (fill, stroke, stroke width). Backends in pkg/render type-switch over the
// concrete shape types to map them onto output primitives.
package shapes

import (
	"github.com/odtools/oddraw/pkg/colors"
	"github.com/odtools/oddraw/pkg/errors"
)

// Point is a 2-D coordinate.
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Shape is implemented by every drawable primitive.
type Shape interface {
	// Bounds returns the axis-aligned bounding box as (x, y, width, height).
	Bounds() (x, y, w, h float64)
}

// Rect is an axis-aligned rectangle, optionally rotated about its center.
type Rect struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64 // degrees, clockwise about the center

	Fill        *colors.Color // nil leaves the interior unfilled
	Stroke      *colors.Color
	StrokeWidth float64
}

// Bounds implements Shape.
func (r *Rect) Bounds() (x, y, w, h float64) {
	return r.X, r.Y, r.Width, r.Height
}

// Circle is a circle positioned by the top-left corner of its bounding box.
type Circle struct {
	X, Y   float64
	Radius float64

	Fill        *colors.Color
	Stroke      *colors.Color
	StrokeWidth float64
}

// Bounds implements Shape.
func (c *Circle) Bounds() (x, y, w, h float64) {
	return c.X, c.Y, 2 * c.Radius, 2 * c.Radius
}

// Center returns the circle's center point.
func (c *Circle) Center() Point {
	return Point{X: c.X + c.Radius, Y: c.Y + c.Radius}
}

// Line is a straight segment between two points.
type Line struct {
	X0, Y0 float64
	X1, Y1 float64

	Color     *colors.Color
	Thickness float64
}

// Bounds implements Shape.
func (l *Line) Bounds() (x, y, w, h float64) {
	x = min(l.X0, l.X1)
	y = min(l.Y0, l.Y1)
	return x, y, max(l.X0, l.X1) - x, max(l.Y0, l.Y1) - y
}

// Polygon is a closed shape defined by three or more points.
type Polygon struct {
	Points   []Point
	Rotation float64

	Fill        *colors.Color
	Stroke      *colors.Color
	StrokeWidth float64
}

// NewPolygon builds a polygon, rejecting point lists shorter than three.
func NewPolygon(points []Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, errors.New(errors.ErrCodeInvalidShape, "polygon must have at least 3 points, got %d", len(points))
	}
	return &Polygon{Points: points}, nil
}

// Bounds implements Shape.
func (p *Polygon) Bounds() (x, y, w, h float64) {
	if len(p.Points) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		minX = min(minX, pt.X)
		minY = min(minY, pt.Y)
		maxX = max(maxX, pt.X)
		maxY = max(maxY, pt.Y)
	}
	return minX, minY, maxX - minX, maxY - minY
}
