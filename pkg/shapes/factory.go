package shapes

// Block creates a filled rectangle, the most common building block in
// quick diagrams.
func Block(x, y, w, h float64) *Rect {
	return &Rect{X: x, Y: y, Width: w, Height: h, StrokeWidth: 1}
}

// Square creates a rectangle with equal sides.
func Square(x, y, size float64) *Rect {
	return &Rect{X: x, Y: y, Width: size, Height: size, StrokeWidth: 1}
}

// Triangle creates an isoceles triangle inscribed in the given bounding
// box: apex at the top center, base along the bottom edge.
func Triangle(x, y, w, h float64) *Polygon {
	return &Polygon{
		Points: []Point{
			{X: x + w/2, Y: y},
			{X: x, Y: y + h},
			{X: x + w, Y: y + h},
		},
		StrokeWidth: 1,
	}
}
