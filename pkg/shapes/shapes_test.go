package shapes

import "testing"

func TestRectBounds(t *testing.T) {
	r := &Rect{X: 10, Y: 20, Width: 100, Height: 50}
	x, y, w, h := r.Bounds()
	if x != 10 || y != 20 || w != 100 || h != 50 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (10, 20, 100, 50)", x, y, w, h)
	}
}

func TestCircleBounds(t *testing.T) {
	c := &Circle{X: 5, Y: 5, Radius: 30}
	x, y, w, h := c.Bounds()
	if x != 5 || y != 5 || w != 60 || h != 60 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (5, 5, 60, 60)", x, y, w, h)
	}

	center := c.Center()
	if center.X != 35 || center.Y != 35 {
		t.Errorf("Center() = %+v, want {35 35}", center)
	}
}

func TestLineBounds(t *testing.T) {
	l := &Line{X0: 100, Y0: 10, X1: 20, Y1: 80}
	x, y, w, h := l.Bounds()
	if x != 20 || y != 10 || w != 80 || h != 70 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (20, 10, 80, 70)", x, y, w, h)
	}
}

func TestNewPolygonRejectsShortLists(t *testing.T) {
	for _, pts := range [][]Point{nil, {{X: 1, Y: 1}}, {{X: 1, Y: 1}, {X: 2, Y: 2}}} {
		if _, err := NewPolygon(pts); err == nil {
			t.Errorf("NewPolygon with %d points should fail", len(pts))
		}
	}

	p, err := NewPolygon([]Point{{0, 0}, {10, 0}, {5, 10}})
	if err != nil {
		t.Fatalf("NewPolygon() error: %v", err)
	}
	x, y, w, h := p.Bounds()
	if x != 0 || y != 0 || w != 10 || h != 10 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (0, 0, 10, 10)", x, y, w, h)
	}
}

func TestTrianglePoints(t *testing.T) {
	tri := Triangle(0, 0, 100, 100)
	want := []Point{{50, 0}, {0, 100}, {100, 100}}
	if len(tri.Points) != 3 {
		t.Fatalf("Triangle has %d points, want 3", len(tri.Points))
	}
	for i, p := range tri.Points {
		if p != want[i] {
			t.Errorf("Points[%d] = %+v, want %+v", i, p, want[i])
		}
	}
}

func TestSquare(t *testing.T) {
	s := Square(10, 10, 40)
	if s.Width != 40 || s.Height != 40 {
		t.Errorf("Square size = (%v, %v), want (40, 40)", s.Width, s.Height)
	}
}
