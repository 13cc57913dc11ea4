package shading

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathPos(t *testing.T) {
	p := &Path{}
	test.T(t, p.Empty(), true)

	p.MoveTo(3, 4)
	x, y := p.Pos()
	test.Float(t, x, 3.0)
	test.Float(t, y, 4.0)

	p.LineTo(5, 6)
	p.QuadTo(6, 7, 8, 9)
	x, y = p.Pos()
	test.Float(t, x, 8.0)
	test.Float(t, y, 9.0)

	p.Close()
	x, y = p.Pos()
	test.Float(t, x, 3.0)
	test.Float(t, y, 4.0)
}

func TestPathCopyAppend(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.LineTo(1, 0)

	q := p.Copy()
	q.LineTo(1, 1)
	test.T(t, p.String(), "M0 0L1 0")
	test.T(t, q.String(), "M0 0L1 0L1 1")

	r := &Path{}
	r.MoveTo(5, 5)
	p.Append(r)
	test.T(t, p.String(), "M0 0L1 0M5 5")
	x, y := p.Pos()
	test.Float(t, x, 5.0)
	test.Float(t, y, 5.0)
}

func TestPathBounds(t *testing.T) {
	p := &Path{}
	p.Rect(1, 2, 3, 4)
	test.T(t, p.Bounds(), Rect{1, 2, 3, 4})

	// the control point pulls the curve beyond its end points
	p = &Path{}
	p.MoveTo(0, 0)
	p.QuadTo(1, 2, 2, 0)
	bounds := p.Bounds()
	test.Float(t, bounds.X, 0.0)
	test.Float(t, bounds.Y, 0.0)
	test.Float(t, bounds.W, 2.0)
	test.Float(t, bounds.H, 1.0)

	// arcs include the axis extremes, not just the end points
	p = &Path{}
	p.Circle(2, 3, 1.5)
	bounds = p.Bounds()
	test.Float(t, bounds.X, 0.5)
	test.Float(t, bounds.Y, 1.5)
	test.Float(t, bounds.W, 3.0)
	test.Float(t, bounds.H, 3.0)
}

func TestPathPolygons(t *testing.T) {
	p := &Path{}
	p.Rect(0, 0, 10, 5)
	polys := p.Polygons()
	test.T(t, len(polys), 1)
	test.T(t, len(polys[0]), 4)
	test.T(t, polys[0][0], Point{0, 0})
	test.T(t, polys[0][2], Point{10, 5})

	p.Rect(20, 0, 5, 5)
	test.T(t, len(p.Polygons()), 2)

	// curves are flattened into line segments
	p = &Path{}
	p.MoveTo(0, 0)
	p.QuadTo(1, 1, 2, 0)
	polys = p.Polygons()
	test.T(t, len(polys), 1)
	test.T(t, len(polys[0]), 5)
	test.That(t, polys[0][2].Equals(Point{1, 0.5}))
}

func TestPathPolygonsWinding(t *testing.T) {
	p := &Path{}
	p.Circle(0, 0, 1)
	polys := p.Polygons()
	test.T(t, len(polys), 1)
	test.That(t, 0.0 < polygonArea(polys[0]))
}

// polygonArea returns the signed area, positive for counter clockwise windings.
func polygonArea(points []Point) float64 {
	area := 0.0
	for i, p := range points {
		q := points[(i+1)%len(points)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2.0
}

func TestParseSVGPath(t *testing.T) {
	var tests = []struct {
		orig string
		res  string
	}{
		{"M10 0L20 0Q25 5 30 0A5 5 0 0 1 40 0z", "M10 0L20 0Q25 5 30 0A5 5 0 0 1 40 0z"},
		{"m10 10l5 0v5h-5z", "M10 10L15 10L15 15L10 15z"},
		{"M5,5 L10,10", "M5 5L10 10"},
		{"M0 0H10V10", "M0 0L10 0L10 10"},
		{"M0 0q5 5 10 0", "M0 0Q5 5 10 0"},
		{"M0 0a5 5 0 0 1 10 0", "M0 0A5 5 0 0 1 10 0"},
		{"M0 0L10 0 20 0", "M0 0L10 0L20 0"},
		{"", ""},
		{"garbage", ""},
	}
	for _, tt := range tests {
		t.Run(tt.orig, func(t *testing.T) {
			p := ParseSVGPath(tt.orig)
			test.T(t, p.String(), tt.res)
		})
	}
}
