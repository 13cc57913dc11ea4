package shading

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func triangleArea(tr [3]Point) float64 {
	return math.Abs(tr[1].Sub(tr[0]).PerpDot(tr[2].Sub(tr[0]))) / 2.0
}

func TestTessellateRect(t *testing.T) {
	p := &Path{}
	p.Rect(0, 0, 10, 5)
	triangles := p.Tessellate()
	test.T(t, len(triangles), 2)

	area := 0.0
	for _, tr := range triangles {
		area += triangleArea(tr)
	}
	test.Float(t, area, 50.0)
}

func TestTessellateCircle(t *testing.T) {
	p := &Path{}
	p.Circle(0, 0, 1)

	// a simple polygon of n points yields n-2 triangles
	n := len(p.Polygons()[0])
	triangles := p.Tessellate()
	test.T(t, len(triangles), n-2)

	area := 0.0
	for _, tr := range triangles {
		area += triangleArea(tr)
	}
	test.That(t, math.Abs(area-math.Pi)/math.Pi < 0.01)
}

func TestTessellateMultipleContours(t *testing.T) {
	p := &Path{}
	p.Rect(0, 0, 4, 4)
	p.Rect(10, 0, 4, 4)
	test.T(t, len(p.Tessellate()), 4)
}

func TestTessellateDegenerate(t *testing.T) {
	p := &Path{}
	test.T(t, len(p.Tessellate()), 0)

	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	test.T(t, len(p.Tessellate()), 0)
}
