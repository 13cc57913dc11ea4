package shading

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestVoronoiShader(t *testing.T) {
	g := NewVoronoiShader([]Point{{0, 0}, {10, 0}, {0, 10}}, []Color{Red, Green, Blue})
	test.T(t, g.At(1.0, 1.0), Red)
	test.T(t, g.At(9.0, 1.0), Green)
	test.T(t, g.At(1.0, 9.0), Blue)
	test.T(t, g.At(-100.0, -100.0), Red)

	// single site colors the whole plane
	g = NewVoronoiShader([]Point{{3, 3}}, []Color{Magenta})
	test.T(t, g.At(1e6, -1e6), Magenta)
}

func TestVoronoiShaderTie(t *testing.T) {
	// equidistant points take the lowest site index
	g := NewVoronoiShader([]Point{{0, 0}, {10, 0}}, []Color{Red, Green})
	test.T(t, g.At(5.0, 0.0), Red)
	test.T(t, g.At(5.0, 123.0), Red)

	g = NewVoronoiShader([]Point{{10, 0}, {0, 0}}, []Color{Red, Green})
	test.T(t, g.At(5.0, 0.0), Red)
}

func TestVoronoiShaderInvalid(t *testing.T) {
	test.T(t, NewVoronoiShader(nil, nil) == nil, true)
	test.T(t, NewVoronoiShader([]Point{}, []Color{}) == nil, true)
	test.T(t, NewVoronoiShader([]Point{{0, 0}}, []Color{Red, Green}) == nil, true)
}

func TestVoronoiShaderCopiesSites(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}}
	colors := []Color{Red, Green}
	g := NewVoronoiShader(points, colors)
	points[0] = Point{100, 100}
	colors[0] = Black
	test.T(t, g.At(1.0, 0.0), Red)
	test.T(t, g.At(9.0, 0.0), Green)
}
