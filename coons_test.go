package shading

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

// flatPatch returns a patch whose edge control points lie at the edge midpoints, making every boundary curve a straight line.
func flatPatch(c0, c1, c2, c3 Point) CoonsPatch {
	return CoonsPatch{
		Pts: [8]Point{
			c0, c0.Interpolate(c1, 0.5), c1,
			c1.Interpolate(c2, 0.5), c2,
			c2.Interpolate(c3, 0.5), c3,
			c3.Interpolate(c0, 0.5),
		},
		Tex: [4]Point{c0, c1, c2, c3},
	}
}

func TestCoonsPatchFlat(t *testing.T) {
	// with straight edges the patch reduces to bilinear interpolation of the corners
	patch := flatPatch(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
	for _, uv := range []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}, {0.25, 0.75}, {0.125, 0.5}} {
		pos, tex := patch.At(uv.X, uv.Y)
		test.That(t, pos.Equals(uv), "pos at", uv)
		test.That(t, tex.Equals(uv), "tex at", uv)
	}

	patch = flatPatch(Point{2, 1}, Point{6, 1}, Point{6, 4}, Point{2, 4})
	pos, tex := patch.At(0.5, 0.5)
	test.That(t, pos.Equals(Point{4, 2.5}))
	test.That(t, tex.Equals(Point{4, 2.5}))
}

func TestCoonsPatchBoundary(t *testing.T) {
	// the v=0 edge is exactly the top boundary curve
	patch := flatPatch(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
	patch.Pts[1] = Point{0.5, -0.5}
	pos, _ := patch.At(0.5, 0.0)
	test.That(t, pos.Equals(quadraticBezierPos(patch.Pts[0], patch.Pts[1], patch.Pts[2], 0.5)))
	test.That(t, pos.Equals(Point{0.5, -0.25}))

	// corners are interpolated exactly
	pos, tex := patch.At(1.0, 1.0)
	test.That(t, pos.Equals(patch.Pts[4]))
	test.That(t, tex.Equals(patch.Tex[2]))
}

func TestCoonsPatchTessellate(t *testing.T) {
	patch := flatPatch(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
	for _, level := range []int{1, 2, 7} {
		t.Run(fmt.Sprintf("level=%d", level), func(t *testing.T) {
			mesh := patch.Tessellate(level)
			test.T(t, len(mesh.Vertices), (level+1)*(level+1))
			test.T(t, len(mesh.Indices), 6*level*level)
			for _, i := range mesh.Indices {
				test.That(t, 0 <= i && i < len(mesh.Vertices))
			}

			// for a flat patch every vertex position equals its texture coordinate
			for _, v := range mesh.Vertices {
				test.That(t, v.Position.Equals(v.TexCoord))
			}
		})
	}
}

func TestCoonsPatchTessellateArea(t *testing.T) {
	patch := flatPatch(Point{0, 0}, Point{2, 0}, Point{2, 2}, Point{0, 2})
	mesh := patch.Tessellate(3)
	area := 0.0
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		p0 := mesh.Vertices[mesh.Indices[i]].Position
		p1 := mesh.Vertices[mesh.Indices[i+1]].Position
		p2 := mesh.Vertices[mesh.Indices[i+2]].Position
		area += p1.Sub(p0).PerpDot(p2.Sub(p0)) / 2.0
	}
	test.Float(t, area, 4.0)
}

func TestCoonsPatchTessellateInvalid(t *testing.T) {
	patch := flatPatch(Point{0, 0}, Point{1, 0}, Point{1, 1}, Point{0, 1})
	test.T(t, patch.Tessellate(0) == nil, true)
	test.T(t, patch.Tessellate(-3) == nil, true)
}
