package shading

import (
	"github.com/ByteArena/poly2tri-go"
)

// Tessellate flattens the path and triangulates each sub-contour independently, returning the resulting triangles. Contours with fewer than three points are skipped.
func (p *Path) Tessellate() [][3]Point {
	triangles := [][3]Point{}
	for _, poly := range p.Polygons() {
		if len(poly) < 3 {
			continue
		}
		contour := make([]*poly2tri.Point, 0, len(poly))
		for _, q := range poly {
			contour = append(contour, poly2tri.NewPoint(q.X, q.Y))
		}

		swctx := poly2tri.NewSweepContext(contour, false)
		swctx.Triangulate()

		for _, tr := range swctx.GetTriangles() {
			triangles = append(triangles, [3]Point{
				{tr.Points[0].X, tr.Points[0].Y},
				{tr.Points[1].X, tr.Points[1].Y},
				{tr.Points[2].X, tr.Points[2].Y},
			})
		}
	}
	return triangles
}
