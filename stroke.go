package shading

// StrokePolygon returns the outline of the polyline through points stroked with the given width, with round joins and round caps. When closed is set the last point connects back to the first. The returned path is the union of a counter clockwise rectangle per edge and a full circle of radius width/2 per vertex; filled with the non-zero rule the overlapping contours cover exactly the stroked area. The circles make the outline continuous at joins of any angle, and at the end points of an open polyline they form the round caps.
//
// It returns an empty path when fewer than two points are given or when width is not positive. Coincident consecutive points contribute no edge but do get a joint circle.
func StrokePolygon(points []Point, width float64, closed bool) *Path {
	p := &Path{}
	if len(points) < 2 || width <= 0.0 {
		return p
	}
	r := width / 2.0

	edge := func(a, b Point) {
		if a.Equals(b) {
			return
		}
		n := b.Sub(a).Rot90CCW().Norm(r)
		p.MoveTo(a.X-n.X, a.Y-n.Y)
		p.LineTo(b.X-n.X, b.Y-n.Y)
		p.LineTo(b.X+n.X, b.Y+n.Y)
		p.LineTo(a.X+n.X, a.Y+n.Y)
		p.Close()
	}

	for i := 1; i < len(points); i++ {
		edge(points[i-1], points[i])
	}
	if closed {
		edge(points[len(points)-1], points[0])
	}
	for _, q := range points {
		p.Circle(q.X, q.Y, r)
	}
	return p
}
