package shading

// VoronoiShader colors every point by the color of its nearest site. Sites and colors are copied at construction; mutating the caller's slices afterwards has no effect on queries.
type VoronoiShader struct {
	points []Point
	colors []Color
}

// NewVoronoiShader returns a new Voronoi shader with colors[i] associated to points[i]. It returns nil when both slices are empty or differ in length.
func NewVoronoiShader(points []Point, colors []Color) *VoronoiShader {
	if len(points) == 0 || len(points) != len(colors) {
		return nil
	}
	g := &VoronoiShader{
		points: make([]Point, len(points)),
		colors: make([]Color, len(colors)),
	}
	copy(g.points, points)
	copy(g.colors, colors)
	return g
}

// At returns the color of the site nearest to (x,y), with ties broken by the lowest site index.
func (g *VoronoiShader) At(x, y float64) Color {
	p := Point{x, y}
	best := 0
	d2 := g.points[0].Sub(p).Dot(g.points[0].Sub(p))
	for i, q := range g.points[1:] {
		d := q.Sub(p)
		if dd := d.Dot(d); dd < d2 {
			best, d2 = i+1, dd
		}
	}
	return g.colors[best]
}
