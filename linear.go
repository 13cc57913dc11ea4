package shading

import "math"

// LinearGradient is a linear gradient between the given start and end points with colors positioned along the segment by explicit offsets in [0,1]. Tiling is clamped: points projecting before the start take the first color and points projecting past the end take the last color.
type LinearGradient struct {
	Start, End Point
	Stops

	d  Point
	d2 float64
}

// NewLinearGradient returns a new linear gradient with colors[i] positioned at pos[i] along p0..p1, ie. at (1-pos[i])*p0 + pos[i]*p1. Offsets are expected to be non-decreasing with pos[0]=0 and pos[count-1]=1; out-of-range or decreasing offsets are clamped rather than rejected. Repeated offsets are kept and form a hard color transition: points at or past the offset take the later stop. It returns nil when colors and pos differ in length or are empty. When p0 equals p1 every point evaluates to the first color.
func NewLinearGradient(p0, p1 Point, colors []Color, pos []float64) *LinearGradient {
	if len(colors) == 0 || len(colors) != len(pos) {
		return nil
	}
	stops := make(Stops, 0, len(colors))
	offset := 0.0
	for i := range colors {
		offset = math.Max(offset, math.Min(math.Max(pos[i], 0.0), 1.0))
		stops = append(stops, Stop{offset, colors[i]})
	}
	d := p1.Sub(p0)
	return &LinearGradient{
		Start: p0,
		End:   p1,
		Stops: stops,

		d:  d,
		d2: d.Dot(d),
	}
}

// At returns the color at position (x,y).
func (g *LinearGradient) At(x, y float64) Color {
	if g.d2 < Epsilon*Epsilon {
		// degenerate axis, ie. a segment shorter than Epsilon
		return g.Stops[0].Color
	}
	t := Point{x, y}.Sub(g.Start).Dot(g.d) / g.d2
	return g.Stops.At(t)
}
