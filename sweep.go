package shading

import "math"

// SweepGradient is an angular gradient around a center point. The colors are distributed evenly over one full counter clockwise turn starting at the start angle: colors[0] lies at startAngle and colors[count-1] at startAngle+2PI. Both ends meet at the seam; supply equal first and last colors for a seamless wrap.
type SweepGradient struct {
	Center     Point
	StartAngle float64 // radians

	colors []Color
}

// NewSweepGradient returns a new sweep gradient. It returns nil when no colors are given. A single color yields a constant color at every point.
func NewSweepGradient(center Point, startAngle float64, colors []Color) *SweepGradient {
	if len(colors) == 0 {
		return nil
	}
	g := &SweepGradient{
		Center:     center,
		StartAngle: startAngle,
		colors:     make([]Color, len(colors)),
	}
	copy(g.colors, colors)
	return g
}

// At returns the color at position (x,y).
func (g *SweepGradient) At(x, y float64) Color {
	if len(g.colors) == 1 {
		return g.colors[0]
	}

	theta := math.Atan2(y-g.Center.Y, x-g.Center.X)
	t := angleNorm(theta-g.StartAngle) / (2.0 * math.Pi) // [0,1)

	pos := t * float64(len(g.colors)-1)
	i := int(pos)
	if len(g.colors)-1 <= i {
		// t is strictly below 1 but pos may round up to the last color
		return g.colors[len(g.colors)-1]
	}
	return g.colors[i].Lerp(g.colors[i+1], pos-float64(i))
}
