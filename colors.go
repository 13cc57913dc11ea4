package shading

import (
	"image/color"
	"math"
)

// Color is an unpremultiplied RGBA color with channels in [0,1]. Channel values may transiently fall outside [0,1] after a color matrix transform and are clamped before they reach a rasterizer.
type Color struct {
	R, G, B, A float64
}

var (
	Transparent = Color{0.0, 0.0, 0.0, 0.0}
	Black       = Color{0.0, 0.0, 0.0, 1.0}
	White       = Color{1.0, 1.0, 1.0, 1.0}
	Red         = Color{1.0, 0.0, 0.0, 1.0}
	Green       = Color{0.0, 1.0, 0.0, 1.0}
	Blue        = Color{0.0, 0.0, 1.0, 1.0}
	Yellow      = Color{1.0, 1.0, 0.0, 1.0}
	Magenta     = Color{1.0, 0.0, 1.0, 1.0}
	Cyan        = Color{0.0, 1.0, 1.0, 1.0}
)

// Clamp limits all channels to [0,1].
func (c Color) Clamp() Color {
	return Color{
		math.Min(math.Max(c.R, 0.0), 1.0),
		math.Min(math.Max(c.G, 0.0), 1.0),
		math.Min(math.Max(c.B, 0.0), 1.0),
		math.Min(math.Max(c.A, 0.0), 1.0),
	}
}

// Lerp interpolates each channel linearly by t, ie. t=0 returns C and t=1 returns D.
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		(1.0-t)*c.R + t*d.R,
		(1.0-t)*c.G + t*d.G,
		(1.0-t)*c.B + t*d.B,
		(1.0-t)*c.A + t*d.A,
	}
}

// ToRGBA returns the color as alpha-premultiplied 8-bit RGBA.
func (c Color) ToRGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		uint8(c.R*c.A*255.0 + 0.5),
		uint8(c.G*c.A*255.0 + 0.5),
		uint8(c.B*c.A*255.0 + 0.5),
		uint8(c.A*255.0 + 0.5),
	}
}

// FromColor converts a premultiplied color.Color to an unpremultiplied Color.
func FromColor(col color.Color) Color {
	r, g, b, a := col.RGBA()
	if a == 0 {
		return Transparent
	}
	return Color{
		float64(r) / float64(a),
		float64(g) / float64(a),
		float64(b) / float64(a),
		float64(a) / 0xffff,
	}
}

////////////////////////////////////////////////////////////////

// Stop is a color and offset for gradients.
type Stop struct {
	Offset float64
	Color  Color
}

// Stops are the colors and offsets of a gradient, sorted by offset.
type Stops []Stop

// Add adds a new color stop to a gradient, keeping sort order and replacing a stop at an equal offset.
func (stops *Stops) Add(t float64, color Color) {
	stop := Stop{math.Min(math.Max(t, 0.0), 1.0), color}
	for i := range *stops {
		if Equal((*stops)[i].Offset, stop.Offset) {
			(*stops)[i] = stop
			return
		} else if stop.Offset < (*stops)[i].Offset {
			*stops = append((*stops)[:i], append(Stops{stop}, (*stops)[i:]...)...)
			return
		}
	}
	*stops = append(*stops, stop)
}

// At returns the color at position t, clamping positions outside the first and last offset.
func (stops Stops) At(t float64) Color {
	if len(stops) == 0 {
		return Transparent
	} else if t < stops[0].Offset || len(stops) == 1 {
		return stops[0].Color
	} else if stops[len(stops)-1].Offset <= t {
		return stops[len(stops)-1].Color
	}
	for i, stop := range stops[1:] {
		if t < stop.Offset {
			t = (t - stops[i].Offset) / (stop.Offset - stops[i].Offset)
			return stops[i].Color.Lerp(stop.Color, t)
		}
	}
	return stops[len(stops)-1].Color
}
