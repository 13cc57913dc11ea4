package rasterizer

import (
	"image"

	"github.com/tdewolff/shading"
	"golang.org/x/image/draw"
)

// ImageShader samples colors from a bitmap. Sample points are taken at pixel centers, interpolated bilinearly between texels and clamped to the image edges. The image is copied at construction.
type ImageShader struct {
	img *image.RGBA
	w   int
	h   int
}

// NewImageShader returns a new image shader, or nil when img is nil or empty.
func NewImageShader(img image.Image) *ImageShader {
	if img == nil {
		return nil
	}
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return nil
	}
	rgba := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return &ImageShader{
		img: rgba,
		w:   size.X,
		h:   size.Y,
	}
}

// At returns the color at position (x,y).
func (s *ImageShader) At(x, y float64) shading.Color {
	// texel centers are at half-integer coordinates
	x -= 0.5
	y -= 0.5
	x = clamp(x, 0.0, float64(s.w-1))
	y = clamp(y, 0.0, float64(s.h-1))

	x0, y0 := int(x), int(y)
	x1, y1 := x0+1, y0+1
	if s.w <= x1 {
		x1 = s.w - 1
	}
	if s.h <= y1 {
		y1 = s.h - 1
	}
	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := shading.FromColor(s.img.RGBAAt(x0, y0))
	c10 := shading.FromColor(s.img.RGBAAt(x1, y0))
	c01 := shading.FromColor(s.img.RGBAAt(x0, y1))
	c11 := shading.FromColor(s.img.RGBAAt(x1, y1))
	return c00.Lerp(c10, fx).Lerp(c01.Lerp(c11, fx), fy)
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	} else if hi < f {
		return hi
	}
	return f
}
