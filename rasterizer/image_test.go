package rasterizer

import (
	"image"
	"image/color"
	"testing"

	"github.com/tdewolff/shading"
	"github.com/tdewolff/test"
)

func TestImageShader(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})

	s := NewImageShader(img)

	// texel centers
	test.T(t, s.At(0.5, 0.5), shading.Red)
	test.T(t, s.At(1.5, 0.5), shading.Green)
	test.T(t, s.At(0.5, 1.5), shading.Blue)
	test.T(t, s.At(1.5, 1.5), shading.White)

	// bilinear between texels
	c := s.At(1.0, 0.5)
	test.Float(t, c.R, 0.5)
	test.Float(t, c.G, 0.5)
	test.Float(t, c.B, 0.0)
	test.Float(t, c.A, 1.0)
	c = s.At(1.0, 1.0)
	test.Float(t, c.R, 0.5)
	test.Float(t, c.G, 0.5)
	test.Float(t, c.B, 0.5)
	test.Float(t, c.A, 1.0)

	// clamped to the image edges
	test.T(t, s.At(-100.0, -100.0), shading.Red)
	test.T(t, s.At(100.0, 100.0), shading.White)
	test.T(t, s.At(0.5, 100.0), shading.Blue)
}

func TestImageShaderOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 12, 11))
	img.SetRGBA(10, 10, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(11, 10, color.RGBA{0, 0, 255, 255})

	// sampling is relative to the image origin
	s := NewImageShader(img)
	test.T(t, s.At(0.5, 0.5), shading.Red)
	test.T(t, s.At(1.5, 0.5), shading.Blue)
}

func TestImageShaderInvalid(t *testing.T) {
	test.T(t, NewImageShader(nil) == nil, true)
	test.T(t, NewImageShader(image.NewRGBA(image.Rect(0, 0, 0, 5))) == nil, true)
}

func TestImageShaderPaint(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	src.SetRGBA(1, 0, color.RGBA{0, 0, 255, 255})

	dst := image.NewRGBA(image.Rect(0, 0, 4, 2))
	r := New(dst)

	// stretch the 2x1 bitmap over a 4x2 fill
	p := &shading.Path{}
	p.Rect(0, 0, 4, 2)
	s := shading.Transform(NewImageShader(src), shading.Identity.Scale(2, 2))
	r.RenderPath(p, shading.Style{Fill: shading.Paint{Shader: s}}, shading.Identity)

	test.T(t, dst.RGBAAt(0, 0), color.RGBA{255, 0, 0, 255})
	test.T(t, dst.RGBAAt(3, 1), color.RGBA{0, 0, 255, 255})
}
