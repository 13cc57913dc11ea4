package rasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/tdewolff/shading"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Renderer draws paths and meshes to a rasterized image. Coordinates are in pixels with the origin at the top-left. Shaders are sampled at pixel centers and composited source-over, scaled by the anti-aliasing coverage.
type Renderer struct {
	img draw.Image
}

// New creates a renderer that draws to a rasterized image.
func New(img draw.Image) *Renderer {
	return &Renderer{
		img: img,
	}
}

// Size returns the width and height in pixels.
func (r *Renderer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X), float64(size.Y)
}

// RenderPath fills the path transformed by m using the non-zero winding rule.
func (r *Renderer) RenderPath(path *shading.Path, style shading.Style, m shading.Matrix) {
	paint := style.Fill
	if path.Empty() || !paint.IsShader() && paint.Color.A == 0.0 {
		return
	}

	size := r.img.Bounds().Size()
	ras := vector.NewRasterizer(size.X, size.Y)
	path.ToRasterizer(ras, m)

	if !paint.IsShader() {
		ras.Draw(r.img, r.img.Bounds(), image.NewUniform(paint.Color.ToRGBA()), image.Point{})
		return
	}

	// the vector rasterizer only draws uniform sources, so render the
	// coverage to a mask and composite the shader ourselves
	mask := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))
	ras.DrawOp = draw.Src
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	shader := shading.Transform(paint.Shader, m)
	r.composite(mask, 0, 0, size.X, size.Y, func(x, y float64) shading.Color {
		return shader.At(x, y)
	})
}

// RenderMesh draws the triangles of the mesh with positions transformed by m. A shader paint is sampled in texture space by mapping each device position through the triangle's affine position-to-texture transform.
func (r *Renderer) RenderMesh(mesh *shading.Mesh, style shading.Style, m shading.Matrix) {
	paint := style.Fill
	if mesh == nil || !paint.IsShader() && paint.Color.A == 0.0 {
		return
	}

	size := r.img.Bounds().Size()
	ras := vector.NewRasterizer(size.X, size.Y)
	mask := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))

	for t := 0; t+2 < len(mesh.Indices); t += 3 {
		v0 := mesh.Vertices[mesh.Indices[t]]
		v1 := mesh.Vertices[mesh.Indices[t+1]]
		v2 := mesh.Vertices[mesh.Indices[t+2]]
		p0, p1, p2 := m.Dot(v0.Position), m.Dot(v1.Position), m.Dot(v2.Position)

		// affine map of the unit triangle onto the device triangle
		mpos := shading.Matrix{
			{p1.X - p0.X, p2.X - p0.X, p0.X},
			{p1.Y - p0.Y, p2.Y - p0.Y, p0.Y},
		}
		if shading.Equal(mpos.Det(), 0.0) {
			continue // degenerate triangle
		}

		ras.Reset(size.X, size.Y)
		ras.DrawOp = draw.Src
		ras.MoveTo(float32(p0.X), float32(p0.Y))
		ras.LineTo(float32(p1.X), float32(p1.Y))
		ras.LineTo(float32(p2.X), float32(p2.Y))
		ras.ClosePath()
		ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

		at := func(x, y float64) shading.Color {
			return paint.Color
		}
		if paint.IsShader() {
			mtex := shading.Matrix{
				{v1.TexCoord.X - v0.TexCoord.X, v2.TexCoord.X - v0.TexCoord.X, v0.TexCoord.X},
				{v1.TexCoord.Y - v0.TexCoord.Y, v2.TexCoord.Y - v0.TexCoord.Y, v0.TexCoord.Y},
			}
			texmap := mtex.Mul(mpos.Inv())
			at = func(x, y float64) shading.Color {
				q := texmap.Dot(shading.Point{X: x, Y: y})
				return paint.Shader.At(q.X, q.Y)
			}
		}

		x0, y0, x1, y1 := triangleBBox(p0, p1, p2, size.X, size.Y)
		r.composite(mask, x0, y0, x1, y1, at)
	}
}

// triangleBBox returns the integer bounding box of the triangle clipped to [0,w]x[0,h].
func triangleBBox(p0, p1, p2 shading.Point, w, h int) (int, int, int, int) {
	x0 := int(math.Floor(math.Min(p0.X, math.Min(p1.X, p2.X))))
	y0 := int(math.Floor(math.Min(p0.Y, math.Min(p1.Y, p2.Y))))
	x1 := int(math.Ceil(math.Max(p0.X, math.Max(p1.X, p2.X))))
	y1 := int(math.Ceil(math.Max(p0.Y, math.Max(p1.Y, p2.Y))))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if w < x1 {
		x1 = w
	}
	if h < y1 {
		y1 = h
	}
	return x0, y0, x1, y1
}

// composite draws the colors of at over the image wherever the mask has coverage, sampling at pixel centers.
func (r *Renderer) composite(mask *image.Alpha, x0, y0, x1, y1 int, at func(x, y float64) shading.Color) {
	min := r.img.Bounds().Min
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cov := mask.AlphaAt(x, y).A
			if cov == 0 {
				continue
			}
			src := at(float64(x)+0.5, float64(y)+0.5).ToRGBA()
			blendOver(r.img, min.X+x, min.Y+y, src, cov)
		}
	}
}

// blendOver composites the premultiplied src scaled by coverage over the destination pixel.
func blendOver(dst draw.Image, x, y int, src color.RGBA, cov uint8) {
	ma := uint32(cov)
	sr := (uint32(src.R)*ma + 127) / 255
	sg := (uint32(src.G)*ma + 127) / 255
	sb := (uint32(src.B)*ma + 127) / 255
	sa := (uint32(src.A)*ma + 127) / 255

	dr, dg, db, da := dst.At(x, y).RGBA() // 16-bit premultiplied
	q := 255 - sa
	dst.Set(x, y, color.RGBA{
		uint8(sr + ((dr>>8)*q+127)/255),
		uint8(sg + ((dg>>8)*q+127)/255),
		uint8(sb + ((db>>8)*q+127)/255),
		uint8(sa + ((da>>8)*q+127)/255),
	})
}
