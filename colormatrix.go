package shading

// ColorMatrix is a 4x5 affine transform over unpremultiplied colors:
//
//	new_color = [0 4  8 12 16] [r]
//	            [1 5  9 13 17] [g]
//	            [2 6 10 14 18] [b]
//	            [3 7 11 15 19] [a]
//	                           [1]
//
// eg. new.r = m[0]*r + m[4]*g + m[8]*b + m[12]*a + m[16].
type ColorMatrix [20]float64

// ColorMatrixIdentity returns the matrix that maps every channel to itself with zero offset.
func ColorMatrixIdentity() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
		0, 0, 0, 0,
	}
}

// Apply transforms c by the matrix and clamps the result to [0,1].
func (m ColorMatrix) Apply(c Color) Color {
	return Color{
		m[0]*c.R + m[4]*c.G + m[8]*c.B + m[12]*c.A + m[16],
		m[1]*c.R + m[5]*c.G + m[9]*c.B + m[13]*c.A + m[17],
		m[2]*c.R + m[6]*c.G + m[10]*c.B + m[14]*c.A + m[18],
		m[3]*c.R + m[7]*c.G + m[11]*c.B + m[15]*c.A + m[19],
	}.Clamp()
}

// ColorMatrixShader proxies another shader and transforms its output by a color matrix. The query point is forwarded unchanged.
type ColorMatrixShader struct {
	Matrix ColorMatrix

	shader Shader
}

// NewColorMatrixShader returns a new color matrix shader wrapping s, or nil when s is nil.
func NewColorMatrixShader(m ColorMatrix, s Shader) *ColorMatrixShader {
	if s == nil {
		return nil
	}
	return &ColorMatrixShader{m, s}
}

// At returns the color at position (x,y).
func (g *ColorMatrixShader) At(x, y float64) Color {
	return g.Matrix.Apply(g.shader.At(x, y))
}
