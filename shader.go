package shading

// Shader evaluates a color at a 2D point. A shader is immutable once constructed: it owns copies of every slice passed to its constructor and may be queried concurrently from multiple goroutines without synchronization. Queries never mutate the shader.
type Shader interface {
	At(x, y float64) Color
}

// ConstantShader is a shader that returns the same color everywhere.
type ConstantShader struct {
	Color Color
}

// Constant returns a shader that evaluates to c at every point.
func Constant(c Color) *ConstantShader {
	return &ConstantShader{c}
}

// At returns the color at position (x,y).
func (s *ConstantShader) At(x, y float64) Color {
	return s.Color
}

// Transform returns a shader whose geometry is mapped by view, ie. a query point is mapped through the inverse of view before evaluating s. It returns s itself for the identity view, and nil when s is nil.
func Transform(s Shader, view Matrix) Shader {
	if s == nil || view == Identity {
		return s
	}
	return &transformShader{s, view.Inv()}
}

type transformShader struct {
	shader Shader
	inv    Matrix
}

func (s *transformShader) At(x, y float64) Color {
	p := s.inv.Dot(Point{x, y})
	return s.shader.At(p.X, p.Y)
}
