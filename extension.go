// Package shading provides 2D shaders that evaluate a color at any point in the plane, geometry helpers to stroke polygons and tessellate paths, and quadratic Coons patch meshes. Shaders are immutable and safe for concurrent use.
package shading

// Paint is either a solid color or a shader. When Shader is set it takes precedence over Color.
type Paint struct {
	Color  Color
	Shader Shader
}

// IsShader returns true when the paint samples a shader instead of a solid color.
func (paint Paint) IsShader() bool {
	return paint.Shader != nil
}

// Style describes how rendered geometry is painted.
type Style struct {
	Fill Paint
}

// Renderer is a target that can draw filled paths and textured triangle meshes, both transformed by an affine matrix.
type Renderer interface {
	Size() (float64, float64)
	RenderPath(path *Path, style Style, m Matrix)
	RenderMesh(mesh *Mesh, style Style, m Matrix)
}

// Extension is the set of optional drawing capabilities. Constructors return nil for unsupported operations or invalid arguments, StrokePolygon returns an empty path and DrawCoonsPatch draws nothing when unsupported.
type Extension interface {
	SweepGradient(center Point, startAngle float64, colors []Color) Shader
	LinearGradient(p0, p1 Point, colors []Color, pos []float64) Shader
	ColorMatrixShader(matrix ColorMatrix, s Shader) Shader
	VoronoiShader(points []Point, colors []Color) Shader
	StrokePolygon(points []Point, width float64, closed bool) *Path
	DrawCoonsPatch(r Renderer, pts [8]Point, tex [4]Point, level int, paint Paint)
}

// Unsupported implements Extension with every capability disabled. Embed it to implement Extension partially.
type Unsupported struct{}

func (Unsupported) SweepGradient(center Point, startAngle float64, colors []Color) Shader {
	return nil
}

func (Unsupported) LinearGradient(p0, p1 Point, colors []Color, pos []float64) Shader {
	return nil
}

func (Unsupported) ColorMatrixShader(matrix ColorMatrix, s Shader) Shader {
	return nil
}

func (Unsupported) VoronoiShader(points []Point, colors []Color) Shader {
	return nil
}

func (Unsupported) StrokePolygon(points []Point, width float64, closed bool) *Path {
	return &Path{}
}

func (Unsupported) DrawCoonsPatch(r Renderer, pts [8]Point, tex [4]Point, level int, paint Paint) {
}

type extension struct{}

// NewExtension returns an Extension with all capabilities supported.
func NewExtension() Extension {
	return extension{}
}

func (extension) SweepGradient(center Point, startAngle float64, colors []Color) Shader {
	if g := NewSweepGradient(center, startAngle, colors); g != nil {
		return g
	}
	return nil
}

func (extension) LinearGradient(p0, p1 Point, colors []Color, pos []float64) Shader {
	if g := NewLinearGradient(p0, p1, colors, pos); g != nil {
		return g
	}
	return nil
}

func (extension) ColorMatrixShader(matrix ColorMatrix, s Shader) Shader {
	if g := NewColorMatrixShader(matrix, s); g != nil {
		return g
	}
	return nil
}

func (extension) VoronoiShader(points []Point, colors []Color) Shader {
	if g := NewVoronoiShader(points, colors); g != nil {
		return g
	}
	return nil
}

func (extension) StrokePolygon(points []Point, width float64, closed bool) *Path {
	return StrokePolygon(points, width, closed)
}

func (extension) DrawCoonsPatch(r Renderer, pts [8]Point, tex [4]Point, level int, paint Paint) {
	DrawCoonsPatch(r, pts, tex, level, paint)
}

// DrawCoonsPatch tessellates the quadratic Coons patch given by its eight boundary points and four corner texture coordinates into a level x level grid and renders the mesh with the given paint. It draws nothing when r is nil or level is less than one.
func DrawCoonsPatch(r Renderer, pts [8]Point, tex [4]Point, level int, paint Paint) {
	if r == nil {
		return
	}
	patch := CoonsPatch{Pts: pts, Tex: tex}
	mesh := patch.Tessellate(level)
	if mesh == nil {
		return
	}
	r.RenderMesh(mesh, Style{Fill: paint}, Identity)
}
