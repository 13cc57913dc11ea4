package shading

// Vertex is a tessellated mesh vertex with a device position and the texture coordinate it samples from.
type Vertex struct {
	Position Point
	TexCoord Point
}

// Mesh is a triangle mesh. Indices holds 3*N vertex indices for N triangles.
type Mesh struct {
	Vertices []Vertex
	Indices  []int
}

// CoonsPatch is a quadratic Coons patch. Pts holds the four corners and four edge control points in clockwise order starting at the top-left corner:
//
//	0---1---2
//	|       |
//	7       3
//	|       |
//	6---5---4
//
// so Pts[0], Pts[2], Pts[4] and Pts[6] are the corners. Tex holds the texture coordinates of the corners, in corner order.
type CoonsPatch struct {
	Pts [8]Point
	Tex [4]Point
}

// bilinear interpolates the four corner values c00 (u=0,v=0), c10 (u=1,v=0), c11 (u=1,v=1) and c01 (u=0,v=1).
func bilinear(c00, c10, c11, c01 Point, u, v float64) Point {
	a := c00.Interpolate(c10, u)
	b := c01.Interpolate(c11, u)
	return a.Interpolate(b, v)
}

// At evaluates the patch at parameters (u,v) in [0,1]x[0,1] and returns the surface position and the bilinearly interpolated texture coordinate. The surface is the Coons combination of the four quadratic boundary curves: the top-bottom lofted surface plus the left-right lofted surface minus the bilinear corner surface. When all edge control points lie at their edge midpoints the boundary curves are straight and At reduces to the bilinear interpolation of the corners.
func (patch CoonsPatch) At(u, v float64) (Point, Point) {
	top := quadraticBezierPos(patch.Pts[0], patch.Pts[1], patch.Pts[2], u)
	bottom := quadraticBezierPos(patch.Pts[6], patch.Pts[5], patch.Pts[4], u)
	left := quadraticBezierPos(patch.Pts[0], patch.Pts[7], patch.Pts[6], v)
	right := quadraticBezierPos(patch.Pts[2], patch.Pts[3], patch.Pts[4], v)

	tb := top.Interpolate(bottom, v)
	lr := left.Interpolate(right, u)
	corners := bilinear(patch.Pts[0], patch.Pts[2], patch.Pts[4], patch.Pts[6], u, v)
	pos := tb.Add(lr).Sub(corners)

	tex := bilinear(patch.Tex[0], patch.Tex[1], patch.Tex[2], patch.Tex[3], u, v)
	return pos, tex
}

// Tessellate samples the patch on a uniform (level+1)x(level+1) parameter grid and triangulates each cell into two triangles, giving 6*level*level indices. It returns nil when level is less than one.
func (patch CoonsPatch) Tessellate(level int) *Mesh {
	if level < 1 {
		return nil
	}

	n := level + 1
	mesh := &Mesh{
		Vertices: make([]Vertex, 0, n*n),
		Indices:  make([]int, 0, 6*level*level),
	}
	for j := 0; j < n; j++ {
		v := float64(j) / float64(level)
		for i := 0; i < n; i++ {
			u := float64(i) / float64(level)
			pos, tex := patch.At(u, v)
			mesh.Vertices = append(mesh.Vertices, Vertex{pos, tex})
		}
	}

	index := func(i, j int) int {
		return j*n + i
	}
	for j := 0; j < level; j++ {
		for i := 0; i < level; i++ {
			mesh.Indices = append(mesh.Indices,
				index(i, j), index(i+1, j), index(i+1, j+1),
				index(i, j), index(i+1, j+1), index(i, j+1),
			)
		}
	}
	return mesh
}
