package shading

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/vector"
)

type PathCmd int

const (
	MoveToCmd PathCmd = iota
	LineToCmd
	QuadToCmd
	ArcToCmd
	CloseCmd
)

// cmdLen returns the number of coordinate values a command occupies in Path.d.
func cmdLen(cmd PathCmd) int {
	switch cmd {
	case MoveToCmd, LineToCmd:
		return 2
	case QuadToCmd:
		return 4
	case ArcToCmd:
		return 7
	}
	return 0
}

// Path is a sequence of move, line, quadratic Bézier, elliptic arc and close commands forming zero or more sub-contours.
type Path struct {
	cmds []PathCmd
	d    []float64
	x0   float64
	y0   float64
}

// Empty returns true when the path has no commands.
func (p *Path) Empty() bool {
	return len(p.cmds) == 0
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	q := &Path{
		cmds: make([]PathCmd, len(p.cmds)),
		d:    make([]float64, len(p.d)),
		x0:   p.x0,
		y0:   p.y0,
	}
	copy(q.cmds, p.cmds)
	copy(q.d, p.d)
	return q
}

// Append appends path q to p.
func (p *Path) Append(q *Path) {
	p.cmds = append(p.cmds, q.cmds...)
	p.d = append(p.d, q.d...)
	p.x0, p.y0 = q.x0, q.y0
}

// Pos returns the current position, ie. the end point of the last command.
func (p *Path) Pos() (float64, float64) {
	if len(p.cmds) > 0 && p.cmds[len(p.cmds)-1] == CloseCmd {
		return p.x0, p.y0
	}
	if len(p.d) > 1 {
		return p.d[len(p.d)-2], p.d[len(p.d)-1]
	}
	return 0.0, 0.0
}

func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
	p.x0, p.y0 = x, y
}

func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	p.cmds = append(p.cmds, QuadToCmd)
	p.d = append(p.d, cpx, cpy, x, y)
}

// ArcTo adds an elliptic arc with radii rx and ry, rotated by rot degrees with respect to the coordinate system, to (x,y). When large is set the longer of the two possible arcs is taken, and when sweep is set the arc runs along a positive (counter clockwise) angle.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	flarge := 0.0
	if large {
		flarge = 1.0
	}
	fsweep := 0.0
	if sweep {
		fsweep = 1.0
	}
	p.cmds = append(p.cmds, ArcToCmd)
	p.d = append(p.d, rx, ry, rot, flarge, fsweep, x, y)
}

func (p *Path) Close() {
	p.cmds = append(p.cmds, CloseCmd)
}

////////////////////////////////////////////////////////////////

// Rect adds a closed counter clockwise rectangle.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Circle adds a closed counter clockwise circle of radius r centered at (cx,cy).
func (p *Path) Circle(cx, cy, r float64) {
	p.MoveTo(cx+r, cy)
	p.ArcTo(r, r, 0.0, false, true, cx-r, cy)
	p.ArcTo(r, r, 0.0, false, true, cx+r, cy)
	p.Close()
}

////////////////////////////////////////////////////////////////

// quadraticBezierPos evaluates the quadratic Bézier through p0, p1, p2 at parameter t.
func quadraticBezierPos(p0, p1, p2 Point, t float64) Point {
	u := 1.0 - t
	return p0.Mul(u * u).Add(p1.Mul(2.0 * u * t)).Add(p2.Mul(t * t))
}

// arcToCenter converts an endpoint arc parametrization to a center parametrization, returning the center and the start and end angles in radians. The angle direction follows the sweep flag.
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, 0.0, 0.0
	}

	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// reduce rounding errors
	radiiCheck := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if radiiCheck > 1.0 {
		rx *= math.Sqrt(radiiCheck)
		ry *= math.Sqrt(radiiCheck)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(ux / math.Sqrt(ux*ux+uy*uy))
	if uy < 0.0 {
		theta = -theta
	}

	delta := math.Acos((ux*vx + uy*vy) / math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, theta, theta + delta
}

// ellipsePos returns the point on the ellipse at angle theta.
func ellipsePos(cx, cy, rx, ry, phi, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	return Point{
		cx + rx*costheta*cosphi - ry*sintheta*sinphi,
		cy + rx*costheta*sinphi + ry*sintheta*cosphi,
	}
}

// flattenArc approximates the arc from start to end by quadratic Béziers, each fitted through three points on the ellipse.
func flattenArc(start Point, rx, ry, rot float64, large, sweep bool, end Point, quadTo func(cp, to Point)) {
	if start.Equals(end) {
		return
	}
	phi := rot * math.Pi / 180.0
	cx, cy, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)

	const n = 16
	for i := 0; i < n; i++ {
		a1 := theta0 + (theta1-theta0)*float64(i)/float64(n)
		a2 := theta0 + (theta1-theta0)*float64(i+1)/float64(n)
		p0 := ellipsePos(cx, cy, rx, ry, phi, a1)
		pm := ellipsePos(cx, cy, rx, ry, phi, (a1+a2)/2.0)
		p2 := ellipsePos(cx, cy, rx, ry, phi, a2)
		cp := pm.Mul(2.0).Sub(p0.Add(p2).Div(2.0))
		quadTo(cp, p2)
	}
}

////////////////////////////////////////////////////////////////

// Bounds returns the exact bounding box of the path.
func (p *Path) Bounds() Rect {
	if p.Empty() {
		return Rect{}
	}

	var r Rect
	first := true
	include := func(q Point) {
		if first {
			r = Rect{q.X, q.Y, 0.0, 0.0}
			first = false
		} else {
			r = r.AddPoint(q)
		}
	}

	var start, end Point
	i := 0
	for _, cmd := range p.cmds {
		prev := end
		switch cmd {
		case MoveToCmd:
			end = Point{p.d[i], p.d[i+1]}
			start = end
			include(end)
		case LineToCmd:
			end = Point{p.d[i], p.d[i+1]}
			include(end)
		case QuadToCmd:
			cp := Point{p.d[i], p.d[i+1]}
			end = Point{p.d[i+2], p.d[i+3]}
			include(end)
			// interior extremes where the derivative along an axis is zero
			if denom := prev.X - 2.0*cp.X + end.X; !Equal(denom, 0.0) {
				if t := (prev.X - cp.X) / denom; 0.0 < t && t < 1.0 {
					include(quadraticBezierPos(prev, cp, end, t))
				}
			}
			if denom := prev.Y - 2.0*cp.Y + end.Y; !Equal(denom, 0.0) {
				if t := (prev.Y - cp.Y) / denom; 0.0 < t && t < 1.0 {
					include(quadraticBezierPos(prev, cp, end, t))
				}
			}
		case ArcToCmd:
			rx, ry, rot := p.d[i], p.d[i+1], p.d[i+2]
			large, sweep := p.d[i+3] == 1.0, p.d[i+4] == 1.0
			end = Point{p.d[i+5], p.d[i+6]}
			include(end)
			if !prev.Equals(end) {
				phi := rot * math.Pi / 180.0
				cx, cy, theta0, theta1 := arcToCenter(prev.X, prev.Y, rx, ry, phi, large, sweep, end.X, end.Y)
				sinphi, cosphi := math.Sincos(phi)
				thetaX := math.Atan2(-ry*sinphi, rx*cosphi)
				thetaY := math.Atan2(ry*cosphi, rx*sinphi)
				for _, theta := range []float64{thetaX, thetaX + math.Pi, thetaY, thetaY + math.Pi} {
					if angleBetween(theta, theta0, theta1) {
						include(ellipsePos(cx, cy, rx, ry, phi, theta))
					}
				}
			}
		case CloseCmd:
			end = start
		}
		i += cmdLen(cmd)
	}
	return r
}

// Polygons flattens the path and returns the points of each sub-contour. The closing point equal to the first point is not repeated.
func (p *Path) Polygons() [][]Point {
	polys := [][]Point{}
	var cur []Point
	flush := func() {
		if 1 < len(cur) && cur[len(cur)-1].Equals(cur[0]) {
			cur = cur[:len(cur)-1]
		}
		if 0 < len(cur) {
			polys = append(polys, cur)
		}
		cur = nil
	}

	const quadLines = 4
	var start, end Point
	i := 0
	for _, cmd := range p.cmds {
		prev := end
		switch cmd {
		case MoveToCmd:
			flush()
			end = Point{p.d[i], p.d[i+1]}
			start = end
			cur = append(cur, end)
		case LineToCmd:
			end = Point{p.d[i], p.d[i+1]}
			cur = append(cur, end)
		case QuadToCmd:
			cp := Point{p.d[i], p.d[i+1]}
			end = Point{p.d[i+2], p.d[i+3]}
			for k := 1; k <= quadLines; k++ {
				cur = append(cur, quadraticBezierPos(prev, cp, end, float64(k)/quadLines))
			}
		case ArcToCmd:
			rx, ry, rot := p.d[i], p.d[i+1], p.d[i+2]
			large, sweep := p.d[i+3] == 1.0, p.d[i+4] == 1.0
			end = Point{p.d[i+5], p.d[i+6]}
			qstart := prev
			flattenArc(prev, rx, ry, rot, large, sweep, end, func(cp, to Point) {
				for k := 1; k <= quadLines; k++ {
					cur = append(cur, quadraticBezierPos(qstart, cp, to, float64(k)/quadLines))
				}
				qstart = to
			})
		case CloseCmd:
			end = start
		}
		i += cmdLen(cmd)
	}
	flush()
	return polys
}

// ToRasterizer adds the path, transformed by m, to the rasterizer. Sub-contours are closed implicitly.
func (p *Path) ToRasterizer(ras *vector.Rasterizer, m Matrix) {
	moveTo := func(q Point) {
		q = m.Dot(q)
		ras.MoveTo(float32(q.X), float32(q.Y))
	}
	lineTo := func(q Point) {
		q = m.Dot(q)
		ras.LineTo(float32(q.X), float32(q.Y))
	}
	quadTo := func(cp, q Point) {
		cp, q = m.Dot(cp), m.Dot(q)
		ras.QuadTo(float32(cp.X), float32(cp.Y), float32(q.X), float32(q.Y))
	}

	open := false
	var start, end Point
	i := 0
	for _, cmd := range p.cmds {
		prev := end
		switch cmd {
		case MoveToCmd:
			if open {
				ras.ClosePath()
			}
			end = Point{p.d[i], p.d[i+1]}
			start = end
			moveTo(end)
			open = true
		case LineToCmd:
			end = Point{p.d[i], p.d[i+1]}
			lineTo(end)
		case QuadToCmd:
			cp := Point{p.d[i], p.d[i+1]}
			end = Point{p.d[i+2], p.d[i+3]}
			quadTo(cp, end)
		case ArcToCmd:
			rx, ry, rot := p.d[i], p.d[i+1], p.d[i+2]
			large, sweep := p.d[i+3] == 1.0, p.d[i+4] == 1.0
			end = Point{p.d[i+5], p.d[i+6]}
			flattenArc(prev, rx, ry, rot, large, sweep, end, quadTo)
		case CloseCmd:
			if open {
				ras.ClosePath()
			}
			open = false
			end = start
		}
		i += cmdLen(cmd)
	}
	if open {
		ras.ClosePath()
	}
}

// String returns the path as an SVG path description.
func (p *Path) String() string {
	var sb strings.Builder
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			fmt.Fprintf(&sb, "M%g %g", p.d[i], p.d[i+1])
		case LineToCmd:
			fmt.Fprintf(&sb, "L%g %g", p.d[i], p.d[i+1])
		case QuadToCmd:
			fmt.Fprintf(&sb, "Q%g %g %g %g", p.d[i], p.d[i+1], p.d[i+2], p.d[i+3])
		case ArcToCmd:
			fmt.Fprintf(&sb, "A%g %g %g %d %d %g %g", p.d[i], p.d[i+1], p.d[i+2], int(p.d[i+3]), int(p.d[i+4]), p.d[i+5], p.d[i+6])
		case CloseCmd:
			sb.WriteByte('z')
		}
		i += cmdLen(cmd)
	}
	return sb.String()
}
