package canvas

import "math"

// segment is one unflattened path-construction command. Curve
// primitives live here, in user space; they never appear in a
// flattened Subpath (spec §3 Subpath invariant) — flattening happens
// in flatten.go at consumption time, against the transform active then.
type segment interface{ isSegment() }

type moveToSeg struct{ X, Y float64 }
type lineToSeg struct{ X, Y float64 }
type quadToSeg struct{ CX, CY, X, Y float64 }
type curveToSeg struct{ C1X, C1Y, C2X, C2Y, X, Y float64 }
type arcSeg struct {
	CX, CY, R, A0, A1 float64
	CCW               bool
}
type ellipseSeg struct {
	CX, CY, RX, RY, Rot, A0, A1 float64
	CCW                         bool
}

func (moveToSeg) isSegment()  {}
func (lineToSeg) isSegment()  {}
func (quadToSeg) isSegment()  {}
func (curveToSeg) isSegment() {}
func (arcSeg) isSegment()     {}
func (ellipseSeg) isSegment() {}

type pathSubpath struct {
	segments []segment
	closed   bool
}

// Path is the builder-side path model, spec §3: an ordered list of
// subpaths plus a current point. Mirrors the teacher's path.go shape
// (subpaths + current pointer) directly.
type Path struct {
	subpaths        []*pathSubpath
	current         *pathSubpath
	currentX        float64
	currentY        float64
	startX          float64
	startY          float64
	hasCurrentPoint bool
}

// NewPath returns an empty path, as beginPath() does on a Context.
func NewPath() *Path {
	return &Path{}
}

// Clone deep-copies the path. Spec §3: "A path passed as an external
// object is copied before consumption; the call never mutates it."
func (p *Path) Clone() *Path {
	np := &Path{
		currentX:        p.currentX,
		currentY:        p.currentY,
		startX:          p.startX,
		startY:          p.startY,
		hasCurrentPoint: p.hasCurrentPoint,
	}
	for _, sp := range p.subpaths {
		nsp := &pathSubpath{segments: append([]segment(nil), sp.segments...), closed: sp.closed}
		np.subpaths = append(np.subpaths, nsp)
		if sp == p.current {
			np.current = nsp
		}
	}
	return np
}

// BeginPath resets the path to empty, as Context.BeginPath does.
func (p *Path) BeginPath() {
	p.subpaths = nil
	p.current = nil
	p.hasCurrentPoint = false
}

func (p *Path) newSubpath(x, y float64) {
	p.current = &pathSubpath{segments: []segment{moveToSeg{X: x, Y: y}}}
	p.subpaths = append(p.subpaths, p.current)
	p.currentX, p.currentY = x, y
	p.startX, p.startY = x, y
	p.hasCurrentPoint = true
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	p.newSubpath(x, y)
}

// LineTo appends a straight segment. An implicit moveTo is inserted if
// there is no current point, matching Canvas2D.
func (p *Path) LineTo(x, y float64) {
	if !isFinite(x) || !isFinite(y) {
		return
	}
	if !p.hasCurrentPoint {
		p.newSubpath(x, y)
		return
	}
	p.current.segments = append(p.current.segments, lineToSeg{X: x, Y: y})
	p.currentX, p.currentY = x, y
}

// QuadraticCurveTo appends a quadratic Bezier segment.
func (p *Path) QuadraticCurveTo(cx, cy, x, y float64) {
	if !isFinite(cx) || !isFinite(cy) || !isFinite(x) || !isFinite(y) {
		return
	}
	if !p.hasCurrentPoint {
		p.newSubpath(cx, cy)
	}
	p.current.segments = append(p.current.segments, quadToSeg{CX: cx, CY: cy, X: x, Y: y})
	p.currentX, p.currentY = x, y
}

// BezierCurveTo appends a cubic Bezier segment.
func (p *Path) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !isFinite(c1x) || !isFinite(c1y) || !isFinite(c2x) || !isFinite(c2y) || !isFinite(x) || !isFinite(y) {
		return
	}
	if !p.hasCurrentPoint {
		p.newSubpath(c1x, c1y)
	}
	p.current.segments = append(p.current.segments, curveToSeg{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
	p.currentX, p.currentY = x, y
}

// Rect appends a closed rectangular subpath, starting a new subpath.
func (p *Path) Rect(x, y, w, h float64) {
	if !isFinite(x) || !isFinite(y) || !isFinite(w) || !isFinite(h) {
		return
	}
	p.MoveTo(x, y)
	p.current.segments = append(p.current.segments,
		lineToSeg{X: x + w, Y: y},
		lineToSeg{X: x + w, Y: y + h},
		lineToSeg{X: x, Y: y + h},
		lineToSeg{X: x, Y: y},
	)
	p.current.closed = true
	p.currentX, p.currentY = x, y
}

// ClosePath closes the current subpath and starts a new one at its
// start point, spec §4.1.
func (p *Path) ClosePath() {
	if p.current == nil {
		return
	}
	p.current.closed = true
	x, y := p.startX, p.startY
	p.newSubpath(x, y)
}

// Arc appends a circular arc, spec §4.1. counterclockwise controls sweep
// direction; a full 2*pi sweep is preserved rather than collapsed.
func (p *Path) Arc(cx, cy, r, a0, a1 float64, counterclockwise bool) {
	if !isFinite(cx) || !isFinite(cy) || !isFinite(r) || !isFinite(a0) || !isFinite(a1) || r < 0 {
		return
	}
	p.appendArcLike(cx, cy, r, r, 0, a0, a1, counterclockwise)
}

// Ellipse appends an elliptical arc, spec §4.1.
func (p *Path) Ellipse(cx, cy, rx, ry, rotation, a0, a1 float64, counterclockwise bool) {
	if !isFinite(cx) || !isFinite(cy) || !isFinite(rx) || !isFinite(ry) || !isFinite(rotation) ||
		!isFinite(a0) || !isFinite(a1) || rx < 0 || ry < 0 {
		return
	}
	p.appendArcLike(cx, cy, rx, ry, rotation, a0, a1, counterclockwise)
}

func (p *Path) appendArcLike(cx, cy, rx, ry, rot, a0, a1 float64, ccw bool) {
	startX := cx + rx*math.Cos(a0)*math.Cos(rot)-ry*math.Sin(a0)*math.Sin(rot)
	startY := cy + rx*math.Cos(a0)*math.Sin(rot)+ry*math.Sin(a0)*math.Cos(rot)
	if !p.hasCurrentPoint {
		p.newSubpath(startX, startY)
	} else {
		p.current.segments = append(p.current.segments, lineToSeg{X: startX, Y: startY})
	}
	seg := ellipseSeg{CX: cx, CY: cy, RX: rx, RY: ry, Rot: rot, A0: a0, A1: a1, CCW: ccw}
	p.current.segments = append(p.current.segments, seg)
	ex, ey := ellipseEndpoint(cx, cy, rx, ry, rot, a0, a1, ccw)
	p.currentX, p.currentY = ex, ey
}

// ArcTo appends the tangent-circle arc construction of spec §4.1:
// degenerates to a lineTo when r==0 or the three points are collinear;
// otherwise a lineTo to the first tangent point followed by an arc to
// the second tangent point, clamping tangent points to segment
// endpoints when r exceeds the feasible radius.
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	if !isFinite(x1) || !isFinite(y1) || !isFinite(x2) || !isFinite(y2) || !isFinite(r) || r < 0 {
		return
	}
	if !p.hasCurrentPoint {
		p.newSubpath(x1, y1)
		return
	}
	x0, y0 := p.currentX, p.currentY

	dx1, dy1 := x0-x1, y0-y1
	dx2, dy2 := x2-x1, y2-y1
	len1 := math.Hypot(dx1, dy1)
	len2 := math.Hypot(dx2, dy2)

	cross := dx1*dy2 - dy1*dx2
	if r == 0 || len1 == 0 || len2 == 0 || math.Abs(cross) < 1e-12 {
		p.LineTo(x1, y1)
		return
	}

	ux1, uy1 := dx1/len1, dy1/len1
	ux2, uy2 := dx2/len2, dy2/len2

	// half-angle between the two incoming directions at the corner.
	cosTheta := ux1*ux2 + uy1*uy2
	cosTheta = math.Max(-1, math.Min(1, cosTheta))
	theta := math.Acos(cosTheta)
	tanHalf := math.Tan(theta / 2)
	if tanHalf == 0 {
		p.LineTo(x1, y1)
		return
	}
	dist := r / tanHalf
	if dist > len1 {
		dist = len1
	}
	if dist > len2 {
		dist = len2
	}
	// a clamped tangent distance shrinks the circle so it still touches
	// both legs at the clamped tangent points.
	r = dist * tanHalf

	t1x, t1y := x1+ux1*dist, y1+uy1*dist
	t2x, t2y := x1+ux2*dist, y1+uy2*dist

	// signed direction decides the arc's sweep direction.
	sign := dx1*dy2 - dy1*dx2
	ccw := sign > 0

	// center lies at distance r from the first tangent point,
	// perpendicular to the first leg, on the side the path turns toward.
	nx1, ny1 := uy1, -ux1
	if ccw {
		nx1, ny1 = -uy1, ux1
	}
	cx, cy := t1x+nx1*r, t1y+ny1*r

	a0 := math.Atan2(t1y-cy, t1x-cx)
	a1 := math.Atan2(t2y-cy, t2x-cx)

	p.LineTo(t1x, t1y)
	p.appendArcLike(cx, cy, r, r, 0, a0, a1, ccw)
}

// IsEmpty reports whether the path has no subpaths.
func (p *Path) IsEmpty() bool { return len(p.subpaths) == 0 }

func ellipseEndpoint(cx, cy, rx, ry, rot, a0, a1 float64, ccw bool) (float64, float64) {
	_ = a0
	_ = ccw
	cr, sr := math.Cos(rot), math.Sin(rot)
	x := rx * math.Cos(a1)
	y := ry * math.Sin(a1)
	return cx + x*cr - y*sr, cy + x*sr + y*cr
}
