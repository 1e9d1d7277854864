package canvas

import "math"

// Matrix is the 2x3 affine transform from spec data model §3:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// Field names follow the teacher's transform.go rather than the spec's
// lowercase a..f, since Go exports capitalized struct fields.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

func Translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

func Rotation(radians float64) Matrix {
	s, c := math.Sin(radians), math.Cos(radians)
	return Matrix{A: c, B: s, C: -s, D: c}
}

// Multiply returns m*other, i.e. applying the result transforms a point
// by m first, then by other. Context.Transform therefore computes
// other.Multiply(ctm), so the new matrix acts in user space before the
// existing CTM, as Canvas2D's ctx.transform(other) does.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.C,
		B: m.A*other.B + m.B*other.D,
		C: m.C*other.A + m.D*other.C,
		D: m.C*other.B + m.D*other.D,
		E: m.E*other.A + m.F*other.C + other.E,
		F: m.E*other.B + m.F*other.D + other.F,
	}
}

// Transform applies the matrix to a point.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// TransformDistance applies the matrix's linear part only, ignoring
// translation; used for vectors (normals, tangents, radii).
func (m Matrix) TransformDistance(dx, dy float64) (float64, float64) {
	return m.A*dx + m.C*dy, m.B*dx + m.D*dy
}

// Determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix. The second return is false for a
// singular (non-invertible) matrix, e.g. after scale(0,0).
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return Identity(), false
	}
	invDet := 1 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	e := -(m.E*a + m.F*c)
	f := -(m.E*b + m.F*d)
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}, true
}

func (m Matrix) Translate(tx, ty float64) Matrix {
	return Translation(tx, ty).Multiply(m)
}

func (m Matrix) Scale(sx, sy float64) Matrix {
	return Scaling(sx, sy).Multiply(m)
}

func (m Matrix) Rotate(radians float64) Matrix {
	return Rotation(radians).Multiply(m)
}

// IsFinite reports whether every component is a finite number; used to
// silently ignore non-finite arguments per spec §7 InvalidArgumentError.
func (m Matrix) IsFinite() bool {
	return isFinite(m.A) && isFinite(m.B) && isFinite(m.C) &&
		isFinite(m.D) && isFinite(m.E) && isFinite(m.F)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
