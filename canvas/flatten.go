package canvas

import "math"

// defaultFlatness is the maximum chord-to-curve error tolerated, in
// device pixels, per spec §3/§4.1 ("adaptive tolerance <= 0.25 device
// pixel"). Grounded on seehuhn-go-render/raster.go's defaultFlatness.
const defaultFlatness = 0.25

// flatSubpath is a Subpath per spec §3: an ordered list of device-space
// points (length >= 1) plus a closed flag. No curve primitives survive
// into this representation.
type flatSubpath struct {
	points []Point
	closed bool
}

// flattenPath walks the unflattened builder Path and produces device
// space polylines under the given transform, ready for the rasterizer
// or the stroke expander. Grounded on seehuhn-go-render/raster.go's
// flattenQuadratic/flattenCubic (adaptive subdivision, CTM-aware
// tolerance) and stroke.go's addArc (device-radius-aware angle step).
func flattenPath(p *Path, ctm Matrix) []flatSubpath {
	out := make([]flatSubpath, 0, len(p.subpaths))
	for _, sp := range p.subpaths {
		out = append(out, flattenSubpath(sp, ctm))
	}
	return out
}

func flattenSubpath(sp *pathSubpath, ctm Matrix) flatSubpath {
	var pts []Point
	var curX, curY float64
	haveCur := false

	emit := func(x, y float64) {
		dx, dy := ctm.Transform(x, y)
		pts = append(pts, Point{X: dx, Y: dy})
		curX, curY = x, y
		haveCur = true
	}

	for _, s := range sp.segments {
		switch seg := s.(type) {
		case moveToSeg:
			emit(seg.X, seg.Y)
		case lineToSeg:
			emit(seg.X, seg.Y)
		case quadToSeg:
			if !haveCur {
				emit(seg.CX, seg.CY)
			}
			flattenQuadratic(curX, curY, seg.CX, seg.CY, seg.X, seg.Y, ctm, &pts)
			curX, curY, haveCur = seg.X, seg.Y, true
		case curveToSeg:
			if !haveCur {
				emit(seg.C1X, seg.C1Y)
			}
			flattenCubic(curX, curY, seg.C1X, seg.C1Y, seg.C2X, seg.C2Y, seg.X, seg.Y, ctm, &pts)
			curX, curY, haveCur = seg.X, seg.Y, true
		case ellipseSeg:
			flattenEllipseArc(seg, ctm, &pts)
			ex, ey := ellipseEndpoint(seg.CX, seg.CY, seg.RX, seg.RY, seg.Rot, seg.A0, seg.A1, seg.CCW)
			curX, curY, haveCur = ex, ey, true
		case arcSeg:
			es := ellipseSeg{CX: seg.CX, CY: seg.CY, RX: seg.R, RY: seg.R, A0: seg.A0, A1: seg.A1, CCW: seg.CCW}
			flattenEllipseArc(es, ctm, &pts)
			ex, ey := ellipseEndpoint(seg.CX, seg.CY, seg.R, seg.R, 0, seg.A0, seg.A1, seg.CCW)
			curX, curY, haveCur = ex, ey, true
		}
	}
	return flatSubpath{points: pts, closed: sp.closed}
}

// flattenQuadratic subdivides a quadratic Bezier adaptively. Error
// estimate is the magnitude of the control-point deviation vector
// e = (P0 - 2P1 + P2)/4, transformed through the CTM's linear part only
// (translation-invariant tolerance check), subdivided into
// n = ceil(sqrt(errDev/flatness)) equal steps.
func flattenQuadratic(x0, y0, cx, cy, x1, y1 float64, ctm Matrix, out *[]Point) {
	ex, ey := ctm.TransformDistance(x0-2*cx+x1, y0-2*cy+y1)
	errDev := math.Hypot(ex, ey) / 4
	n := 1
	if errDev > defaultFlatness {
		n = int(math.Ceil(math.Sqrt(errDev / defaultFlatness)))
	}
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		x := mt*mt*x0 + 2*mt*t*cx + t*t*x1
		y := mt*mt*y0 + 2*mt*t*cy + t*t*y1
		dx, dy := ctm.Transform(x, y)
		*out = append(*out, Point{X: dx, Y: dy})
	}
}

// flattenCubic subdivides a cubic Bezier via Wang's formula:
// d1 = P0-2P1+P2, d2 = P1-2P2+P3, mDev = max(|d1|,|d2|),
// n = ceil(sqrt(3*mDev/(4*flatness))).
func flattenCubic(x0, y0, c1x, c1y, c2x, c2y, x1, y1 float64, ctm Matrix, out *[]Point) {
	d1x, d1y := ctm.TransformDistance(x0-2*c1x+c2x, y0-2*c1y+c2y)
	d2x, d2y := ctm.TransformDistance(c1x-2*c2x+x1, c1y-2*c2y+y1)
	mDev := math.Max(math.Hypot(d1x, d1y), math.Hypot(d2x, d2y))
	n := 1
	if mDev > 0 {
		n = int(math.Ceil(math.Sqrt(3 * mDev / (4 * defaultFlatness))))
	}
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		x := mt*mt*mt*x0 + 3*mt*mt*t*c1x + 3*mt*t*t*c2x + t*t*t*x1
		y := mt*mt*mt*y0 + 3*mt*mt*t*c1y + 3*mt*t*t*c2y + t*t*t*y1
		dx, dy := ctm.Transform(x, y)
		*out = append(*out, Point{X: dx, Y: dy})
	}
}

// flattenEllipseArc emits points along the arc at an angle step chosen
// so that chord-to-arc error stays <= flatness at the device-space
// scaled radius, per spec §4.1.
func flattenEllipseArc(seg ellipseSeg, ctm Matrix, out *[]Point) {
	sweep := normalizeArcSweep(seg.A0, seg.A1, seg.CCW)

	// Device-space radius estimate for angle-step sizing: the larger of
	// the two semi-axes scaled by the transform's linear part.
	rx1, ry1 := ctm.TransformDistance(seg.RX, 0)
	rx2, ry2 := ctm.TransformDistance(0, seg.RY)
	devRadius := math.Max(math.Hypot(rx1, ry1), math.Hypot(rx2, ry2))
	if devRadius < 1e-9 {
		devRadius = 1e-9
	}

	ratio := 1 - defaultFlatness/devRadius
	ratio = math.Max(-1, math.Min(1, ratio))
	angleStep := 2 * math.Acos(ratio)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 32
	}

	steps := int(math.Ceil(math.Abs(sweep) / angleStep))
	if steps < 1 {
		steps = 1
	}
	if steps > 4096 {
		steps = 4096
	}

	dir := 1.0
	if seg.CCW {
		dir = -1.0
	}
	cr, sr := math.Cos(seg.Rot), math.Sin(seg.Rot)
	for i := 1; i <= steps; i++ {
		a := seg.A0 + dir*sweep*float64(i)/float64(steps)
		ex := seg.RX * math.Cos(a)
		ey := seg.RY * math.Sin(a)
		x := seg.CX + ex*cr - ey*sr
		y := seg.CY + ex*sr + ey*cr
		dx, dy := ctm.Transform(x, y)
		*out = append(*out, Point{X: dx, Y: dy})
	}
}

// normalizeArcSweep implements spec §4.1's angle-range normalization:
// for ccw=false the sweep is min(a1-a0 mod 2pi, 2pi); for ccw=true the
// sweep is computed in the opposite direction. A full 2pi sweep (a1-a0
// a nonzero multiple of 2pi) is preserved, never collapsed to 0; a0==a1
// gives a zero sweep.
func normalizeArcSweep(a0, a1 float64, ccw bool) float64 {
	twoPi := 2 * math.Pi
	var diff float64
	if !ccw {
		diff = math.Mod(a1-a0, twoPi)
	} else {
		diff = math.Mod(a0-a1, twoPi)
	}
	if diff < 0 {
		diff += twoPi
	}
	if diff == 0 && a0 != a1 {
		diff = twoPi
	}
	return diff
}
