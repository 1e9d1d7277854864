package canvas

import "math"

// cuspCosineThreshold marks a near-180-degree direction reversal where
// a join degenerates into two caps rather than a miter/bevel/round
// corner. Grounded on seehuhn-go-render/stroke.go's constant of the
// same name and value.
const cuspCosineThreshold = -0.9999

// StrokeOutline converts path+line state+transform into a fillable
// device-space polygon, spec §4.3. The caller rasterizes the result
// with NonZero (self-overlap at concave joins resolves correctly under
// nonzero winding without special-casing inner vs outer corners).
func StrokeOutline(p *Path, line LineState, ctm Matrix) []flatSubpath {
	if line.Width <= 0 {
		return nil
	}
	halfWidth := line.Width / 2

	flattened := flattenPath(p, ctm)
	var out []flatSubpath

	for _, sub := range flattened {
		pts := dedupe(sub.points)
		if len(pts) == 0 {
			continue
		}
		if len(pts) == 1 {
			out = append(out, degeneratePointOutline(pts[0], halfWidth, line.Cap)...)
			continue
		}

		segments := applyDash(pts, sub.closed, line.Dash, line.DashOffset)
		for _, seg := range segments {
			if len(seg.points) < 2 {
				if len(seg.points) == 1 {
					out = append(out, degeneratePointOutline(seg.points[0], halfWidth, line.Cap)...)
				}
				continue
			}
			out = append(out, strokeOnePolyline(seg.points, seg.closed, halfWidth, line)...)
		}
	}
	return out
}

func dedupe(pts []Point) []Point {
	var out []Point
	for _, p := range pts {
		if len(out) == 0 || distance(out[len(out)-1], p) > zeroLengthThreshold {
			out = append(out, p)
		}
	}
	return out
}

const zeroLengthThreshold = 1e-9

func distance(a, b Point) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

func degeneratePointOutline(p Point, halfWidth float64, cap LineCap) []flatSubpath {
	switch cap {
	case CapRound:
		return []flatSubpath{circlePolygon(p, halfWidth)}
	case CapSquare:
		return []flatSubpath{{points: []Point{
			{X: p.X - halfWidth, Y: p.Y - halfWidth},
			{X: p.X + halfWidth, Y: p.Y - halfWidth},
			{X: p.X + halfWidth, Y: p.Y + halfWidth},
			{X: p.X - halfWidth, Y: p.Y + halfWidth},
		}, closed: true}}
	default:
		return nil
	}
}

func circlePolygon(center Point, r float64) flatSubpath {
	const n = 32
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	return flatSubpath{points: pts, closed: true}
}

type dashSegment struct {
	points []Point
	closed bool
}

// applyDash implements spec §4.3 step 1. An empty or all-zero dash
// array leaves the polyline whole.
func applyDash(pts []Point, closed bool, dash []float64, offset float64) []dashSegment {
	pattern := normalizeDashPattern(dash)
	if len(pattern) == 0 {
		return []dashSegment{{points: pts, closed: closed}}
	}
	total := 0.0
	for _, d := range pattern {
		total += d
	}
	if total <= 0 {
		return []dashSegment{{points: pts, closed: closed}}
	}

	// walk the polyline as one contiguous arc-length parametrized path,
	// closing the loop with an extra edge back to the start if closed.
	walk := pts
	if closed {
		walk = append(append([]Point(nil), pts...), pts[0])
	}

	phase := math.Mod(offset, total)
	if phase < 0 {
		phase += total
	}

	idx := 0
	on := true
	remaining := pattern[0]
	for phase > 0 {
		if phase < remaining {
			remaining -= phase
			break
		}
		phase -= remaining
		idx = (idx + 1) % len(pattern)
		remaining = pattern[idx]
		on = !on
	}

	var segments []dashSegment
	var current []Point
	if on {
		current = []Point{walk[0]}
	}

	for i := 0; i < len(walk)-1; i++ {
		a, b := walk[i], walk[i+1]
		segLen := distance(a, b)
		consumed := 0.0
		for consumed < segLen {
			step := math.Min(remaining, segLen-consumed)
			consumed += step
			remaining -= step
			t := consumed / segLen
			pt := Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				current = append(current, pt)
			}
			if remaining <= 1e-12 {
				if on && len(current) > 0 {
					segments = append(segments, dashSegment{points: current})
				}
				on = !on
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
				if on {
					current = []Point{pt}
				} else {
					current = nil
				}
			}
		}
	}
	if on && len(current) > 1 {
		segments = append(segments, dashSegment{points: current})
	} else if on && len(current) == 1 {
		segments = append(segments, dashSegment{points: current})
	}
	return segments
}

// normalizeDashPattern doubles an odd-length dash array per spec §3
// ("if its length is odd it is conceptually doubled").
func normalizeDashPattern(dash []float64) []float64 {
	if len(dash) == 0 {
		return nil
	}
	clean := make([]float64, 0, len(dash))
	allZero := true
	for _, d := range dash {
		if d < 0 || !isFinite(d) {
			return nil
		}
		clean = append(clean, d)
		if d != 0 {
			allZero = false
		}
	}
	if allZero {
		return nil
	}
	if len(clean)%2 == 1 {
		clean = append(clean, clean...)
	}
	return clean
}

// strokeOnePolyline offsets a single (already dash-resolved) polyline
// at +/- halfWidth, applying joins at interior vertices and caps at
// open endpoints, per spec §4.3 steps 2-5.
func strokeOnePolyline(pts []Point, closed bool, halfWidth float64, line LineState) []flatSubpath {
	n := len(pts)
	tangents := make([]Point, n-1)
	for i := 0; i < n-1; i++ {
		dx, dy := pts[i+1].X-pts[i].X, pts[i+1].Y-pts[i].Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			tangents[i] = Point{X: 1, Y: 0}
			continue
		}
		tangents[i] = Point{X: dx / l, Y: dy / l}
	}

	if closed {
		outer := offsetLoop(pts, tangents, halfWidth, 1, line)
		inner := offsetLoop(pts, tangents, halfWidth, -1, line)
		reverse(inner)
		return []flatSubpath{
			{points: outer, closed: true},
			{points: inner, closed: true},
		}
	}

	var poly []Point
	poly = append(poly, offsetOpenSide(pts, tangents, halfWidth, 1, line)...)
	poly = append(poly, capPoints(pts[n-1], tangents[n-2], halfWidth, line.Cap, 1)...)
	back := offsetOpenSide(pts, tangents, halfWidth, -1, line)
	reverse(back)
	poly = append(poly, back...)
	poly = append(poly, capPoints(pts[0], Point{X: -tangents[0].X, Y: -tangents[0].Y}, halfWidth, line.Cap, 1)...)
	return []flatSubpath{{points: poly, closed: true}}
}

func reverse(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func perp(t Point, side float64) Point {
	return Point{X: -t.Y * side, Y: t.X * side}
}

// offsetOpenSide builds one side (side=+1 or -1) of an open polyline's
// outline, inserting join geometry at interior vertices.
func offsetOpenSide(pts []Point, tangents []Point, halfWidth, side float64, line LineState) []Point {
	n := len(pts)
	var out []Point
	n0 := perp(tangents[0], side)
	out = append(out, Point{X: pts[0].X + n0.X*halfWidth, Y: pts[0].Y + n0.Y*halfWidth})
	for i := 1; i < n-1; i++ {
		out = append(out, joinPoints(pts[i], tangents[i-1], tangents[i], halfWidth, side, line)...)
	}
	nLast := perp(tangents[n-2], side)
	out = append(out, Point{X: pts[n-1].X + nLast.X*halfWidth, Y: pts[n-1].Y + nLast.Y*halfWidth})
	return out
}

// offsetLoop builds one full side of a closed polyline's outline,
// including the join that wraps from the last vertex back to the first.
func offsetLoop(pts []Point, tangents []Point, halfWidth, side float64, line LineState) []Point {
	n := len(pts)
	var out []Point
	for i := 0; i < n; i++ {
		prevT := tangents[(i-1+len(tangents))%len(tangents)]
		curT := tangents[i%len(tangents)]
		out = append(out, joinPoints(pts[i], prevT, curT, halfWidth, side, line)...)
	}
	return out
}

// joinPoints implements spec §4.3 step 3: miter (with limit-based bevel
// fallback), bevel, round. The same formula is applied regardless of
// which side of the turn this is (convex or concave); on the concave
// side the produced geometry naturally tucks inward and self-overlaps,
// which NonZero winding resolves without artifacts.
func joinPoints(vertex, tPrev, tNext Point, halfWidth, side float64, line LineState) []Point {
	np := perp(tPrev, side)
	nn := perp(tNext, side)
	endPrev := Point{X: vertex.X + np.X*halfWidth, Y: vertex.Y + np.Y*halfWidth}
	startNext := Point{X: vertex.X + nn.X*halfWidth, Y: vertex.Y + nn.Y*halfWidth}

	cosTheta := tPrev.X*tNext.X + tPrev.Y*tNext.Y
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	if cosTheta < cuspCosineThreshold {
		// near-reversal: treat as two caps rather than a join.
		pts := capPoints(vertex, tPrev, halfWidth, line.Cap, side)
		pts = append(pts, capPoints(vertex, tNext, halfWidth, line.Cap, -side)...)
		return append([]Point{endPrev}, append(pts, startNext)...)
	}

	switch line.Join {
	case JoinRound:
		return append([]Point{endPrev}, arcBetween(vertex, endPrev, startNext, halfWidth)...)
	case JoinMiter:
		sinHalf := math.Sqrt(math.Max(0, (1+cosTheta)/2))
		if sinHalf < 1e-6 {
			return []Point{endPrev, startNext}
		}
		miterRatio := 1 / sinHalf
		if miterRatio > line.MiterLimit {
			return []Point{endPrev, startNext}
		}
		bx, by := np.X+nn.X, np.Y+nn.Y
		blen := math.Hypot(bx, by)
		if blen < 1e-9 {
			return []Point{endPrev, startNext}
		}
		dist := halfWidth * miterRatio
		mx := vertex.X + bx/blen*dist
		my := vertex.Y + by/blen*dist
		return []Point{endPrev, {X: mx, Y: my}, startNext}
	default: // JoinBevel
		return []Point{endPrev, startNext}
	}
}

// capPoints returns the extra outline vertices for a cap at endpoint p,
// where tangent points away from the stroked region (outward) and side
// selects which offset side is being closed off. Spec §4.3 step 4.
func capPoints(p, tangent Point, halfWidth float64, cap LineCap, side float64) []Point {
	n := perp(tangent, side)
	a := Point{X: p.X + n.X*halfWidth, Y: p.Y + n.Y*halfWidth}
	b := Point{X: p.X - n.X*halfWidth, Y: p.Y - n.Y*halfWidth}
	switch cap {
	case CapSquare:
		ext := Point{X: tangent.X * halfWidth, Y: tangent.Y * halfWidth}
		return []Point{
			{X: a.X + ext.X, Y: a.Y + ext.Y},
			{X: b.X + ext.X, Y: b.Y + ext.Y},
		}
	case CapRound:
		// split the half turn at the outward tip so each quarter arc is
		// unambiguously the shorter sweep.
		tip := Point{X: p.X + tangent.X*halfWidth, Y: p.Y + tangent.Y*halfWidth}
		return append(arcBetween(p, a, tip, halfWidth), arcBetween(p, tip, b, halfWidth)...)
	default: // CapButt
		return nil
	}
}

// arcBetween flattens a circular arc of radius r centered at c from
// point a to point b, choosing the shorter sweep, to the same tolerance
// as curve flattening.
func arcBetween(c, a, b Point, r float64) []Point {
	a0 := math.Atan2(a.Y-c.Y, a.X-c.X)
	a1 := math.Atan2(b.Y-c.Y, b.X-c.X)
	sweep := a1 - a0
	for sweep > math.Pi {
		sweep -= 2 * math.Pi
	}
	for sweep < -math.Pi {
		sweep += 2 * math.Pi
	}
	if r < 1e-9 {
		r = 1e-9
	}
	ratio := 1 - defaultFlatness/r
	ratio = math.Max(-1, math.Min(1, ratio))
	angleStep := 2 * math.Acos(ratio)
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 16
	}
	steps := int(math.Ceil(math.Abs(sweep) / angleStep))
	if steps < 1 {
		steps = 1
	}
	out := make([]Point, 0, steps)
	for i := 1; i <= steps; i++ {
		a := a0 + sweep*float64(i)/float64(steps)
		out = append(out, Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
	}
	return out
}
