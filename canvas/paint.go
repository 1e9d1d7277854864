package canvas

import "math"

// GradientStop is one (offset, color) pair, spec §3.
type GradientStop struct {
	Offset float64
	Color  RGBA
}

// Paint is the tagged-variant union of spec §3's Paint entity: Solid,
// LinearGradient, RadialGradient, ConicGradient, Pattern. Dispatch on
// the concrete type happens in EvaluatePaint, which the compositor calls
// once per pixel; there is no per-draw-call dispatch.
type Paint interface{ isPaint() }

// SolidPaint is a flat straight-RGBA color.
type SolidPaint struct{ Color RGBA }

func (SolidPaint) isPaint() {}

// LinearGradientPaint interpolates along the line p0->p1, both captured
// in user space at creation time (spec §3).
type LinearGradientPaint struct {
	P0, P1 Point
	Stops  []GradientStop
}

func (*LinearGradientPaint) isPaint() {}

// RadialGradientPaint interpolates between two circles (c0,r0) and
// (c1,r1), captured in user space at creation time.
type RadialGradientPaint struct {
	C0         Point
	R0         float64
	C1         Point
	R1         float64
	Stops      []GradientStop
}

func (*RadialGradientPaint) isPaint() {}

// ConicGradientPaint sweeps stops cyclically around center starting at
// StartAngle, captured in user space at creation time.
type ConicGradientPaint struct {
	Center     Point
	StartAngle float64
	Stops      []GradientStop
}

func (*ConicGradientPaint) isPaint() {}

// PatternPaint samples Image, repeating per Repeat, through an optional
// pattern-space Transform composed with the current transform at draw
// time (spec §4.4 Pattern).
type PatternPaint struct {
	Image     *ImageData
	Repeat    RepeatMode
	Transform Matrix
}

func (*PatternPaint) isPaint() {}

// AddColorStop appends a (offset, color) stop, the Go analogue of
// CanvasGradient.addColorStop.
func (g *LinearGradientPaint) AddColorStop(offset float64, color RGBA) {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: color})
}

func (g *RadialGradientPaint) AddColorStop(offset float64, color RGBA) {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: color})
}

func (g *ConicGradientPaint) AddColorStop(offset float64, color RGBA) {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: color})
}

func sortStops(stops []GradientStop) []GradientStop {
	out := append([]GradientStop(nil), stops...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Offset < out[j-1].Offset; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// interpolateStops implements spec §4.4's stop interpolation: clamp t
// to the first/last stop outside the range, otherwise interpolate
// componentwise between the bracketing stops.
func interpolateStops(stops []GradientStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	for i := 0; i < len(stops)-1; i++ {
		a, b := stops[i], stops[i+1]
		if t >= a.Offset && t <= b.Offset {
			span := b.Offset - a.Offset
			if span <= 0 {
				return a.Color
			}
			f := (t - a.Offset) / span
			return RGBA{
				R: lerpByte(a.Color.R, b.Color.R, f),
				G: lerpByte(a.Color.G, b.Color.G, f),
				B: lerpByte(a.Color.B, b.Color.B, f),
				A: lerpByte(a.Color.A, b.Color.A, f),
			}
		}
	}
	return last.Color
}

func lerpByte(a, b uint8, f float64) uint8 {
	return clampByte(float64(a) + (float64(b)-float64(a))*f)
}

// EvaluatePaint returns the straight-RGBA color of paint at device
// point (x, y), under the transform active at draw time (ctm). Spec
// §4.4.
func EvaluatePaint(paint Paint, x, y float64, ctm Matrix) RGBA {
	switch p := paint.(type) {
	case SolidPaint:
		return p.Color
	case *LinearGradientPaint:
		return evaluateLinear(p, x, y, ctm)
	case *RadialGradientPaint:
		return evaluateRadial(p, x, y, ctm)
	case *ConicGradientPaint:
		return evaluateConic(p, x, y, ctm)
	case *PatternPaint:
		return evaluatePattern(p, x, y, ctm)
	default:
		return Transparent
	}
}

func evaluateLinear(p *LinearGradientPaint, x, y float64, ctm Matrix) RGBA {
	x0, y0 := ctm.Transform(p.P0.X, p.P0.Y)
	x1, y1 := ctm.Transform(p.P1.X, p.P1.Y)
	dx, dy := x1-x0, y1-y0
	denom := dx*dx + dy*dy
	stops := sortStops(p.Stops)
	if denom == 0 {
		return interpolateStops(stops, 0)
	}
	t := ((x-x0)*dx + (y-y0)*dy) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return interpolateStops(stops, t)
}

// evaluateRadial solves the standard two-circle gradient formulation:
// find the largest t in [0,1] such that (x,y) lies on the circle
// interpolated between (c0,r0) and (c1,r1); transparent black if none.
func evaluateRadial(p *RadialGradientPaint, x, y float64, ctm Matrix) RGBA {
	x0, y0 := ctm.Transform(p.C0.X, p.C0.Y)
	x1, y1 := ctm.Transform(p.C1.X, p.C1.Y)
	sx1, sy1 := ctm.TransformDistance(1, 0)
	sx2, sy2 := ctm.TransformDistance(0, 1)
	scale := math.Sqrt(math.Abs(sx1*sy2 - sy1*sx2))
	r0 := p.R0 * scale
	r1 := p.R1 * scale

	cdx, cdy := x1-x0, y1-y0
	dr := r1 - r0

	a := cdx*cdx + cdy*cdy - dr*dr
	pdx, pdy := x-x0, y-y0
	b := 2 * (pdx*cdx + pdy*cdy + r0*dr)
	c := pdx*pdx + pdy*pdy - r0*r0

	stops := sortStops(p.Stops)

	var bestT float64
	found := false

	tryT := func(t float64) {
		if t < 0 || t > 1 {
			return
		}
		if r0+t*dr < 0 {
			return
		}
		if !found || t > bestT {
			bestT = t
			found = true
		}
	}

	if math.Abs(a) < 1e-12 {
		if b != 0 {
			tryT(-c / b)
		}
	} else {
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			tryT((-b + sq) / (2 * a))
			tryT((-b - sq) / (2 * a))
		}
	}

	if !found {
		return Transparent
	}
	return interpolateStops(stops, bestT)
}

func evaluateConic(p *ConicGradientPaint, x, y float64, ctm Matrix) RGBA {
	cx, cy := ctm.Transform(p.Center.X, p.Center.Y)
	angle := math.Atan2(y-cy, x-cx)
	t := math.Mod(angle-p.StartAngle, 2*math.Pi)
	if t < 0 {
		t += 2 * math.Pi
	}
	t /= 2 * math.Pi
	return interpolateStops(sortStops(p.Stops), t)
}

func evaluatePattern(p *PatternPaint, x, y float64, ctm Matrix) RGBA {
	if p.Image == nil || p.Image.Width == 0 || p.Image.Height == 0 {
		return Transparent
	}
	combined := p.Transform.Multiply(ctm)
	inv, ok := combined.Invert()
	if !ok {
		return Transparent
	}
	ux, uy := inv.Transform(x, y)

	ix := int(math.Floor(ux))
	iy := int(math.Floor(uy))

	switch p.Repeat {
	case RepeatBoth:
		ix = wrapMod(ix, p.Image.Width)
		iy = wrapMod(iy, p.Image.Height)
	case RepeatX:
		if iy < 0 || iy >= p.Image.Height {
			return Transparent
		}
		ix = wrapMod(ix, p.Image.Width)
	case RepeatY:
		if ix < 0 || ix >= p.Image.Width {
			return Transparent
		}
		iy = wrapMod(iy, p.Image.Height)
	case RepeatNone:
		if ix < 0 || ix >= p.Image.Width || iy < 0 || iy >= p.Image.Height {
			return Transparent
		}
	}
	return p.Image.at(ix, iy)
}

func wrapMod(v, n int) int {
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}
