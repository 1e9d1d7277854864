package canvas

// porterDuffCoefficients returns (Fa, Fb) as functions of alphaS/alphaD
// evaluated at blend time, spec §4.5's table. alphaS and alphaD are in
// [0,1] (straight alpha / 255).
func porterDuffCoefficients(op Operator, alphaS, alphaD float64) (fa, fb float64) {
	switch op {
	case SourceOver:
		return 1, 1 - alphaS
	case DestinationOver:
		return 1 - alphaD, 1
	case SourceIn:
		return alphaD, 0
	case DestinationIn:
		return 0, alphaS
	case SourceOut:
		return 1 - alphaD, 0
	case DestinationOut:
		return 0, 1 - alphaS
	case SourceAtop:
		return alphaD, 1 - alphaS
	case DestinationAtop:
		return 1 - alphaD, alphaS
	case XOR:
		return 1 - alphaD, 1 - alphaS
	case Copy:
		return 1, 0
	case Lighter:
		return 1, 1
	default:
		return 1, 1 - alphaS
	}
}

// blend computes out = OP(dst, src) in premultiplied space, spec §4.5.
// src is already scaled by coverage*globalAlpha by the caller
// (compositeInto below); dst is the unscaled destination, and the clip
// is applied by the caller after blending.
func blend(op Operator, src, dst premultiplied) premultiplied {
	alphaS := src.A / 255
	alphaD := dst.A / 255
	fa, fb := porterDuffCoefficients(op, alphaS, alphaD)
	out := premultiplied{
		R: src.R*fa + dst.R*fb,
		G: src.G*fa + dst.G*fb,
		B: src.B*fa + dst.B*fb,
		A: src.A*fa + dst.A*fb,
	}
	if out.A > 255 {
		out.A = 255
	}
	if out.R > out.A {
		out.R = out.A
	}
	if out.G > out.A {
		out.G = out.A
	}
	if out.B > out.A {
		out.B = out.A
	}
	return out
}

// compositeInto writes the result of compositing paint (evaluated per
// pixel), scaled by coverage * globalAlpha, over dst at every pixel in
// region, using op, then blends that result back toward the untouched
// dst by the clip value. region is only intersected with the surface
// here; for whole-surface operators the caller passes the clip bounds
// rather than just the shape's own coverage bbox (spec §4.5's
// "clip-bounded realization", DESIGN.md Open Question 1).
func compositeInto(surface *Surface, region Rect, coverage *Coverage, clip *ClipMask, paint Paint, ctm Matrix, globalAlpha float64, op Operator) {
	region = region.Intersect(Rect{X0: 0, Y0: 0, X1: surface.Width, Y1: surface.Height})
	if region.Empty() {
		return
	}
	for y := region.Y0; y < region.Y1; y++ {
		for x := region.X0; x < region.X1; x++ {
			clipV := clip.At(x, y)
			if clipV <= 0 {
				continue
			}
			cov := float64(coverage.At(x, y))
			total := cov * globalAlpha
			if total <= 0 && !op.wholeSurface() {
				continue
			}
			var src premultiplied
			if total > 0 {
				color := EvaluatePaint(paint, float64(x)+0.5, float64(y)+0.5, ctm)
				src = color.premultiply()
				src.R *= total
				src.G *= total
				src.B *= total
				src.A *= total
			}
			dst := surface.straightAt(x, y).premultiply()
			blended := blend(op, src, dst)
			// outside the clip's own shape but inside its bbox, clipV<1
			// must preserve dst rather than let a whole-surface op like
			// copy erase it, spec §4.6/§8.4.
			out := lerpPremultiplied(dst, blended, clipV)
			surface.setStraight(x, y, out.unpremultiply())
		}
	}
}

// lerpPremultiplied blends from a toward b by t in [0,1], premultiplied.
func lerpPremultiplied(a, b premultiplied, t float64) premultiplied {
	return premultiplied{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
