package canvas

import (
	"github.com/sirupsen/logrus"
)

// Context is the public command surface of spec §6, wrapping a Surface
// with the path/state machinery Canvas2D exposes. Grounded on the
// teacher's interfaces.go Context interface, trimmed to the drawing,
// path, paint, transform and state-stack methods (text/font methods
// dropped, spec Non-goals). ContextOption and WithLogger live in
// logging.go.
type Context struct {
	surface *Surface
	path    *Path
	state   *StateStack
	log     *logrus.Logger
}

// NewContext creates a Context bound to surface, with a fresh empty
// path and a graphics-state stack at its default state.
func NewContext(surface *Surface, opts ...ContextOption) *Context {
	c := &Context{
		surface: surface,
		path:    NewPath(),
		state:   newStateStack(),
		log:     newSilentLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) gs() *GraphicsState { return c.state.Current() }

// ---- save/restore ----

func (c *Context) Save()    { c.state.Save() }
func (c *Context) Restore() { c.state.Restore() }

// ---- transform stack, spec §4.7 ----

func (c *Context) Translate(tx, ty float64) {
	g := c.gs()
	g.Transform = Translation(tx, ty).Multiply(g.Transform)
}

func (c *Context) Scale(sx, sy float64) {
	g := c.gs()
	g.Transform = Scaling(sx, sy).Multiply(g.Transform)
}

func (c *Context) Rotate(radians float64) {
	g := c.gs()
	g.Transform = Rotation(radians).Multiply(g.Transform)
}

// Transform composes [a b c d e f] onto the current transform, applied
// before it (i.e. in the caller's current user space). A non-finite
// component leaves the transform unchanged, spec §7 InvalidArgumentError.
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	m := Matrix{A: a, B: b, C: cc, D: d, E: e, F: f}
	if !m.IsFinite() {
		return
	}
	g := c.gs()
	g.Transform = m.Multiply(g.Transform)
}

func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	m := Matrix{A: a, B: b, C: cc, D: d, E: e, F: f}
	if !m.IsFinite() {
		return
	}
	c.gs().Transform = m
}

func (c *Context) ResetTransform() { c.gs().Transform = Identity() }

func (c *Context) GetTransform() Matrix { return c.gs().Transform }

// ---- path construction, delegated to the current path object ----

func (c *Context) BeginPath()                              { c.path.BeginPath() }
func (c *Context) MoveTo(x, y float64)                      { c.path.MoveTo(x, y) }
func (c *Context) LineTo(x, y float64)                      { c.path.LineTo(x, y) }
func (c *Context) QuadraticCurveTo(cx, cy, x, y float64)    { c.path.QuadraticCurveTo(cx, cy, x, y) }
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)
}
func (c *Context) Rect(x, y, w, h float64) { c.path.Rect(x, y, w, h) }
func (c *Context) ClosePath()              { c.path.ClosePath() }
func (c *Context) Arc(x, y, r, start, end float64, ccw bool) {
	c.path.Arc(x, y, r, start, end, ccw)
}
func (c *Context) ArcTo(x1, y1, x2, y2, r float64) { c.path.ArcTo(x1, y1, x2, y2, r) }
func (c *Context) Ellipse(x, y, rx, ry, rotation, start, end float64, ccw bool) {
	c.path.Ellipse(x, y, rx, ry, rotation, start, end, ccw)
}

// ---- paint & style state ----

func (c *Context) SetFillColor(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.gs().FillPaint = SolidPaint{Color: col}
	return nil
}

func (c *Context) SetStrokeColor(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.gs().StrokePaint = SolidPaint{Color: col}
	return nil
}

func (c *Context) SetFillPaint(p Paint)   { c.gs().FillPaint = p }
func (c *Context) SetStrokePaint(p Paint) { c.gs().StrokePaint = p }

func (c *Context) SetLineWidth(w float64) {
	if w <= 0 || !isFinite(w) {
		return
	}
	c.gs().Line.Width = w
}

func (c *Context) SetLineCap(cap LineCap)   { c.gs().Line.Cap = cap }
func (c *Context) SetLineJoin(join LineJoin) { c.gs().Line.Join = join }

func (c *Context) SetMiterLimit(limit float64) {
	if limit <= 0 || !isFinite(limit) {
		return
	}
	c.gs().Line.MiterLimit = limit
}

// SetLineDash installs a copy of segments as the dash pattern. A
// negative or non-finite entry leaves the dash pattern unchanged,
// matching spec §7's "invalid argument, state unchanged" rule.
func (c *Context) SetLineDash(segments []float64) {
	for _, s := range segments {
		if s < 0 || !isFinite(s) {
			return
		}
	}
	c.gs().Line.Dash = append([]float64(nil), segments...)
}

func (c *Context) LineDash() []float64 {
	return append([]float64(nil), c.gs().Line.Dash...)
}

func (c *Context) SetLineDashOffset(v float64) { c.gs().Line.DashOffset = v }

func (c *Context) SetGlobalAlpha(a float64) {
	if a < 0 || a > 1 || !isFinite(a) {
		return
	}
	c.gs().GlobalAlpha = a
}

// SetGlobalCompositeOperation maps a CSS operator name to an Operator,
// logging a warning and falling back to source-over if name is
// unrecognized (spec §7 UnsupportedOperator).
func (c *Context) SetGlobalCompositeOperation(name string) {
	op, ok := ParseOperator(name)
	if !ok {
		c.log.WithError(&UnsupportedOperator{Name: name}).Warn("unsupported composite operator")
		op = SourceOver
	}
	c.gs().CompositeOp = op
}

func (c *Context) SetShadowColor(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		return err
	}
	c.gs().Shadow.Color = col
	return nil
}

func (c *Context) SetShadowBlur(v float64) {
	if v < 0 || !isFinite(v) {
		return
	}
	c.gs().Shadow.Blur = v
}

func (c *Context) SetShadowOffsetX(v float64) { c.gs().Shadow.OffsetX = v }
func (c *Context) SetShadowOffsetY(v float64) { c.gs().Shadow.OffsetY = v }

// ---- gradients & patterns, spec §3/§4.4 ----

func (c *Context) CreateLinearGradient(x0, y0, x1, y1 float64) *LinearGradientPaint {
	return &LinearGradientPaint{P0: Point{X: x0, Y: y0}, P1: Point{X: x1, Y: y1}}
}

func (c *Context) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradientPaint {
	return &RadialGradientPaint{C0: Point{X: x0, Y: y0}, R0: r0, C1: Point{X: x1, Y: y1}, R1: r1}
}

func (c *Context) CreateConicGradient(startAngle, x, y float64) *ConicGradientPaint {
	return &ConicGradientPaint{Center: Point{X: x, Y: y}, StartAngle: startAngle}
}

func (c *Context) CreatePattern(img *ImageData, repeat RepeatMode) *PatternPaint {
	return &PatternPaint{Image: img, Repeat: repeat, Transform: Identity()}
}

// ---- region rasterization helpers ----

func (c *Context) surfaceRect() Rect {
	return Rect{X0: 0, Y0: 0, X1: c.surface.Width, Y1: c.surface.Height}
}

// effectiveRegion widens shapeRegion to the clip's full bound for
// whole-surface operators, spec §4.5/§9's clip-bounded realization
// (DESIGN.md Open Question 1).
func (c *Context) effectiveRegion(shapeRegion Rect) Rect {
	g := c.gs()
	if g.CompositeOp.wholeSurface() {
		return g.Clip.Bounds(c.surface.Width, c.surface.Height).Intersect(c.surfaceRect())
	}
	return shapeRegion.Intersect(c.surfaceRect())
}

func (c *Context) paintCoverage(cov *Coverage, shapeRegion Rect, paint Paint) {
	g := c.gs()
	region := c.effectiveRegion(shapeRegion)
	if region.Empty() {
		return
	}
	if g.Shadow.Color.A > 0 {
		renderShadow(c.surface, cov, shapeRegion.Intersect(c.surfaceRect()), g.Clip, g.Shadow, g.GlobalAlpha)
	}
	compositeInto(c.surface, region, cov, g.Clip, paint, g.Transform, g.GlobalAlpha, g.CompositeOp)
}

// ---- painters, spec §4 ----

func (c *Context) Fill(rule FillRule) {
	g := c.gs()
	subpaths := flattenPath(c.path, g.Transform)
	region, _ := pathBounds(subpaths)
	cov := Rasterize(subpaths, rule, region.Intersect(c.surfaceRect()))
	c.paintCoverage(cov, region, g.FillPaint)
}

func (c *Context) Stroke() {
	g := c.gs()
	outline := StrokeOutline(c.path, g.Line, g.Transform)
	region, _ := pathBounds(outline)
	cov := Rasterize(outline, NonZero, region.Intersect(c.surfaceRect()))
	c.paintCoverage(cov, region, g.StrokePaint)
}

func (c *Context) Clip(rule FillRule) {
	g := c.gs()
	subpaths := flattenPath(c.path, g.Transform)
	bbox, _ := pathBounds(subpaths)
	region := bbox.Intersect(c.surfaceRect())
	cov := Rasterize(subpaths, rule, region)
	g.Clip = g.Clip.Intersect(c.surface.Width, c.surface.Height, cov)
}

func (c *Context) rectPath(x, y, w, h float64) *Path {
	p := NewPath()
	p.Rect(x, y, w, h)
	return p
}

func (c *Context) FillRect(x, y, w, h float64) {
	g := c.gs()
	subpaths := flattenPath(c.rectPath(x, y, w, h), g.Transform)
	region, _ := pathBounds(subpaths)
	cov := Rasterize(subpaths, NonZero, region.Intersect(c.surfaceRect()))
	c.paintCoverage(cov, region, g.FillPaint)
}

func (c *Context) StrokeRect(x, y, w, h float64) {
	g := c.gs()
	outline := StrokeOutline(c.rectPath(x, y, w, h), g.Line, g.Transform)
	region, _ := pathBounds(outline)
	cov := Rasterize(outline, NonZero, region.Intersect(c.surfaceRect()))
	c.paintCoverage(cov, region, g.StrokePaint)
}

// ClearRect resets the covered pixels to transparent black, still
// shaped by the current transform and clip (spec §4).
func (c *Context) ClearRect(x, y, w, h float64) {
	g := c.gs()
	subpaths := flattenPath(c.rectPath(x, y, w, h), g.Transform)
	bbox, _ := pathBounds(subpaths)
	region := bbox.Intersect(c.surfaceRect())
	cov := Rasterize(subpaths, NonZero, region)
	compositeInto(c.surface, region, cov, g.Clip, SolidPaint{Color: RGBA{A: 255}}, g.Transform, 1, DestinationOut)
}

// DrawImage composites img into the dest rectangle [dx,dy,dw,dh] in
// user space, nearest-neighbor sampled, spec §6's drawImage. The
// host-image-source adapter (file/URL loading) is out of scope; callers
// supply an already-decoded ImageData.
func (c *Context) DrawImage(img *ImageData, dx, dy, dw, dh float64) {
	g := c.gs()
	if img == nil || img.Width == 0 || img.Height == 0 || dw == 0 || dh == 0 {
		return
	}
	sx := dw / float64(img.Width)
	sy := dh / float64(img.Height)
	// maps image-pixel space (0..Width, 0..Height) into user space;
	// EvaluatePaint composes this with the draw-time CTM itself.
	patternSpace := Scaling(sx, sy).Multiply(Translation(dx, dy))
	paint := &PatternPaint{Image: img, Repeat: RepeatNone, Transform: patternSpace}
	subpaths := flattenPath(c.rectPath(dx, dy, dw, dh), g.Transform)
	region, _ := pathBounds(subpaths)
	cov := Rasterize(subpaths, NonZero, region.Intersect(c.surfaceRect()))
	c.paintCoverage(cov, region, paint)
}

// ---- image data, spec §6 ----

func (c *Context) GetImageData(x, y, w, h int) *ImageData { return c.surface.GetImageData(x, y, w, h) }
func (c *Context) PutImageData(img *ImageData, x, y int)  { c.surface.PutImageData(img, x, y) }
func (c *Context) CreateImageData(w, h int) *ImageData    { return NewImageData(w, h) }

// ---- hit testing, spec §4.8 ----

func (c *Context) IsPointInPath(x, y float64, rule FillRule) bool {
	return isPointInPath(c.path, c.gs().Transform, x, y, rule)
}

func (c *Context) IsPointInStroke(x, y float64) bool {
	return isPointInStroke(c.path, c.gs().Line, c.gs().Transform, x, y)
}
