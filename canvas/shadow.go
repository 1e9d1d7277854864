package canvas

import "math"

// shadowBuffer is a scratch alpha-only raster, offset in device pixels
// from the shape it was built from. Grounded on surface.go's pattern of
// allocating a throwaway pixel buffer on demand rather than keeping a
// long-lived scratch surface around.
type shadowBuffer struct {
	bounds Rect
	data   []float32
}

func newShadowBuffer(bounds Rect) *shadowBuffer {
	if bounds.Empty() {
		return &shadowBuffer{bounds: bounds}
	}
	w := bounds.X1 - bounds.X0
	h := bounds.Y1 - bounds.Y0
	return &shadowBuffer{bounds: bounds, data: make([]float32, w*h)}
}

func (b *shadowBuffer) at(x, y int) float32 {
	if b.data == nil || x < b.bounds.X0 || x >= b.bounds.X1 || y < b.bounds.Y0 || y >= b.bounds.Y1 {
		return 0
	}
	w := b.bounds.X1 - b.bounds.X0
	return b.data[(y-b.bounds.Y0)*w+(x-b.bounds.X0)]
}

func (b *shadowBuffer) set(x, y int, v float32) {
	w := b.bounds.X1 - b.bounds.X0
	b.data[(y-b.bounds.Y0)*w+(x-b.bounds.X0)] = v
}

// renderShadow implements spec component 9: render the shape's coverage
// offset by (OffsetX, OffsetY), blurred, tinted with Color, and
// composited under the shape (source-over, before the caller draws the
// shape itself). A fully transparent shadow color is a no-op.
func renderShadow(surface *Surface, shapeCoverage *Coverage, shapeBounds Rect, clip *ClipMask, shadow ShadowState, globalAlpha float64) {
	if shadow.Color.A == 0 || shapeCoverage == nil {
		return
	}

	pad := int(math.Ceil(shadow.Blur*3)) + 1
	offX, offY := int(math.Round(shadow.OffsetX)), int(math.Round(shadow.OffsetY))

	raw := Rect{
		X0: shapeBounds.X0 + offX - pad,
		Y0: shapeBounds.Y0 + offY - pad,
		X1: shapeBounds.X1 + offX + pad,
		Y1: shapeBounds.Y1 + offY + pad,
	}
	bounded := raw.Intersect(Rect{X0: 0, Y0: 0, X1: surface.Width, Y1: surface.Height})
	if bounded.Empty() {
		return
	}

	buf := newShadowBuffer(raw)
	for y := raw.Y0; y < raw.Y1; y++ {
		for x := raw.X0; x < raw.X1; x++ {
			buf.set(x, y, shapeCoverage.At(x-offX, y-offY))
		}
	}

	if shadow.Blur > 0 {
		boxBlur(buf, shadow.Blur)
	}

	for y := bounded.Y0; y < bounded.Y1; y++ {
		for x := bounded.X0; x < bounded.X1; x++ {
			a := float64(buf.at(x, y)) * clip.At(x, y) * globalAlpha
			if a <= 0 {
				continue
			}
			src := shadow.Color.premultiply()
			src.R *= a
			src.G *= a
			src.B *= a
			src.A *= a
			dst := surface.straightAt(x, y).premultiply()
			out := blend(SourceOver, src, dst)
			surface.setStraight(x, y, out.unpremultiply())
		}
	}
}

// boxBlur approximates a Gaussian blur of standard deviation sigma with
// three passes of box blur (Kovesi's box sizes), each separable into a
// horizontal and vertical sweep.
func boxBlur(buf *shadowBuffer, sigma float64) {
	sizes := boxesForGauss(sigma, 3)
	w := buf.bounds.X1 - buf.bounds.X0
	h := buf.bounds.Y1 - buf.bounds.Y0
	if w <= 0 || h <= 0 {
		return
	}
	for _, size := range sizes {
		radius := (size - 1) / 2
		boxBlurHorizontal(buf, radius)
		boxBlurVertical(buf, radius)
	}
}

func boxesForGauss(sigma float64, n int) []int {
	idealW := math.Sqrt((12*sigma*sigma)/float64(n) + 1)
	wl := int(math.Floor(idealW))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2
	mIdeal := (12*sigma*sigma - float64(n)*float64(wl)*float64(wl) - 4*float64(n)*float64(wl) - 3*float64(n)) / (-4*float64(wl) - 4)
	m := int(math.Round(mIdeal))
	sizes := make([]int, n)
	for i := 0; i < n; i++ {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
		if sizes[i] < 1 {
			sizes[i] = 1
		}
	}
	return sizes
}

func boxBlurHorizontal(buf *shadowBuffer, radius int) {
	if radius <= 0 {
		return
	}
	w := buf.bounds.X1 - buf.bounds.X0
	row := make([]float32, w)
	for y := buf.bounds.Y0; y < buf.bounds.Y1; y++ {
		for i := 0; i < w; i++ {
			row[i] = buf.at(buf.bounds.X0+i, y)
		}
		for i := 0; i < w; i++ {
			sum, count := float32(0), 0
			for k := -radius; k <= radius; k++ {
				j := i + k
				if j < 0 || j >= w {
					continue
				}
				sum += row[j]
				count++
			}
			buf.set(buf.bounds.X0+i, y, sum/float32(count))
		}
	}
}

func boxBlurVertical(buf *shadowBuffer, radius int) {
	if radius <= 0 {
		return
	}
	h := buf.bounds.Y1 - buf.bounds.Y0
	col := make([]float32, h)
	for x := buf.bounds.X0; x < buf.bounds.X1; x++ {
		for i := 0; i < h; i++ {
			col[i] = buf.at(x, buf.bounds.Y0+i)
		}
		for i := 0; i < h; i++ {
			sum, count := float32(0), 0
			for k := -radius; k <= radius; k++ {
				j := i + k
				if j < 0 || j >= h {
					continue
				}
				sum += col[j]
				count++
			}
			buf.set(x, buf.bounds.Y0+i, sum/float32(count))
		}
	}
}
