package canvas

// ClipMask is the per-pixel [0,1] coverage buffer of spec §4.6,
// semantically the minimum of every clip path intersected onto the
// graphics state so far. The initial mask (no clip() called yet) is
// everywhere 1 and is represented by a nil buffer to avoid allocating
// a full-surface buffer for contexts that never call clip().
//
// Grounded on the teacher's soft_mask.go SoftMaskStack push/pop/current
// shape, generalized from "swap the mask wholesale" to "intersect with
// the mask" since the teacher's stack never needed the spec's
// elementwise-minimum semantics.
type ClipMask struct {
	width, height int
	data          []float32 // nil means "everywhere 1"
}

// At returns the clip coverage at (x, y). Without an allocated buffer it
// returns 1 everywhere ("unclipped"), matching the nil-buffer convention
// above; with one, coordinates outside the surface return 0 (nothing
// drawn off-surface should ever read through).
func (m *ClipMask) At(x, y int) float64 {
	if m == nil || m.data == nil {
		return 1
	}
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0
	}
	return float64(m.data[y*m.width+x])
}

// Intersect returns a NEW ClipMask holding the elementwise minimum of m
// and the given rasterized path coverage (0 outside cov.Bounds). Always
// allocating a fresh buffer is what gives save()/restore() copy-on-write
// semantics for free: a save() only ever copies the *pointer* to the
// existing mask (graphics_state.go), so the first clip() after a save
// naturally produces a new buffer without disturbing the saved one
// (spec §4.7).
func (m *ClipMask) Intersect(width, height int, cov *Coverage) *ClipMask {
	out := &ClipMask{width: width, height: height, data: make([]float32, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			old := m.At(x, y)
			newV := float64(cov.At(x, y))
			v := old
			if newV < v {
				v = newV
			}
			out.data[y*width+x] = float32(v)
		}
	}
	return out
}

// Bounds reports the smallest rectangle outside of which the mask is
// guaranteed to be exactly 0, used by the compositor to bound
// whole-surface operator realization (spec §4.5/§9). A nil/unallocated
// mask has no effective bound (the whole surface is eligible).
func (m *ClipMask) Bounds(surfaceW, surfaceH int) Rect {
	if m == nil || m.data == nil {
		return Rect{X0: 0, Y0: 0, X1: surfaceW, Y1: surfaceH}
	}
	minX, minY, maxX, maxY := m.width, m.height, 0, 0
	found := false
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.data[y*m.width+x] > 0 {
				found = true
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x+1 > maxX {
					maxX = x + 1
				}
				if y+1 > maxY {
					maxY = y + 1
				}
			}
		}
	}
	if !found {
		return Rect{}
	}
	return Rect{X0: minX, Y0: minY, X1: maxX, Y1: maxY}
}
