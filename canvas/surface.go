package canvas

import "sync"

// surfaceDataPool recycles pixel buffers across Surface allocations,
// grounded on the teacher's surface.go surfaceDataPool (sync.Pool of
// backing byte slices keyed loosely by size class).
var surfaceDataPool = sync.Pool{
	New: func() interface{} { return make([]byte, 0) },
}

// Surface is the sole mutation sink, spec §3: width x height straight
// (non-premultiplied) 8-bit RGBA pixels, row-major, top-down, plus a
// stride. All internal blending in compositor.go happens in
// premultiplied form and unpremultiplies only at this boundary.
type Surface struct {
	Width, Height int
	Stride        int
	Pix           []uint8 // straight RGBA, len == Stride*Height
}

// NewSurface allocates a transparent-black surface of the given size.
// ResourceError (wrapped via github.com/pkg/errors) is returned on an
// absurd allocation request rather than panicking, per spec §7.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, newResourceError("canvas: invalid surface size %dx%d", width, height)
	}
	if width > 1<<20 || height > 1<<20 {
		return nil, newResourceError("canvas: surface size %dx%d exceeds limit", width, height)
	}
	stride := width * 4
	size := stride * height
	buf := surfaceDataPool.Get().([]byte)
	if cap(buf) < size {
		buf = make([]byte, size)
	} else {
		buf = buf[:size]
		for i := range buf {
			buf[i] = 0
		}
	}
	return &Surface{Width: width, Height: height, Stride: stride, Pix: buf}, nil
}

// Release returns the pixel buffer to the pool. Optional; callers that
// skip it simply let the GC reclaim the slice.
func (s *Surface) Release() {
	if s.Pix != nil {
		surfaceDataPool.Put(s.Pix[:0])
		s.Pix = nil
	}
}

// straightAt returns the straight RGBA color at (x, y), or transparent
// black outside bounds.
func (s *Surface) straightAt(x, y int) RGBA {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return Transparent
	}
	i := y*s.Stride + x*4
	return RGBA{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: s.Pix[i+3]}
}

func (s *Surface) setStraight(x, y int, c RGBA) {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return
	}
	i := y*s.Stride + x*4
	s.Pix[i], s.Pix[i+1], s.Pix[i+2], s.Pix[i+3] = c.R, c.G, c.B, c.A
}

// premultiplied is the internal blending representation: 0..255 range,
// components scaled by alpha/255.
type premultiplied struct {
	R, G, B, A float64
}

func (c RGBA) premultiply() premultiplied {
	a := float64(c.A) / 255
	return premultiplied{R: float64(c.R) * a, G: float64(c.G) * a, B: float64(c.B) * a, A: float64(c.A)}
}

// unpremultiply converts back to straight RGBA at the surface write
// boundary, spec §3's Surface invariant.
func (p premultiplied) unpremultiply() RGBA {
	if p.A <= 0 {
		return Transparent
	}
	a := p.A / 255
	return RGBA{
		R: clampByte(p.R / a),
		G: clampByte(p.G / a),
		B: clampByte(p.B / a),
		A: clampByte(p.A),
	}
}

// GetImageData copies a rectangle as straight RGBA, spec §6: "out of
// bounds regions are filled with transparent black".
func (s *Surface) GetImageData(x, y, w, h int) *ImageData {
	img := &ImageData{Width: w, Height: h, Data: make([]uint8, w*h*4)}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := s.straightAt(x+col, y+row)
			i := (row*w + col) * 4
			img.Data[i], img.Data[i+1], img.Data[i+2], img.Data[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return img
}

// PutImageData writes straight RGBA back, bypassing compositing,
// transform, clip and global alpha entirely (spec §6).
func (s *Surface) PutImageData(img *ImageData, x, y int) {
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			i := (row*img.Width + col) * 4
			c := RGBA{R: img.Data[i], G: img.Data[i+1], B: img.Data[i+2], A: img.Data[i+3]}
			s.setStraight(x+col, y+row, c)
		}
	}
}
