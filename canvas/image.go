package canvas

import (
	stdimage "image"
)

// ImageData is the canonical image source form, spec §6: "{width: u32,
// height: u32, data: bytes(width*height*4)}" in straight RGBA, row
// major, top-down. Every drawImage/createPattern/image-data call in
// this package consumes or produces exactly this shape; any host image
// adapter's job is reduced to producing one of these, per spec §9's
// "Host image interop" design note collapsing all adapter paths into
// one canonical consumer.
type ImageData struct {
	Width, Height int
	Data          []uint8 // straight RGBA, row-major, top-down
}

// NewImageData allocates a transparent-black canonical image, as
// Context.CreateImageData does.
func NewImageData(width, height int) *ImageData {
	return &ImageData{Width: width, Height: height, Data: make([]uint8, width*height*4)}
}

func (img *ImageData) at(x, y int) RGBA {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Transparent
	}
	i := (y*img.Width + x) * 4
	return RGBA{R: img.Data[i], G: img.Data[i+1], B: img.Data[i+2], A: img.Data[i+3]}
}

// ImageDataFromImage adapts a stdlib image.Image into the canonical
// form, the one host-adapter code path the core needs (spec §9: "the
// core consumes only the canonical {w,h,data}; the host layer is
// responsible for conversion").
func ImageDataFromImage(src stdimage.Image) *ImageData {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := NewImageData(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			var straight RGBA
			if a == 0 {
				straight = Transparent
			} else {
				straight = RGBA{
					R: uint8((r * 255 / a)),
					G: uint8((g * 255 / a)),
					B: uint8((bl * 255 / a)),
					A: uint8(a >> 8),
				}
			}
			i := (y*w + x) * 4
			out.Data[i], out.Data[i+1], out.Data[i+2], out.Data[i+3] = straight.R, straight.G, straight.B, straight.A
		}
	}
	return out
}
