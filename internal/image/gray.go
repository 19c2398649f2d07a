package image

// Luminance weights in 16.16 fixed point (0.299, 0.587, 0.114). They sum to
// 1<<16 so a neutral gray maps to itself.
const (
	lumaR = 19595
	lumaG = 38470
	lumaB = 7471
)

// Luma returns the perceptual luminance of an 8-bit RGB triple,
// rounded to the nearest integer.
func Luma(r, g, b uint8) uint8 {
	y := (lumaR*uint32(r) + lumaG*uint32(g) + lumaB*uint32(b) + 1<<15) >> 16
	return uint8(y) //nolint:gosec // weights sum to 1<<16, y <= 255
}

// ToGray converts b to a new Gray8 buffer of the same dimensions.
// A Gray8 input is copied.
func ToGray(b *ImageBuf) *ImageBuf {
	out := &ImageBuf{
		data:   make([]byte, b.width*b.height),
		width:  b.width,
		height: b.height,
		format: FormatGray8,
	}

	switch b.format {
	case FormatGray8:
		copy(out.data, b.data)
	case FormatRGB8:
		src := b.data
		for i := range out.data {
			p := i * 3
			out.data[i] = Luma(src[p], src[p+1], src[p+2])
		}
	}
	return out
}
