package host

import (
	"fmt"
	"image"
)

// ARGBToRGBA unpacks engine pixels into dst as R, G, B, A bytes. The engine's
// top byte is transparency, so alpha is written as 255 minus it.
// len(dst) must be 4*len(src).
func ARGBToRGBA(dst []byte, src []uint32) error {
	if len(dst) != 4*len(src) {
		return fmt.Errorf("%w: rgba buffer %d bytes for %d pixels", ErrFrameSize, len(dst), len(src))
	}
	for i, p := range src {
		d := dst[i*4 : i*4+4 : i*4+4]
		d[0] = uint8(p >> 16)
		d[1] = uint8(p >> 8)
		d[2] = uint8(p)
		d[3] = 255 - uint8(p>>24)
	}
	return nil
}

// ARGBToRGB unpacks engine pixels into packed RGB bytes, dropping the
// transparency byte. len(dst) must be 3*len(src).
func ARGBToRGB(dst []byte, src []uint32) error {
	if len(dst) != 3*len(src) {
		return fmt.Errorf("%w: rgb buffer %d bytes for %d pixels", ErrFrameSize, len(dst), len(src))
	}
	for i, p := range src {
		d := dst[i*3 : i*3+3 : i*3+3]
		d[0] = uint8(p >> 16)
		d[1] = uint8(p >> 8)
		d[2] = uint8(p)
	}
	return nil
}

// FrameImage converts a width by height engine frame to a new image.RGBA.
func FrameImage(src []uint32, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(src) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrFrameSize, len(src), width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := ARGBToRGBA(img.Pix, src); err != nil {
		return nil, err
	}
	return img, nil
}
