package bluenoise

import (
	"image"

	"golang.org/x/image/draw"
)

// Replicate returns a copy of src enlarged by an integer factor, each source
// pixel becoming a scale by scale block. It is meant for scale-1 Dither
// output; no new colors are introduced because nearest-neighbor sampling
// only copies existing pixels. A scale below 1 is treated as 1; a scale
// whose canvas size overflows an int panics like image.NewRGBA.
func Replicate(src *image.RGBA, scale int) *image.RGBA {
	scale = max(scale, 1)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
