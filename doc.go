// Package bluenoise converts continuous-tone images into 1-bit black and
// white images by ordered dithering against a tiled blue-noise mask.
//
// # Quick Start
//
//	import "github.com/gogpu/bluenoise"
//
//	// pix holds width*height*3 bytes of packed RGB.
//	out, err := bluenoise.Dither(pix, width, height, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Algorithm
//
// Each source pixel is reduced to luminance (0.299R + 0.587G + 0.114B) and
// compared with the mask value at (x mod NW, y mod NH). Pixels strictly
// brighter than the mask become opaque white, all others (ties included)
// become opaque black. Blue noise has no low-frequency energy, so the result
// shows an even speckle without visible clusters, and a small mask tiles over
// an image of any size.
//
// # Scale
//
// The scale argument only sizes the output canvas: it is width*scale by
// height*scale, but only the top-left width by height region is written. The
// remainder keeps the zero value of image.RGBA (transparent black). Use
// [Replicate] when each source pixel should instead cover a scale by scale
// block.
//
// # Mask
//
// [DefaultMask] decodes the bundled 64x64 mask once, on first use, and is
// read-only afterwards. Tests and callers may supply their own with
// [WithMask].
//
// # Logging
//
// The package is silent by default; see [SetLogger].
package bluenoise
