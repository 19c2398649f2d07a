package bluenoise

import (
	"errors"
	"fmt"
	"image"
	"math"

	ibuf "github.com/gogpu/bluenoise/internal/image"
)

var (
	white = [4]uint8{255, 255, 255, 255}
	black = [4]uint8{0, 0, 0, 255}
)

// Ditherer thresholds images against a noise mask. The zero value is not
// usable; create one with New. A Ditherer holds no mutable state and is
// safe for concurrent use.
type Ditherer struct {
	mask *Mask
}

// New creates a Ditherer. Without WithMask it uses DefaultMask, which is
// decoded lazily on the first dither call.
func New(opts ...Option) *Ditherer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Ditherer{mask: o.mask}
}

// Mask returns the mask this Ditherer thresholds against.
func (d *Ditherer) Mask() *Mask {
	if d.mask == nil {
		return DefaultMask()
	}
	return d.mask
}

// Dither converts packed row-major RGB pixels (exactly width*height*3 bytes)
// to a black and white RGBA image of width*scale by height*scale.
//
// Only the top-left width by height region is written; the rest of the
// canvas stays transparent black. Every written pixel is either opaque
// white or opaque black.
//
// A buffer of the wrong length, a non-positive width, height or scale, or a
// scale whose canvas would not fit in memory addressing is rejected before
// any pixel is processed.
func (d *Ditherer) Dither(pixels []byte, width, height, scale int) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	src, err := ibuf.FromRaw(pixels, width, height, ibuf.FormatRGB8)
	switch {
	case errors.Is(err, ibuf.ErrInvalidDimensions):
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	case errors.Is(err, ibuf.ErrDataSize):
		return nil, fmt.Errorf("%w: %w", ErrBufferSize, err)
	case err != nil:
		return nil, err
	}
	if err := checkCanvas(width, height, scale); err != nil {
		return nil, err
	}

	Logger().Debug("bluenoise: dither", "width", width, "height", height, "scale", scale)
	return d.threshold(ibuf.ToGray(src), scale), nil
}

// MustDither is like Dither but panics if the input violates a precondition.
func (d *Ditherer) MustDither(pixels []byte, width, height, scale int) *image.RGBA {
	out, err := d.Dither(pixels, width, height, scale)
	if err != nil {
		panic(err)
	}
	return out
}

// DitherImage dithers any decoded image. Alpha is ignored.
func (d *Ditherer) DitherImage(img image.Image, scale int) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	src, err := ibuf.FromStdImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, img.Bounds().Size())
	}
	if err := checkCanvas(src.Width(), src.Height(), scale); err != nil {
		return nil, err
	}
	return d.threshold(ibuf.ToGray(src), scale), nil
}

// DitherBlocks dithers at scale 1 and then replicates every pixel into a
// scale by scale block, so the whole canvas is written.
func (d *Ditherer) DitherBlocks(pixels []byte, width, height, scale int) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}
	out, err := d.Dither(pixels, width, height, 1)
	if err != nil {
		return nil, err
	}
	if err := checkCanvas(width, height, scale); err != nil {
		return nil, err
	}
	return Replicate(out, scale), nil
}

// checkCanvas rejects scales whose width*scale by height*scale RGBA canvas
// has a byte size beyond the int range. Width and height must be positive.
func checkCanvas(width, height, scale int) error {
	if width > math.MaxInt/scale || height > math.MaxInt/scale {
		return fmt.Errorf("%w: %d overflows a %dx%d canvas", ErrInvalidScale, scale, width, height)
	}
	if w, h := width*scale, height*scale; w > math.MaxInt/4/h {
		return fmt.Errorf("%w: %d overflows a %dx%d canvas", ErrInvalidScale, scale, width, height)
	}
	return nil
}

// threshold writes the classification of gray into a new canvas scaled by
// scale. Write coordinates are never scaled.
func (d *Ditherer) threshold(gray *ibuf.ImageBuf, scale int) *image.RGBA {
	m := d.Mask()
	width, height := gray.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))

	for y := range height {
		luma := gray.RowBytes(y)
		row := out.Pix[y*out.Stride:]
		for x := range width {
			c := &black
			if luma[x] > m.At(x, y) {
				c = &white
			}
			copy(row[x*4:x*4+4], c[:])
		}
	}
	return out
}

// Dither converts packed RGB pixels using DefaultMask. See Ditherer.Dither.
func Dither(pixels []byte, width, height, scale int) (*image.RGBA, error) {
	return New().Dither(pixels, width, height, scale)
}

// MustDither is like Dither but panics on a precondition violation.
func MustDither(pixels []byte, width, height, scale int) *image.RGBA {
	return New().MustDither(pixels, width, height, scale)
}
