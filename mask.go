package bluenoise

import (
	_ "embed"
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	ibuf "github.com/gogpu/bluenoise/internal/image"
)

//go:embed assets/noise.png
var bundledNoise []byte

// Mask is an immutable luminance raster used as a repeating threshold field.
// A Mask is safe for concurrent use.
type Mask struct {
	pix    []uint8
	width  int
	height int
}

// NewMask converts img to luminance and returns it as a Mask.
func NewMask(img image.Image) (*Mask, error) {
	buf, err := ibuf.GrayFromStdImage(img)
	if err != nil {
		if errors.Is(err, ibuf.ErrInvalidDimensions) {
			return nil, fmt.Errorf("%w: mask is %v", ErrInvalidDimensions, img.Bounds().Size())
		}
		return nil, err
	}
	return &Mask{pix: buf.Data(), width: buf.Width(), height: buf.Height()}, nil
}

// NewMaskFromGray builds a Mask from packed row-major luminance values.
// The slice is copied.
func NewMaskFromGray(pix []uint8, width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: mask is %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: mask has %d values, want %d", ErrBufferSize, len(pix), width*height)
	}
	return &Mask{pix: append([]uint8(nil), pix...), width: width, height: height}, nil
}

// DecodeMask decodes a mask image (PNG, JPEG, GIF, BMP, TIFF or WebP).
func DecodeMask(r io.Reader) (*Mask, error) {
	img, err := ibuf.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMaskDecode, err)
	}
	return NewMask(img)
}

// LoadMask decodes the mask image file at path.
func LoadMask(path string) (*Mask, error) {
	img, err := ibuf.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMaskDecode, err)
	}
	return NewMask(img)
}

// Size returns the mask dimensions.
func (m *Mask) Size() (width, height int) {
	return m.width, m.height
}

// At returns the mask value at (x mod width, y mod height).
func (m *Mask) At(x, y int) uint8 {
	return m.pix[wrap(y, m.height)*m.width+wrap(x, m.width)]
}

// wrap reduces n into [0, size).
func wrap(n, size int) int {
	n %= size
	if n < 0 {
		n += size
	}
	return n
}

var defaultMask = sync.OnceValue(func() *Mask {
	img, err := ibuf.DecodeBytes(bundledNoise)
	if err != nil {
		panic(fmt.Sprintf("%v: bundled assets/noise.png: %v", ErrMaskDecode, err))
	}
	m, err := NewMask(img)
	if err != nil {
		panic(fmt.Sprintf("%v: bundled assets/noise.png: %v", ErrMaskDecode, err))
	}
	Logger().Info("bluenoise: default mask loaded", "width", m.width, "height", m.height)
	return m
})

// DefaultMask returns the bundled 64x64 blue-noise mask. It is decoded on the
// first call; every call returns the same read-only Mask. DefaultMask panics
// if the bundled asset cannot be decoded, which only happens with a broken
// build.
func DefaultMask() *Mask {
	return defaultMask()
}
