package image

import (
	"errors"
	"fmt"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive,
	// or when the pixel data would not be addressable.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataSize is returned when packed data does not match width*height*bpp.
	ErrDataSize = errors.New("image: data size does not match dimensions")
)

// ImageBuf is a packed pixel buffer (stride == width * bytes per pixel).
//
// Thread safety: ImageBuf is safe for concurrent read access. Writes through
// Data or RowBytes require external synchronization.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	format Format
}

// NewImageBuf creates a zeroed image buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if !format.Fits(width, height) {
		return nil, fmt.Errorf("%w: %dx%d %s overflows", ErrInvalidDimensions, width, height, format)
	}

	return &ImageBuf{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromRaw wraps existing packed data without copying.
// The length of data must equal format.ImageBytes(width, height) exactly:
// a short buffer would be read out of bounds and a long one silently
// truncated, so both are rejected with ErrDataSize. Dimensions whose byte
// size overflows an int can match no slice and are rejected the same way.
func FromRaw(data []byte, width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	if !format.Fits(width, height) {
		return nil, fmt.Errorf("%w: got %d bytes, want more than the int range (%dx%d %s)",
			ErrDataSize, len(data), width, height, format)
	}
	if want := format.ImageBytes(width, height); len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d (%dx%d %s)",
			ErrDataSize, len(data), want, width, height, format)
	}

	return &ImageBuf{
		data:   data,
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.format.RowBytes(b.width)
	start := y * stride
	return b.data[start : start+stride]
}
