// Package image provides the packed pixel buffers used by bluenoise.
//
// Buffers are tightly packed rows of 8-bit channels. Source frames arrive as
// RGB8 and the disperser thresholds their Gray8 luminance.
package image

import "math"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit luminance (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	// This is the layout of caller-supplied source frames.
	FormatRGB8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatInfo contains metadata about a pixel format.
type formatInfo struct {
	bytesPerPixel int
}

var formatInfoTable = [formatCount]formatInfo{
	FormatGray8: {bytesPerPixel: 1},
	FormatRGB8:  {bytesPerPixel: 3},
}

func (f Format) info() formatInfo {
	if f >= formatCount {
		return formatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.info().bytesPerPixel
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for a packed image.
// The result is only meaningful when Fits(width, height) holds.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// Fits reports whether a width by height image in this format has a byte
// size representable as an int. Width and height must be positive.
func (f Format) Fits(width, height int) bool {
	bpp := f.BytesPerPixel()
	return bpp > 0 && width <= math.MaxInt/bpp/height
}
