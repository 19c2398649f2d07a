package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("image: empty data")

// Load decodes the image file at path, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return img, nil
}

// DecodeBytes decodes an in-memory image, auto-detecting the format.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// FromStdImage creates an RGB8 ImageBuf from a standard library image.
// Alpha is dropped: the color channels are taken un-premultiplied.
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	buf, err := NewImageBuf(bounds.Dx(), bounds.Dy(), FormatRGB8)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range buf.height {
			src := nrgba.Pix[y*nrgba.Stride:]
			dst := buf.RowBytes(y)
			for x := range buf.width {
				copy(dst[x*3:x*3+3], src[x*4:x*4+3])
			}
		}
		return buf, nil
	}

	// Generic slow path for any image type
	for y := range buf.height {
		dst := buf.RowBytes(y)
		for x := range buf.width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			dst[x*3] = c.R
			dst[x*3+1] = c.G
			dst[x*3+2] = c.B
		}
	}
	return buf, nil
}

// GrayFromStdImage creates a Gray8 ImageBuf from a standard library image.
// *image.Gray sources are copied directly; other images go through Luma.
func GrayFromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()

	if gray, ok := img.(*image.Gray); ok {
		buf, err := NewImageBuf(bounds.Dx(), bounds.Dy(), FormatGray8)
		if err != nil {
			return nil, err
		}
		for y := range buf.height {
			start := y * gray.Stride
			copy(buf.RowBytes(y), gray.Pix[start:start+buf.width])
		}
		return buf, nil
	}

	rgb, err := FromStdImage(img)
	if err != nil {
		return nil, err
	}
	return ToGray(rgb), nil
}

// EncodePNG encodes img as PNG to the given writer.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves img as a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
