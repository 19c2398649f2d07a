package host

import (
	"errors"
	"image/color"
	"testing"
)

func TestARGBToRGBA(t *testing.T) {
	src := []uint32{0x00112233, 0xff445566, 0x80aabbcc}
	dst := make([]byte, 12)
	if err := ARGBToRGBA(dst, src); err != nil {
		t.Fatalf("ARGBToRGBA() error = %v", err)
	}

	want := []byte{
		0x11, 0x22, 0x33, 0xff,
		0x44, 0x55, 0x66, 0x00,
		0xaa, 0xbb, 0xcc, 0x7f,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestARGBToRGB(t *testing.T) {
	src := []uint32{0x7f010203, 0x00fffefd}
	dst := make([]byte, 6)
	if err := ARGBToRGB(dst, src); err != nil {
		t.Fatalf("ARGBToRGB() error = %v", err)
	}
	want := []byte{1, 2, 3, 0xff, 0xfe, 0xfd}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestFrameConversionSizeErrors(t *testing.T) {
	if err := ARGBToRGBA(make([]byte, 7), make([]uint32, 2)); !errors.Is(err, ErrFrameSize) {
		t.Errorf("ARGBToRGBA() error = %v, want ErrFrameSize", err)
	}
	if err := ARGBToRGB(make([]byte, 7), make([]uint32, 2)); !errors.Is(err, ErrFrameSize) {
		t.Errorf("ARGBToRGB() error = %v, want ErrFrameSize", err)
	}
	if _, err := FrameImage(make([]uint32, 5), 2, 2); !errors.Is(err, ErrFrameSize) {
		t.Errorf("FrameImage() error = %v, want ErrFrameSize", err)
	}
	if _, err := FrameImage(nil, 0, 0); !errors.Is(err, ErrFrameSize) {
		t.Errorf("FrameImage(0x0) error = %v, want ErrFrameSize", err)
	}
}

func TestFrameImage(t *testing.T) {
	img, err := FrameImage([]uint32{0, 0x00ff0000, 0x0000ff00, 0x000000ff}, 2, 2)
	if err != nil {
		t.Fatalf("FrameImage() error = %v", err)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("pixel (1, 1) = %v, want opaque blue", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel (1, 0) = %v, want opaque red", got)
	}
}
