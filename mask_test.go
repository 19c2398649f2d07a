package bluenoise

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"sync"
	"testing"
)

func TestDefaultMask(t *testing.T) {
	m := DefaultMask()
	w, h := m.Size()
	if w != 64 || h != 64 {
		t.Fatalf("Size() = (%d, %d), want (64, 64)", w, h)
	}

	// A void-and-cluster mask ranks every cell, so all levels appear.
	var seen [256]bool
	for y := range h {
		for x := range w {
			seen[m.At(x, y)] = true
		}
	}
	if !seen[0] || !seen[255] {
		t.Errorf("mask range misses an extreme: has 0 = %v, has 255 = %v", seen[0], seen[255])
	}
}

func TestDefaultMaskShared(t *testing.T) {
	var wg sync.WaitGroup
	masks := make([]*Mask, 16)
	for i := range masks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			masks[i] = DefaultMask()
		}()
	}
	wg.Wait()

	for i, m := range masks {
		if m != masks[0] {
			t.Errorf("DefaultMask() call %d returned a different Mask", i)
		}
	}
}

func TestMaskAtWraps(t *testing.T) {
	m, err := NewMaskFromGray([]uint8{1, 2, 3, 4, 5, 6}, 3, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 1},
		{2, 1, 6},
		{3, 0, 1},
		{4, 2, 2},
		{5, 3, 6},
		{-1, 0, 3},
		{0, -1, 4},
		{300, 201, 4},
	}
	for _, tt := range tests {
		if got := m.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestNewMaskFromGrayErrors(t *testing.T) {
	if _, err := NewMaskFromGray(nil, 0, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewMaskFromGray(0x1) error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewMaskFromGray([]uint8{1, 2, 3}, 2, 2); !errors.Is(err, ErrBufferSize) {
		t.Errorf("NewMaskFromGray(short) error = %v, want ErrBufferSize", err)
	}
}

func TestNewMaskFromGrayCopies(t *testing.T) {
	pix := []uint8{9}
	m, _ := NewMaskFromGray(pix, 1, 1)
	pix[0] = 0
	if m.At(0, 0) != 9 {
		t.Error("NewMaskFromGray() shares the caller's slice, want a copy")
	}
}

func TestDecodeMask(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 2))
	src.SetGray(3, 1, color.Gray{Y: 77})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	m, err := DecodeMask(&buf)
	if err != nil {
		t.Fatalf("DecodeMask() error = %v", err)
	}
	if w, h := m.Size(); w != 4 || h != 2 {
		t.Errorf("Size() = (%d, %d), want (4, 2)", w, h)
	}
	if got := m.At(3, 1); got != 77 {
		t.Errorf("At(3, 1) = %d, want 77", got)
	}
}

func TestDecodeMaskColorSource(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})

	m, err := NewMask(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.At(0, 0); got != 76 {
		t.Errorf("At(0, 0) = %d, want 76 (luminance of pure red)", got)
	}
}

func TestDecodeMaskErrors(t *testing.T) {
	if _, err := DecodeMask(bytes.NewReader([]byte("garbage"))); !errors.Is(err, ErrMaskDecode) {
		t.Errorf("DecodeMask(garbage) error = %v, want ErrMaskDecode", err)
	}
	if _, err := LoadMask(filepath.Join(t.TempDir(), "none.png")); !errors.Is(err, ErrMaskDecode) {
		t.Errorf("LoadMask(missing) error = %v, want ErrMaskDecode", err)
	}
	if _, err := NewMask(image.NewGray(image.Rectangle{})); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewMask(empty) error = %v, want ErrInvalidDimensions", err)
	}
}
