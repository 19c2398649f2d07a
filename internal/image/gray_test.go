package image

import (
	"image/color"
	"testing"
)

func TestLuma(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"neutral 10", 10, 10, 10, 10},
		{"neutral 250", 250, 250, 250, 250},
		{"neutral 100", 100, 100, 100, 100},
		{"pure red", 255, 0, 0, 76},
		{"pure green", 0, 255, 0, 150},
		{"pure blue", 0, 0, 255, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Luma(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Luma(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestLumaCloseToGrayModel(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				got := int(Luma(uint8(r), uint8(g), uint8(b)))
				std := int(color.GrayModel.Convert(color.RGBA{uint8(r), uint8(g), uint8(b), 255}).(color.Gray).Y)
				if d := got - std; d < -1 || d > 1 {
					t.Fatalf("Luma(%d, %d, %d) = %d, color.GrayModel = %d", r, g, b, got, std)
				}
			}
		}
	}
}

func TestToGray(t *testing.T) {
	data := []byte{
		10, 10, 10, 250, 250, 250,
		255, 0, 0, 0, 0, 255,
	}
	src, err := FromRaw(data, 2, 2, FormatRGB8)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}

	gray := ToGray(src)
	if gray.format != FormatGray8 {
		t.Fatalf("format = %v, want Gray8", gray.format)
	}
	want := []byte{10, 250, 76, 29}
	for i, w := range want {
		if got := gray.Data()[i]; got != w {
			t.Errorf("gray[%d] = %d, want %d", i, got, w)
		}
	}

	// The source must be untouched.
	if data[0] != 10 || len(data) != 12 {
		t.Error("ToGray() modified the source buffer")
	}
}

func TestToGrayCopiesGray(t *testing.T) {
	src, _ := NewImageBuf(2, 1, FormatGray8)
	src.Data()[1] = 42

	gray := ToGray(src)
	gray.Data()[1] = 7
	if src.Data()[1] != 42 {
		t.Error("ToGray(Gray8) shares data with the source, want a copy")
	}
}
