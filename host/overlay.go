package host

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	overlayInk = image.NewUniform(color.RGBA{0, 255, 0, 255})
	overlayBg  = image.NewUniform(color.RGBA{0, 0, 0, 255})
)

// DrawStatus draws a one-line status strip across the top of img in the
// 7x13 fixed font. Text that does not fit is clipped.
func DrawStatus(img *image.RGBA, text string) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	m := face.Metrics()
	height := (m.Ascent + m.Descent).Ceil() + 2

	b := img.Bounds()
	strip := image.Rect(b.Min.X, b.Min.Y, b.Max.X, min(b.Min.Y+height, b.Max.Y))
	draw.Draw(img, strip, overlayBg, image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  overlayInk,
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(b.Min.X + 2), Y: fixed.I(b.Min.Y+1) + m.Ascent},
	}
	d.DrawString(text)
}
