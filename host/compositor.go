package host

import (
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/bluenoise"
)

// Compositor turns engine frames into displayable images, optionally
// through the blue-noise dither effect and a status overlay.
//
// Compose is meant for one goroutine (the engine's); SetDither and SetStatus
// may be called from any goroutine.
type Compositor struct {
	ditherer *bluenoise.Ditherer
	scale    int
	dither   atomic.Bool
	overlay  bool

	statusMu sync.Mutex
	status   string

	rgb []byte
}

// NewCompositor creates a Compositor from cfg.
func NewCompositor(cfg Config) *Compositor {
	c := &Compositor{
		ditherer: bluenoise.New(bluenoise.WithMask(cfg.Mask)),
		scale:    max(cfg.DitherScale, 1),
		overlay:  cfg.Overlay,
	}
	c.dither.Store(cfg.Dither)
	return c
}

// Dither reports whether the dither effect is on.
func (c *Compositor) Dither() bool {
	return c.dither.Load()
}

// SetDither turns the dither effect on or off for subsequent frames.
func (c *Compositor) SetDither(on bool) {
	c.dither.Store(on)
}

// ToggleDither flips the dither effect and returns the new state.
func (c *Compositor) ToggleDither() bool {
	for {
		old := c.dither.Load()
		if c.dither.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetStatus sets the overlay text. It is shown only when the overlay is
// enabled.
func (c *Compositor) SetStatus(s string) {
	c.statusMu.Lock()
	c.status = s
	c.statusMu.Unlock()
}

// Status returns the overlay text.
func (c *Compositor) Status() string {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	return c.status
}

// OutputSize returns the size of images Compose produces for a width by
// height frame.
func (c *Compositor) OutputSize(width, height int) (int, int) {
	if c.Dither() {
		return width * c.scale, height * c.scale
	}
	return width, height
}

// Compose converts a width by height frame. With dithering on, every pixel
// becomes a scale by scale block of pure black or white.
func (c *Compositor) Compose(frame []uint32, width, height int) (*image.RGBA, error) {
	var (
		img *image.RGBA
		err error
	)
	if c.Dither() {
		img, err = c.composeDithered(frame, width, height)
	} else {
		img, err = FrameImage(frame, width, height)
	}
	if err != nil {
		return nil, err
	}

	if c.overlay {
		DrawStatus(img, c.Status())
	}
	return img, nil
}

func (c *Compositor) composeDithered(frame []uint32, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(frame) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrFrameSize, len(frame), width, height)
	}
	if n := width * height * 3; cap(c.rgb) < n {
		c.rgb = make([]byte, n)
	} else {
		c.rgb = c.rgb[:n]
	}
	if err := ARGBToRGB(c.rgb, frame); err != nil {
		return nil, err
	}
	return c.ditherer.DitherBlocks(c.rgb, width, height, c.scale)
}
