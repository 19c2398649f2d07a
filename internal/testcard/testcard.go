// Package testcard is a stand-in engine for the host: an animated gradient
// with a block the arrow keys move around.
package testcard

import (
	"context"
	"errors"

	"github.com/gogpu/bluenoise/host"
)

// ErrQuit is returned by Run when the player presses Escape.
var ErrQuit = errors.New("testcard: quit")

// TicRate is the engine frame rate in frames per second.
const TicRate = 35

const blockSize = 32

// Engine implements host.Engine.
type Engine struct {
	// Width and Height are the screen size; zero means host.ResX by host.ResY.
	Width  int
	Height int

	// MaxFrames stops the engine after this many frames; zero runs until
	// Escape or cancellation.
	MaxFrames int

	// Title is sent to the platform once after initialization.
	Title string
}

type state struct {
	width, height int
	bx, by        int
	dx, dy        int
	tic           int
	buf           []uint32
}

// Run implements host.Engine.
func (e *Engine) Run(ctx context.Context, p host.Platform) error {
	s := &state{width: e.Width, height: e.Height}
	if s.width == 0 || s.height == 0 {
		s.width, s.height = host.ResX, host.ResY
	}
	s.buf = make([]uint32, s.width*s.height)
	s.bx, s.by = (s.width-blockSize)/2, (s.height-blockSize)/2

	if err := p.InitializeDisplay(s.width, s.height); err != nil {
		return err
	}
	if e.Title != "" {
		p.SetTitle(append([]byte(e.Title), 0))
	}

	start := p.ElapsedMillis()
	for e.MaxFrames == 0 || s.tic < e.MaxFrames {
		if err := ctx.Err(); err != nil {
			return err
		}

		for {
			ev, ok := p.PollKey()
			if !ok {
				break
			}
			if ev.Pressed && ev.Key == host.KeyEscape {
				return ErrQuit
			}
			s.key(ev)
		}

		s.step()
		s.draw()
		if err := p.SubmitFrame(s.buf, s.width, s.height); err != nil {
			return err
		}

		// Deadlines derive from the tic count so the rate does not drift.
		next := start + uint32(int64(s.tic)*1000/TicRate) //nolint:gosec // tick counter wraps at 2^32
		if d := int32(next - p.ElapsedMillis()); d > 0 { //nolint:gosec // signed distance across the wrap
			p.Sleep(uint32(d))
		}
	}
	return nil
}

func (s *state) key(ev host.KeyEvent) {
	d := 0
	if ev.Pressed {
		d = 4
	}
	switch ev.Key {
	case host.KeyLeftArrow:
		s.dx = -d
	case host.KeyRightArrow:
		s.dx = d
	case host.KeyUpArrow:
		s.dy = -d
	case host.KeyDownArrow:
		s.dy = d
	}
}

func (s *state) step() {
	s.tic++
	s.bx = clamp(s.bx+s.dx, 0, s.width-blockSize)
	s.by = clamp(s.by+s.dy, 0, s.height-blockSize)
}

// draw renders a diagonal gradient that scrolls one step per tic, then the
// block in white. Pixels are 0xAARRGGBB with AA = 0 (opaque).
func (s *state) draw() {
	for y := range s.height {
		row := s.buf[y*s.width : (y+1)*s.width]
		for x := range row {
			v := uint32((x + y + s.tic*2) * 255 / (s.width + s.height) % 256)
			row[x] = v<<16 | (255-v)<<8 | uint32(y*255/s.height)
		}
	}
	for y := s.by; y < min(s.by+blockSize, s.height); y++ {
		for x := s.bx; x < min(s.bx+blockSize, s.width); x++ {
			s.buf[y*s.width+x] = 0x00ffffff
		}
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
