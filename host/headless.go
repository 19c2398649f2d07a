package host

import (
	"context"
	"image"
	"sync"

	"github.com/gogpu/bluenoise"
)

// Headless is a Platform without a window. It keeps the most recent frame
// and lets callers script key input. It runs on a virtual clock: Sleep
// returns immediately after advancing ElapsedMillis.
type Headless struct {
	*Display

	mu    sync.Mutex
	last  *image.RGBA
	title string
}

// NewHeadless creates a headless platform.
func NewHeadless(cfg Config) (*Headless, error) {
	h := &Headless{title: cfg.Title}
	d, err := newDisplay(cfg, h, NewVirtualClock())
	if err != nil {
		return nil, err
	}
	h.Display = d
	return h, nil
}

// Resize implements Presenter.
func (h *Headless) Resize(int, int) {}

// Present implements Presenter.
func (h *Headless) Present(img *image.RGBA) {
	h.mu.Lock()
	h.last = img
	h.mu.Unlock()
}

// Retitle implements Presenter.
func (h *Headless) Retitle(title string) {
	h.mu.Lock()
	h.title = title
	h.mu.Unlock()
}

// LastFrame returns the most recently presented frame, or nil.
func (h *Headless) LastFrame() *image.RGBA {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.last
}

// WindowTitle returns the title a window would show.
func (h *Headless) WindowTitle() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.title
}

// PushKey queues a key event for the engine.
func (h *Headless) PushKey(ev KeyEvent) bool {
	return h.Keys().Push(ev)
}

// RunHeadless runs engine on a new Headless platform until it returns or
// ctx is cancelled. The platform is returned for inspection even when the
// engine fails.
func RunHeadless(ctx context.Context, engine Engine, cfg Config) (*Headless, error) {
	h, err := NewHeadless(cfg)
	if err != nil {
		return nil, err
	}

	log := bluenoise.Logger()
	log.Info("host: headless run starting", "dither", cfg.Dither)
	err = engine.Run(ctx, h)
	log.Info("host: headless run finished", "frames", h.Frames(), "err", err)
	return h, err
}
