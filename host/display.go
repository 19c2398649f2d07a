package host

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/bluenoise"
)

// Presenter shows composed frames. Implementations must be safe to call
// from the engine goroutine while their own event loop runs.
type Presenter interface {
	// Resize is called once the engine has chosen its screen size.
	Resize(width, height int)

	// Present receives ownership of a composed frame.
	Present(img *image.RGBA)

	// Retitle sets the window title.
	Retitle(title string)
}

// Display implements Platform by composing engine frames and handing them
// to a Presenter.
type Display struct {
	presenter Presenter
	comp      *Compositor
	clock     *Clock
	keys      *KeyQueue

	mu     sync.Mutex
	width  int
	height int
	frames uint64
	title  string
}

// NewDisplay creates a Display with a wall clock. Call Validate on cfg first
// or accept the error returned here.
func NewDisplay(cfg Config, p Presenter) (*Display, error) {
	return newDisplay(cfg, p, NewClock())
}

func newDisplay(cfg Config, p Presenter, clock *Clock) (*Display, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Display{
		presenter: p,
		comp:      NewCompositor(cfg),
		clock:     clock,
		keys:      NewKeyQueue(cfg.KeyQueueSize),
		title:     cfg.Title,
	}, nil
}

// Compositor returns the frame compositor, for toggling effects.
func (d *Display) Compositor() *Compositor {
	return d.comp
}

// Keys returns the queue PollKey reads from. Presenters push into it.
func (d *Display) Keys() *KeyQueue {
	return d.keys
}

// InitializeDisplay implements Platform.
func (d *Display) InitializeDisplay(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: display %dx%d", ErrFrameSize, width, height)
	}

	d.mu.Lock()
	d.width, d.height = width, height
	d.mu.Unlock()

	bluenoise.Logger().Info("host: display initialized",
		"width", width, "height", height, "elapsed_ms", d.clock.ElapsedMillis())
	d.presenter.Resize(d.comp.OutputSize(width, height))
	return nil
}

// SubmitFrame implements Platform.
func (d *Display) SubmitFrame(buf []uint32, width, height int) error {
	d.mu.Lock()
	w, h := d.width, d.height
	d.mu.Unlock()

	if w == 0 {
		return ErrNotInitialized
	}
	if width != w || height != h {
		return fmt.Errorf("%w: got %dx%d, display is %dx%d", ErrFrameSize, width, height, w, h)
	}

	img, err := d.comp.Compose(buf, width, height)
	if err != nil {
		bluenoise.Logger().Warn("host: frame rejected", "err", err)
		return err
	}

	d.mu.Lock()
	d.frames++
	d.mu.Unlock()

	d.presenter.Present(img)
	return nil
}

// PollKey implements Platform.
func (d *Display) PollKey() (KeyEvent, bool) {
	return d.keys.Pop()
}

// SetTitle implements Platform.
func (d *Display) SetTitle(title []byte) {
	s := DecodeTitle(title)

	d.mu.Lock()
	d.title = s
	d.mu.Unlock()

	d.comp.SetStatus(s)
	d.presenter.Retitle(s)
}

// ElapsedMillis implements Platform.
func (d *Display) ElapsedMillis() uint32 {
	return d.clock.ElapsedMillis()
}

// Sleep implements Platform.
func (d *Display) Sleep(ms uint32) {
	d.clock.Sleep(ms)
}

// Title returns the last title set by the engine, or the configured one.
func (d *Display) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// Frames returns the number of frames accepted so far.
func (d *Display) Frames() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Size returns the display size set by InitializeDisplay, or zeros.
func (d *Display) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}
