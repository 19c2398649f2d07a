//go:build cgo

package window

import (
	"context"
	"errors"
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/bluenoise"
	"github.com/gogpu/bluenoise/host"
)

// Window is an ebiten game that presents host frames and feeds keyboard
// edges to the engine.
type Window struct {
	display *host.Display

	mu      sync.Mutex
	pending *image.RGBA
	width   int
	height  int

	tex *ebiten.Image

	done    chan struct{}
	doneErr error
}

// Run opens a window, runs engine on its own goroutine and blocks until the
// window is closed or the engine returns. Closing the window cancels the
// engine's context.
func Run(ctx context.Context, engine host.Engine, cfg host.Config) error {
	w := &Window{
		width:  cfg.Width,
		height: cfg.Height,
		done:   make(chan struct{}),
	}
	d, err := host.NewDisplay(cfg, w)
	if err != nil {
		return err
	}
	w.display = d

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		err := engine.Run(ctx, d)
		w.finish(err)
	}()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.WindowScale, cfg.Height*cfg.WindowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	log := bluenoise.Logger()
	log.Info("window: starting", "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS)

	err = ebiten.RunGame(w)
	cancel()
	<-w.done

	if err == nil && !errors.Is(w.doneErr, context.Canceled) {
		err = w.doneErr
	}
	log.Info("window: closed", "frames", d.Frames(), "err", err)
	return err
}

func (w *Window) finish(err error) {
	w.doneErr = err
	close(w.done)
}

// Resize implements host.Presenter.
func (w *Window) Resize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	w.mu.Unlock()
}

// Present implements host.Presenter.
func (w *Window) Present(img *image.RGBA) {
	w.mu.Lock()
	w.pending = img
	w.mu.Unlock()
}

// Retitle implements host.Presenter.
func (w *Window) Retitle(title string) {
	ebiten.SetWindowTitle(title)
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(toggleKey) {
		on := w.display.Compositor().ToggleDither()
		bluenoise.Logger().Info("window: dither toggled", "on", on)
	}

	keys := w.display.Keys()
	for _, k := range scanOrder {
		switch {
		case inpututil.IsKeyJustPressed(k):
			keys.Push(host.KeyEvent{Pressed: true, Key: keymap[k]})
		case inpututil.IsKeyJustReleased(k):
			keys.Push(host.KeyEvent{Pressed: false, Key: keymap[k]})
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	img := w.pending
	w.pending = nil
	w.mu.Unlock()

	if img != nil {
		b := img.Bounds()
		if w.tex == nil || w.tex.Bounds().Size() != b.Size() {
			if w.tex != nil {
				w.tex.Deallocate()
			}
			w.tex = ebiten.NewImage(b.Dx(), b.Dy())
		}
		w.tex.WritePixels(img.Pix)
	}

	if w.tex != nil {
		screen.DrawImage(w.tex, nil)
	}
}

// Layout implements ebiten.Game. The logical screen is the last presented
// frame size, so ebiten scales it to the window.
func (w *Window) Layout(int, int) (int, int) {
	if w.tex != nil {
		b := w.tex.Bounds()
		return b.Dx(), b.Dy()
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}
