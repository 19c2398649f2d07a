// Command dghost runs the test-card engine through the host platform, in a
// window or headless.
//
// Usage:
//
//	dghost [-dither] [-scale N] [-overlay] [-headless -frames N -snapshot out.png] [-v]
//
// In the window, F10 toggles the dither effect and Escape quits.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/bluenoise"
	"github.com/gogpu/bluenoise/host"
	"github.com/gogpu/bluenoise/host/window"
	ibuf "github.com/gogpu/bluenoise/internal/image"
	"github.com/gogpu/bluenoise/internal/testcard"
)

type options struct {
	dither      bool
	scale       int
	windowScale int
	overlay     bool
	maskPath    string
	headless    bool
	frames      int
	snapshot    string
}

func main() {
	var (
		opts    options
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.BoolVar(&opts.dither, "dither", false, "start with the blue-noise dither effect on")
	flag.IntVar(&opts.scale, "scale", 1, "dither block size")
	flag.IntVar(&opts.windowScale, "window-scale", 2, "initial window magnification")
	flag.BoolVar(&opts.overlay, "overlay", false, "draw the title as a status line")
	flag.StringVar(&opts.maskPath, "mask", "", "noise mask image (default: bundled)")
	flag.BoolVar(&opts.headless, "headless", false, "run without a window")
	flag.IntVar(&opts.frames, "frames", 0, "stop after N frames (0 = until Escape; required with -headless)")
	flag.StringVar(&opts.snapshot, "snapshot", "", "headless: write the last frame to this PNG")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	bluenoise.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Fatal(err)
	}
}

func config(opts options) (host.Config, error) {
	cfg := host.NewConfig(
		host.WithTitle("dghost"),
		host.WithWindowScale(opts.windowScale),
	)
	cfg.Dither = opts.dither
	cfg.DitherScale = opts.scale
	cfg.Overlay = opts.overlay

	if opts.maskPath != "" {
		m, err := bluenoise.LoadMask(opts.maskPath)
		if err != nil {
			return cfg, err
		}
		cfg.Mask = m
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, opts options) error {
	cfg, err := config(opts)
	if err != nil {
		return err
	}
	engine := &testcard.Engine{MaxFrames: opts.frames, Title: "Test Card"}

	if !opts.headless {
		err := window.Run(ctx, engine, cfg)
		if errors.Is(err, testcard.ErrQuit) {
			return nil
		}
		return err
	}

	if opts.frames <= 0 {
		return errors.New("-headless needs -frames > 0")
	}
	h, err := host.RunHeadless(ctx, engine, cfg)
	if err != nil && !errors.Is(err, testcard.ErrQuit) {
		return err
	}
	if opts.snapshot != "" {
		frame := h.LastFrame()
		if frame == nil {
			return errors.New("no frame to snapshot")
		}
		if err := ibuf.SavePNG(opts.snapshot, frame); err != nil {
			return err
		}
		bluenoise.Logger().Info("snapshot written", "path", opts.snapshot, "frames", h.Frames())
	}
	return nil
}
