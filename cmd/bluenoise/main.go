// Command bluenoise dithers image files to black and white PNGs using the
// blue-noise mask.
//
// Usage:
//
//	bluenoise [-scale N] [-blocks] [-mask noise.png] [-o dir] [-j N] [-v] image...
//
// Each input is written to <dir>/<name>.dither.png (next to the input when
// -o is empty). Inputs may be PNG, JPEG, GIF, BMP, TIFF or WebP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/bluenoise"
	ibuf "github.com/gogpu/bluenoise/internal/image"
	"github.com/gogpu/bluenoise/internal/parallel"
)

type options struct {
	scale    int
	blocks   bool
	maskPath string
	outDir   string
	workers  int
}

func main() {
	var (
		opts    options
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.IntVar(&opts.scale, "scale", 1, "output canvas scale factor")
	flag.BoolVar(&opts.blocks, "blocks", false, "replicate each pixel into a scale x scale block instead of padding the canvas")
	flag.StringVar(&opts.maskPath, "mask", "", "noise mask image (default: bundled 64x64 blue noise)")
	flag.StringVar(&opts.outDir, "o", "", "output directory (default: next to each input)")
	flag.IntVar(&opts.workers, "j", 0, "parallel jobs (default: GOMAXPROCS)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	bluenoise.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options, inputs []string) error {
	if opts.scale <= 0 {
		return fmt.Errorf("%w: -scale %d", bluenoise.ErrInvalidScale, opts.scale)
	}

	var dopts []bluenoise.Option
	if opts.maskPath != "" {
		m, err := bluenoise.LoadMask(opts.maskPath)
		if err != nil {
			return err
		}
		dopts = append(dopts, bluenoise.WithMask(m))
	}
	d := bluenoise.New(dopts...)

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	pool := parallel.NewWorkerPool(opts.workers)
	defer pool.Close()

	jobs := make([]parallel.Job, len(inputs))
	for i, in := range inputs {
		jobs[i] = func(context.Context) error {
			return ditherFile(d, opts, in)
		}
	}

	logger := bluenoise.Logger()
	var failed []error
	for i, err := range pool.Run(ctx, jobs) {
		if err != nil {
			logger.Error("dither failed", "input", inputs[i], "err", err)
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d inputs failed: %w", len(failed), len(inputs), errors.Join(failed...))
	}
	return nil
}

func ditherFile(d *bluenoise.Ditherer, opts options, in string) error {
	img, err := ibuf.Load(in)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	scale := opts.scale
	if opts.blocks {
		scale = 1
	}
	out, err := d.DitherImage(img, scale)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	if opts.blocks {
		out = bluenoise.Replicate(out, opts.scale)
	}

	path := outputPath(in, opts.outDir)
	if err := ibuf.SavePNG(path, out); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	bluenoise.Logger().Info("dithered", "input", in, "output", path, "size", out.Bounds().Size())
	return nil
}

// outputPath maps photo.jpg to photo.dither.png in dir (or alongside the
// input when dir is empty).
func outputPath(in, dir string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ".dither.png"
	if dir == "" {
		dir = filepath.Dir(in)
	}
	return filepath.Join(dir, base)
}
