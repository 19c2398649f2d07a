package host

import (
	"fmt"

	"github.com/gogpu/bluenoise"
)

// Config holds host settings. Start from DefaultConfig and adjust it with
// options or by assignment.
type Config struct {
	// Title is the initial window title, until the engine sets its own.
	Title string

	// Width and Height are the expected engine screen size; the window is
	// sized from them before the engine initializes the display.
	Width  int
	Height int

	// WindowScale multiplies the initial window size.
	WindowScale int

	// Dither starts with the blue-noise effect on.
	Dither bool

	// DitherScale makes every dithered pixel a DitherScale square block.
	DitherScale int

	// Mask overrides the dither mask; nil uses bluenoise.DefaultMask.
	Mask *bluenoise.Mask

	// Overlay draws a status line over each frame.
	Overlay bool

	// TPS is the window's update rate in ticks per second.
	TPS int

	// KeyQueueSize bounds pending key events; extra events are dropped.
	KeyQueueSize int
}

// DefaultConfig returns the default host configuration.
func DefaultConfig() Config {
	return Config{
		Title:        "bluenoise",
		Width:        ResX,
		Height:       ResY,
		WindowScale:  1,
		DitherScale:  1,
		TPS:          60,
		KeyQueueSize: DefaultKeyQueueSize,
	}
}

// Option modifies a Config.
type Option func(*Config)

// NewConfig returns DefaultConfig with opts applied.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTitle sets the initial window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithScreenSize sets the expected engine screen size.
func WithScreenSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithWindowScale sets the initial window magnification.
func WithWindowScale(scale int) Option {
	return func(c *Config) { c.WindowScale = scale }
}

// WithDither turns the dither effect on with the given block scale.
func WithDither(scale int) Option {
	return func(c *Config) {
		c.Dither = true
		c.DitherScale = scale
	}
}

// WithMask sets the dither mask.
func WithMask(m *bluenoise.Mask) Option {
	return func(c *Config) { c.Mask = m }
}

// WithOverlay enables the status line.
func WithOverlay() Option {
	return func(c *Config) { c.Overlay = true }
}

// WithTPS sets the window update rate.
func WithTPS(tps int) Option {
	return func(c *Config) { c.TPS = tps }
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.WindowScale <= 0:
		return fmt.Errorf("%w: window scale %d", ErrInvalidConfig, c.WindowScale)
	case c.DitherScale <= 0:
		return fmt.Errorf("%w: dither scale %d", ErrInvalidConfig, c.DitherScale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.KeyQueueSize <= 0:
		return fmt.Errorf("%w: key queue size %d", ErrInvalidConfig, c.KeyQueueSize)
	}
	return nil
}
