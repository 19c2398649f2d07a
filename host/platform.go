package host

import (
	"context"
	"errors"
)

// Engine screen buffer size.
const (
	ResX = 640
	ResY = 400
)

// Errors returned by Platform implementations.
var (
	// ErrNotInitialized is returned when a frame is submitted before
	// InitializeDisplay.
	ErrNotInitialized = errors.New("host: display not initialized")

	// ErrFrameSize is returned when a frame does not match the display size.
	ErrFrameSize = errors.New("host: frame size mismatch")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("host: invalid config")
)

// KeyEvent is a key transition in engine key codes.
type KeyEvent struct {
	Pressed bool
	Key     uint8
}

// Platform is the set of callbacks an engine needs from its host.
// All methods are called from the engine goroutine.
type Platform interface {
	// InitializeDisplay prepares a width by height screen buffer.
	InitializeDisplay(width, height int) error

	// SubmitFrame displays buf, width*height pixels in 0xAARRGGBB order
	// where AA is transparency (0 = opaque).
	SubmitFrame(buf []uint32, width, height int) error

	// PollKey returns the next pending key event, if any.
	PollKey() (KeyEvent, bool)

	// SetTitle sets the window title from a NUL-terminated code page 437
	// byte string.
	SetTitle(title []byte)

	// ElapsedMillis returns milliseconds since the platform started,
	// wrapping at 2^32.
	ElapsedMillis() uint32

	// Sleep blocks for ms milliseconds.
	Sleep(ms uint32)
}

// Engine is a framebuffer game loop driven through a Platform.
// Run returns when the engine quits or ctx is cancelled.
type Engine interface {
	Run(ctx context.Context, p Platform) error
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, p Platform) error

// Run calls f(ctx, p).
func (f EngineFunc) Run(ctx context.Context, p Platform) error {
	return f(ctx, p)
}
