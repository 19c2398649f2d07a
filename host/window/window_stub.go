//go:build !cgo

package window

import (
	"context"

	"github.com/gogpu/bluenoise/host"
)

// Run reports ErrNoCgo: the ebiten window needs cgo on this platform.
func Run(context.Context, host.Engine, host.Config) error {
	return ErrNoCgo
}
