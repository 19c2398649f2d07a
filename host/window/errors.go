package window

import "errors"

// ErrNoCgo is returned by Run in builds without cgo.
var ErrNoCgo = errors.New("window: requires cgo (build with CGO_ENABLED=1) or use headless mode")
