// Package window presents host frames in a desktop window using ebiten.
//
// Building the window requires cgo; without it Run returns ErrNoCgo.
package window
