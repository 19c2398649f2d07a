//go:build cgo

package window

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/bluenoise/host"
)

// keymap translates ebiten keys to engine key codes.
var keymap = map[ebiten.Key]uint8{
	ebiten.KeyArrowRight:   host.KeyRightArrow,
	ebiten.KeyArrowLeft:    host.KeyLeftArrow,
	ebiten.KeyArrowUp:      host.KeyUpArrow,
	ebiten.KeyArrowDown:    host.KeyDownArrow,
	ebiten.KeyComma:        host.KeyStrafeLeft,
	ebiten.KeyPeriod:       host.KeyStrafeRight,
	ebiten.KeySpace:        host.KeyUse,
	ebiten.KeyControlLeft:  host.KeyFire,
	ebiten.KeyControlRight: host.KeyFire,
	ebiten.KeyEscape:       host.KeyEscape,
	ebiten.KeyEnter:        host.KeyEnter,
	ebiten.KeyTab:          host.KeyTab,
	ebiten.KeyBackspace:    host.KeyBackspace,
	ebiten.KeyPause:        host.KeyPause,
	ebiten.KeyEqual:        host.KeyEquals,
	ebiten.KeyMinus:        host.KeyMinus,
	ebiten.KeyShiftLeft:    host.KeyRShift,
	ebiten.KeyShiftRight:   host.KeyRShift,
	ebiten.KeyAltLeft:      host.KeyLAlt,
	ebiten.KeyAltRight:     host.KeyRAlt,
	ebiten.KeyF1:           host.KeyF1,
	ebiten.KeyF2:           host.KeyF2,
	ebiten.KeyF3:           host.KeyF3,
	ebiten.KeyF4:           host.KeyF4,
	ebiten.KeyF5:           host.KeyF5,
	ebiten.KeyF6:           host.KeyF6,
	ebiten.KeyF7:           host.KeyF7,
	ebiten.KeyF8:           host.KeyF8,
	ebiten.KeyF9:           host.KeyF9,
	ebiten.KeyF11:          host.KeyF11,
	ebiten.KeyF12:          host.KeyF12,
}

func init() {
	letters := []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	for i, k := range letters {
		keymap[k] = 'a' + uint8(i)
	}
	digits := []ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
		ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	for i, k := range digits {
		keymap[k] = '0' + uint8(i)
	}

	for k := range keymap {
		scanOrder = append(scanOrder, k)
	}
	slices.Sort(scanOrder)
}

// scanOrder lists the mapped keys in a fixed order so that simultaneous
// edges reach the engine deterministically.
var scanOrder []ebiten.Key

// toggleKey switches the dither effect; it is not forwarded to the engine.
const toggleKey = ebiten.KeyF10
