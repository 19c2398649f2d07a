//go:build cgo

package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/bluenoise/host"
)

func TestKeymap(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want uint8
	}{
		{ebiten.KeyA, 'a'},
		{ebiten.KeyZ, 'z'},
		{ebiten.KeyY, 'y'},
		{ebiten.KeyDigit0, '0'},
		{ebiten.KeyDigit9, '9'},
		{ebiten.KeyArrowUp, host.KeyUpArrow},
		{ebiten.KeyControlLeft, host.KeyFire},
		{ebiten.KeySpace, host.KeyUse},
		{ebiten.KeyEscape, host.KeyEscape},
	}
	for _, tt := range tests {
		if got, ok := keymap[tt.key]; !ok || got != tt.want {
			t.Errorf("keymap[%v] = %#x, %v; want %#x", tt.key, got, ok, tt.want)
		}
	}
}

func TestToggleKeyNotForwarded(t *testing.T) {
	if _, ok := keymap[toggleKey]; ok {
		t.Errorf("keymap contains the dither toggle key %v", toggleKey)
	}
}
