package host

import "github.com/gogpu/bluenoise"

// Engine key codes. Printable keys use their lowercase ASCII value.
const (
	KeyRightArrow  uint8 = 0xae
	KeyLeftArrow   uint8 = 0xac
	KeyUpArrow     uint8 = 0xad
	KeyDownArrow   uint8 = 0xaf
	KeyStrafeLeft  uint8 = 0xa0
	KeyStrafeRight uint8 = 0xa1
	KeyUse         uint8 = 0xa2
	KeyFire        uint8 = 0xa3
	KeyEscape      uint8 = 27
	KeyEnter       uint8 = 13
	KeyTab         uint8 = 9
	KeyBackspace   uint8 = 0x7f
	KeyPause       uint8 = 0xff
	KeyEquals      uint8 = 0x3d
	KeyMinus       uint8 = 0x2d
	KeyRShift      uint8 = 0x80 + 0x36
	KeyRCtrl       uint8 = 0x80 + 0x1d
	KeyRAlt        uint8 = 0x80 + 0x38
	KeyLAlt        uint8 = KeyRAlt

	KeyF1  uint8 = 0x80 + 0x3b
	KeyF2  uint8 = 0x80 + 0x3c
	KeyF3  uint8 = 0x80 + 0x3d
	KeyF4  uint8 = 0x80 + 0x3e
	KeyF5  uint8 = 0x80 + 0x3f
	KeyF6  uint8 = 0x80 + 0x40
	KeyF7  uint8 = 0x80 + 0x41
	KeyF8  uint8 = 0x80 + 0x42
	KeyF9  uint8 = 0x80 + 0x43
	KeyF10 uint8 = 0x80 + 0x44
	KeyF11 uint8 = 0x80 + 0x57
	KeyF12 uint8 = 0x80 + 0x58
)

// DefaultKeyQueueSize is the KeyQueue capacity used by DefaultConfig.
const DefaultKeyQueueSize = 64

// KeyQueue is a bounded FIFO of key events between the window's event loop
// and the engine. It is safe for one producer and one consumer running
// concurrently.
type KeyQueue struct {
	ch chan KeyEvent
}

// NewKeyQueue returns a queue holding at most size events.
func NewKeyQueue(size int) *KeyQueue {
	if size <= 0 {
		size = DefaultKeyQueueSize
	}
	return &KeyQueue{ch: make(chan KeyEvent, size)}
}

// Push enqueues ev without blocking. It reports false and drops the event
// when the queue is full.
func (q *KeyQueue) Push(ev KeyEvent) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		bluenoise.Logger().Debug("host: key queue full, dropping event", "key", ev.Key, "pressed", ev.Pressed)
		return false
	}
}

// Pop dequeues the oldest event without blocking.
func (q *KeyQueue) Pop() (KeyEvent, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return KeyEvent{}, false
	}
}

// Len returns the number of queued events.
func (q *KeyQueue) Len() int {
	return len(q.ch)
}
