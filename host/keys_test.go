package host

import "testing"

func TestKeyQueueFIFO(t *testing.T) {
	q := NewKeyQueue(4)
	events := []KeyEvent{
		{Pressed: true, Key: KeyUpArrow},
		{Pressed: true, Key: KeyFire},
		{Pressed: false, Key: KeyUpArrow},
	}
	for _, ev := range events {
		if !q.Push(ev) {
			t.Fatalf("Push(%v) = false, want true", ev)
		}
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}

	for i, want := range events {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Errorf("Pop() #%d = %v, %v; want %v, true", i, got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue = true, want false")
	}
}

func TestKeyQueueDropsWhenFull(t *testing.T) {
	q := NewKeyQueue(2)
	q.Push(KeyEvent{Key: 1})
	q.Push(KeyEvent{Key: 2})
	if q.Push(KeyEvent{Key: 3}) {
		t.Error("Push() on full queue = true, want false")
	}

	ev, _ := q.Pop()
	if ev.Key != 1 {
		t.Errorf("Pop().Key = %d, want 1 (oldest kept)", ev.Key)
	}
}

func TestNewKeyQueueDefaultSize(t *testing.T) {
	q := NewKeyQueue(0)
	for i := range DefaultKeyQueueSize {
		if !q.Push(KeyEvent{Key: uint8(i)}) {
			t.Fatalf("Push() #%d = false, want true", i)
		}
	}
	if q.Push(KeyEvent{}) {
		t.Error("Push() beyond default size = true, want false")
	}
}
