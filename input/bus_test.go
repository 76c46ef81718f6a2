package input

import (
	"strings"
	"testing"
)

func TestBusDispatchAndRemove(t *testing.T) {
	b := NewBus()
	var wheel, touch int

	ws := b.Subscribe(KindWheel, func(ev Event) bool {
		wheel++
		return true
	})
	b.Subscribe(KindTouchStart, func(ev Event) bool {
		touch++
		return false
	})

	if !b.Dispatch(Wheel(100)) {
		t.Error("wheel should be consumed")
	}
	if b.Dispatch(TouchStart(5)) {
		t.Error("touch handler did not consume")
	}
	if b.Dispatch(Resize(10, 10)) {
		t.Error("no handler for resize")
	}
	if wheel != 1 || touch != 1 {
		t.Fatalf("wheel=%d touch=%d", wheel, touch)
	}

	ws.Remove()
	ws.Remove()
	if b.Dispatch(Wheel(100)) || wheel != 1 {
		t.Error("removed handler still called")
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}

	var zero Subscription
	zero.Remove()
}

func TestKindString(t *testing.T) {
	if KindTouchCancel.String() != "touchcancel" {
		t.Errorf("got %q", KindTouchCancel.String())
	}
	if Kind(99).String() != "kind(99)" {
		t.Errorf("got %q", Kind(99).String())
	}
}

func TestBusRemoveDuringDispatch(t *testing.T) {
	b := NewBus()
	var calls []string
	var subA, subC Subscription

	subA = b.Subscribe(KindWheel, func(Event) bool {
		calls = append(calls, "A")
		subA.Remove()
		return false
	})
	b.Subscribe(KindWheel, func(Event) bool {
		calls = append(calls, "B")
		subC.Remove()
		return true
	})
	subC = b.Subscribe(KindWheel, func(Event) bool {
		calls = append(calls, "C")
		return false
	})

	if !b.Dispatch(Wheel(1)) {
		t.Error("B consumed the event")
	}
	if got := strings.Join(calls, ""); got != "AB" {
		t.Errorf("calls = %q, want AB", got)
	}

	calls = nil
	b.Dispatch(Wheel(1))
	if got := strings.Join(calls, ""); got != "B" {
		t.Errorf("second dispatch calls = %q, want B", got)
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestBusRemoveAllDuringDispatch(t *testing.T) {
	b := NewBus()
	var subs []Subscription
	calls := 0
	for range 3 {
		subs = append(subs, b.Subscribe(KindTouchEnd, func(Event) bool {
			calls++
			for _, s := range subs {
				s.Remove()
			}
			return true
		}))
	}
	b.Dispatch(TouchEnd())
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
}
