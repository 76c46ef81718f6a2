// Package input turns platform pointer streams into progress targets
// Frontends translate native events into Event values and dispatch them on a Bus
package input

import "fmt"

// Kind identifies the event stream an Event belongs to
type Kind uint8

const (
	KindNone Kind = iota
	KindWheel
	KindTouchStart
	KindTouchMove
	KindTouchEnd
	KindTouchCancel
	KindResize
)

var kindNames = [...]string{"none", "wheel", "touchstart", "touchmove", "touchend", "touchcancel", "resize"}

// String returns the event kind name
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Event is a platform-neutral input event, all distances in px
type Event struct {
	Kind Kind

	// DeltaY is the wheel delta, positive scrolls forward
	DeltaY float64

	// X is the touch position; HasX is false when the platform supplied none
	X    float64
	HasX bool

	// Width and Height describe the viewport on resize
	Width, Height float64
}

// Wheel builds a wheel event
func Wheel(deltaY float64) Event {
	return Event{Kind: KindWheel, DeltaY: deltaY}
}

// TouchStart builds a touch-start event at x
func TouchStart(x float64) Event {
	return Event{Kind: KindTouchStart, X: x, HasX: true}
}

// TouchMove builds a touch-move event at x
func TouchMove(x float64) Event {
	return Event{Kind: KindTouchMove, X: x, HasX: true}
}

// TouchEnd builds a release without a final coordinate
func TouchEnd() Event {
	return Event{Kind: KindTouchEnd}
}

// TouchEndAt builds a release carrying its final coordinate
func TouchEndAt(x float64) Event {
	return Event{Kind: KindTouchEnd, X: x, HasX: true}
}

// TouchCancel builds a cancelled touch sequence
func TouchCancel() Event {
	return Event{Kind: KindTouchCancel}
}

// Resize builds a viewport resize event
func Resize(width, height float64) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}
