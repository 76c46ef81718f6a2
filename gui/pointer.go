package gui

import "github.com/lixenwraith/scrollway/input"

// pointer follows one primary contact (a touch or the left mouse button) across polled ticks
// and emits the touch events the drag navigator expects
type pointer struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	moved  bool
}

// clickSlop is the px distance a press may travel and still count as a click
const clickSlop = 4

// tap is a press released without travelling, located where it went down
// Lifted touches report no position, so the release sample cannot be used
type tap struct {
	x, y float64
}

// poll compares the latest sample against the previous tick
// The release sample's coordinates are ignored
func (p *pointer) poll(down bool, x, y float64) (events []input.Event, click *tap) {
	switch {
	case down && !p.down:
		p.down = true
		p.startX, p.startY, p.lastX = x, y, x
		p.moved = false
		events = append(events, input.TouchStart(x))
	case down && p.down:
		if abs(x-p.startX) > clickSlop || abs(y-p.startY) > clickSlop {
			p.moved = true
		}
		if x != p.lastX {
			p.lastX = x
			events = append(events, input.TouchMove(x))
		}
	case !down && p.down:
		p.down = false
		events = append(events, input.TouchEndAt(p.lastX))
		if !p.moved {
			click = &tap{x: p.startX, y: p.startY}
		}
	}
	return events, click
}

// cancel drops an in-flight contact
func (p *pointer) cancel() []input.Event {
	if !p.down {
		return nil
	}
	p.down = false
	return []input.Event{input.TouchCancel()}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
