// Package frame provides the per-frame scheduling primitive and owned animation loops
// Everything here is driven from a single goroutine; nothing is safe for concurrent use
package frame

import "time"

// Handle identifies a requested frame callback; zero is never issued
type Handle uint64

// Callback runs once on the next flushed frame
type Callback func(now time.Time)

type request struct {
	handle Handle
	fn     Callback
}

// Scheduler queues callbacks for the next display frame, in request order
// Callbacks requested during a flush run on the following frame
type Scheduler struct {
	next    Handle
	queue   []request
	running []request
	frames  uint64
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Request schedules fn for the next flush and returns its handle
func (s *Scheduler) Request(fn Callback) Handle {
	s.next++
	s.queue = append(s.queue, request{handle: s.next, fn: fn})
	return s.next
}

// Cancel removes a pending callback; unknown or already-run handles are ignored
func (s *Scheduler) Cancel(h Handle) {
	if h == 0 {
		return
	}
	for i := range s.queue {
		if s.queue[i].handle == h {
			copy(s.queue[i:], s.queue[i+1:])
			s.queue[len(s.queue)-1] = request{}
			s.queue = s.queue[:len(s.queue)-1]
			return
		}
	}
	// Cancelled from inside a flush: neutralise the entry still waiting to run
	for i := range s.running {
		if s.running[i].handle == h {
			s.running[i].fn = nil
			return
		}
	}
}

// Flush runs every callback queued before the call and returns how many ran
func (s *Scheduler) Flush(now time.Time) int {
	s.frames++
	s.running, s.queue = s.queue, s.running[:0]

	ran := 0
	for i := range s.running {
		fn := s.running[i].fn
		if fn == nil {
			continue
		}
		s.running[i].fn = nil
		fn(now)
		ran++
	}
	s.running = s.running[:0]
	return ran
}

// Pending returns the number of callbacks waiting for the next flush
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Frames returns the number of flushes so far
func (s *Scheduler) Frames() uint64 {
	return s.frames
}
