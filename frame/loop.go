package frame

import "time"

// StepFunc advances an animation by one frame
// Returning false lets the loop idle until it is started again
type StepFunc func(dt time.Duration) bool

// Loop is an owned, cancellable per-frame task
// Start and Stop are idempotent; Stop guarantees no callback stays scheduled
type Loop struct {
	name    string
	sched   *Scheduler
	step    StepFunc
	handle  Handle
	last    time.Time
	stopped bool
}

// NewLoop creates an idle loop on the scheduler
func NewLoop(name string, sched *Scheduler, step StepFunc) *Loop {
	return &Loop{name: name, sched: sched, step: step}
}

// Start schedules the next frame if the loop is idle
// A loop that has been closed stays closed
func (l *Loop) Start() {
	if l.stopped || l.handle != 0 {
		return
	}
	l.handle = l.sched.Request(l.run)
}

// Stop cancels any pending frame; the loop can be started again
func (l *Loop) Stop() {
	if l.handle != 0 {
		l.sched.Cancel(l.handle)
		l.handle = 0
	}
	l.last = time.Time{}
}

// Close stops the loop permanently
func (l *Loop) Close() {
	l.Stop()
	l.stopped = true
}

// Running reports whether a frame is scheduled
func (l *Loop) Running() bool {
	return l.handle != 0
}

// Name returns the loop name
func (l *Loop) Name() string {
	return l.name
}

func (l *Loop) run(now time.Time) {
	l.handle = 0

	var dt time.Duration
	if !l.last.IsZero() {
		dt = now.Sub(l.last)
	}
	l.last = now

	if l.step(dt) && !l.stopped && l.handle == 0 {
		l.handle = l.sched.Request(l.run)
		return
	}
	if l.handle == 0 {
		l.last = time.Time{}
	}
}
