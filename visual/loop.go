package visual

// FrameScheduler schedules callbacks on the host's display refresh.
type FrameScheduler interface {
	// RequestFrame schedules fn for the next refresh and returns a handle.
	// fn receives the frame timestamp in milliseconds.
	RequestFrame(fn func(ts float64)) int
	// CancelFrame cancels a pending request.
	CancelFrame(id int)
}

// Loop is the animation loop controller. Every tick checks that the loop is
// still running before doing anything, then schedules its successor, then
// steps. Stop takes effect synchronously.
type Loop struct {
	sched   FrameScheduler
	step    func(dt, now float64)
	running bool
	pending int
	last    float64
	frames  int
}

// NewLoop creates a stopped loop calling step with the elapsed seconds and
// the frame timestamp.
func NewLoop(sched FrameScheduler, step func(dt, now float64)) *Loop {
	return &Loop{sched: sched, step: step}
}

// Start begins ticking; now is the current timestamp in milliseconds.
func (l *Loop) Start(now float64) {
	if l.running {
		return
	}
	l.running = true
	l.last = now
	l.pending = l.sched.RequestFrame(l.tick)
}

// Stop cancels the pending frame. A tick already in progress finishes, but
// nothing is scheduled after it.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.CancelFrame(l.pending)
	l.pending = 0
}

// Running reports whether the loop is ticking.
func (l *Loop) Running() bool {
	return l.running
}

// Frames returns the number of steps taken.
func (l *Loop) Frames() int {
	return l.frames
}

func (l *Loop) tick(ts float64) {
	if !l.running {
		return
	}
	l.pending = l.sched.RequestFrame(l.tick)

	dt := (ts - l.last) / 1000
	if dt < 0 {
		dt = 0
	}
	l.last = ts
	l.frames++
	l.step(dt, ts)
}
