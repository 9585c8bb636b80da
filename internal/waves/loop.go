package waves

import "time"

// maxFrameDelta caps the wall-time step fed to the engine. A host that
// was hidden or stalled can go seconds between frames; catching up in
// one step would slingshot the springs.
const maxFrameDelta = 250 * time.Millisecond

// FrameScheduler hands frame callbacks to a host, one at a time. The
// returned cancel drops the pending callback; canceling after the
// callback fired is a no-op.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

// Loop drives an Engine through a FrameScheduler: one Step per
// delivered frame, rearming after each tick. Start and Stop are
// idempotent and the loop can be restarted. The first tick after a
// start only captures a baseline timestamp, so the engine sees a zero
// delta instead of a huge one.
type Loop struct {
	engine *Engine
	sched  FrameScheduler

	running bool
	cancel  func()
	last    time.Time
	hasLast bool
}

// NewLoop couples engine to sched.
func NewLoop(engine *Engine, sched FrameScheduler) *Loop {
	return &Loop{engine: engine, sched: sched}
}

// Start arms the first frame. Starting a running loop does nothing.
func (l *Loop) Start() {
	if l.running || l.sched == nil {
		return
	}
	l.running = true
	l.hasLast = false
	l.cancel = l.sched.RequestFrame(l.tick)
}

// Stop cancels the pending frame. Stopping a stopped loop does
// nothing.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// Running reports whether the loop is armed.
func (l *Loop) Running() bool {
	return l.running
}

func (l *Loop) tick(now time.Time) {
	if !l.running {
		// Frame delivered despite a cancel; drop it.
		return
	}
	var dt float64
	if l.hasLast {
		elapsed := now.Sub(l.last)
		if elapsed < 0 {
			elapsed = 0
		}
		if elapsed > maxFrameDelta {
			elapsed = maxFrameDelta
		}
		dt = elapsed.Seconds()
	}
	l.last = now
	l.hasLast = true

	l.engine.Step(dt)
	l.cancel = l.sched.RequestFrame(l.tick)
}
