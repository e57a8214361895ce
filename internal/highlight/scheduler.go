package highlight

import "time"

// Cancel revokes a scheduled callback. Cancelling an already-fired or
// already-cancelled callback is a no-op.
type Cancel interface {
	Cancel()
}

// Scheduler runs a callback after a delay. The returned Cancel revokes the
// callback if it has not fired yet. Implementations may run the callback on
// another goroutine; Behavior serializes internally.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Cancel
}

type timerScheduler struct{}

// NewTimerScheduler returns the default Scheduler backed by time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(delay time.Duration, fn func()) Cancel {
	return timerCancel{t: time.AfterFunc(delay, fn)}
}

type timerCancel struct {
	t *time.Timer
}

func (c timerCancel) Cancel() {
	c.t.Stop()
}
