package toast

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func resetQueue() {
	queueMu.Lock()
	defer queueMu.Unlock()
	pending = nil
	instance = nil
}

func newTestManager(t *testing.T, opts Options) (*Manager, *fakeClock) {
	t.Helper()

	resetQueue()
	t.Cleanup(resetQueue)

	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	m := New(opts)
	m.now = clock.Now
	t.Cleanup(m.Close)
	return m, clock
}

// next returns the earliest pending timer; ties go to the one scheduled first.
func (s *timerSet) next() (int, time.Time, bool) {
	bestID := 0
	var bestDue time.Time
	for id, t := range s.live {
		if bestID == 0 || t.due.Before(bestDue) || (t.due.Equal(bestDue) && id < bestID) {
			bestID, bestDue = id, t.due
		}
	}
	return bestID, bestDue, bestID != 0
}

// advance moves the clock forward by d, delivering every timer that comes
// due on the way in firing order.
func advance(m *Manager, c *fakeClock, d time.Duration) {
	target := c.now.Add(d)
	for {
		id, due, ok := m.timers.next()
		if !ok || due.After(target) {
			break
		}
		if due.After(c.now) {
			c.now = due
		}
		m.Update(timerMsg{owner: m.timers.owner, id: id})
	}
	c.now = target
}

func hideDelay(m *Manager, t Toast) (time.Duration, bool) {
	tm, ok := m.timers.live[t.hideTimer]
	if !ok {
		return 0, false
	}
	return tm.delay, true
}
