package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type timerMsg struct {
	owner uint64
	id    int
}

type timer struct {
	fn    func() tea.Cmd
	delay time.Duration
	due   time.Time
}

// timerSet holds every pending callback of one Manager. A timer is a
// tea.Tick that reports back by id; ids missing from the set were canceled
// and their messages are dropped, so cancel is safe to repeat or to call
// after the timer fired.
type timerSet struct {
	owner  uint64
	nextID int
	live   map[int]*timer
	now    func() time.Time
}

func newTimerSet(owner uint64, now func() time.Time) *timerSet {
	return &timerSet{
		owner: owner,
		live:  make(map[int]*timer),
		now:   now,
	}
}

func (s *timerSet) schedule(d time.Duration, fn func() tea.Cmd) (int, tea.Cmd) {
	s.nextID++
	id := s.nextID
	s.live[id] = &timer{fn: fn, delay: d, due: s.now().Add(d)}

	msg := timerMsg{owner: s.owner, id: id}
	if d <= 0 {
		return id, func() tea.Msg { return msg }
	}
	return id, tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

func (s *timerSet) cancel(id int) {
	delete(s.live, id)
}

func (s *timerSet) fire(id int) tea.Cmd {
	t, ok := s.live[id]
	if !ok {
		return nil
	}
	delete(s.live, id)
	return t.fn()
}

func (s *timerSet) reset() {
	clear(s.live)
}

func (s *timerSet) len() int {
	return len(s.live)
}
