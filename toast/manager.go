package toast

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jackchuka/toasts/internal/logging"
)

var (
	// Toast ids are unique for the life of the process, across displays.
	lastToastID atomic.Int64
	lastManager atomic.Uint64
)

type Toast struct {
	ID      int
	Content Content

	// Height is the rendered height in rows, 0 until first measured.
	Height int
	// Offset is the distance in rows from the bottom edge. Hiding toasts
	// keep the offset they had when they started hiding.
	Offset int

	Hiding      bool
	HidingSince time.Time

	hideTimer int // 0 when no auto-hide timer is pending
}

func (t Toast) TimerRunning() bool {
	return t.hideTimer != 0
}

type inboxMsg struct{ owner uint64 }

// Manager is the toast display. All methods except Show must be called from
// the Bubble Tea update loop.
type Manager struct {
	opts    Options
	toasts  []*Toast
	paused  bool
	hovered bool

	timers        *timerSet
	now           func() time.Time
	version       int
	updatePending bool

	width, height int

	inboxMu sync.Mutex
	inbox   []Content
	wake    chan struct{}
	done    chan struct{}

	mounted bool
	closed  bool

	log *logging.Logger
}

func New(opts Options) *Manager {
	m := &Manager{
		opts: opts.normalize(),
		now:  time.Now,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	m.timers = newTimerSet(lastManager.Add(1), func() time.Time { return m.now() })
	m.log = logging.Get().With("component", "toast", "display", m.timers.owner)
	return m
}

// Init mounts the display: it registers as the target of Show and flushes
// anything buffered before it existed. A closed Manager can't be remounted.
func (m *Manager) Init() tea.Cmd {
	if m.mounted || m.closed {
		return nil
	}
	m.mounted = true
	Register(m)
	m.log.Debug("display mounted")
	return m.listen()
}

// Close unmounts the display. Every timer is dropped and Show goes back to
// buffering.
func (m *Manager) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.mounted = false
	m.timers.reset()
	deregister(m, m.takeInbox)
	close(m.done)
	m.log.Debug("display unmounted", "toasts", len(m.toasts))
}

// Show implements Instance. Content lands in an inbox that the update loop
// drains in order.
func (m *Manager) Show(c Content) {
	m.inboxMu.Lock()
	m.inbox = append(m.inbox, c)
	m.inboxMu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}
}

func (m *Manager) takeInbox() []Content {
	m.inboxMu.Lock()
	defer m.inboxMu.Unlock()
	items := m.inbox
	m.inbox = nil
	return items
}

func (m *Manager) listen() tea.Cmd {
	owner := m.timers.owner
	return func() tea.Msg {
		select {
		case <-m.wake:
			return inboxMsg{owner: owner}
		case <-m.done:
			return nil
		}
	}
}

// Drain adds everything Show delivered since the last drain. The update
// loop does this on its own; hosts driving a Manager by hand call it
// directly.
func (m *Manager) Drain() tea.Cmd {
	items := m.takeInbox()
	cmds := make([]tea.Cmd, 0, len(items))
	for _, c := range items {
		cmds = append(cmds, m.Add(c))
	}
	return tea.Batch(cmds...)
}

func (m *Manager) Update(msg tea.Msg) (*Manager, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case timerMsg:
		if msg.owner != m.timers.owner {
			return m, nil
		}
		cmd = m.timers.fire(msg.id)

	case inboxMsg:
		if msg.owner != m.timers.owner {
			return m, nil
		}
		cmd = tea.Batch(m.Drain(), m.listen())

	case ShowMsg:
		cmd = m.Add(msg.Content)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}

	return m, tea.Batch(cmd, m.measure())
}

// Add shows a new toast. If that pushes the number of active toasts over
// capacity, the oldest active ones start hiding right away.
func (m *Manager) Add(c Content) tea.Cmd {
	t := &Toast{
		ID:      int(lastToastID.Add(1)),
		Content: c,
	}

	var cmds []tea.Cmd
	if !m.paused {
		cmds = append(cmds, m.scheduleHide(t, m.opts.HideTimeout))
	}
	m.toasts = append(m.toasts, t)
	m.log.Debug("toast added", "id", t.ID, "paused", m.paused)

	if m.evictOverflow() > 0 {
		cmds = append(cmds, m.lazyCleanUp())
	}

	m.forceUpdate()
	return tea.Batch(cmds...)
}

func (m *Manager) evictOverflow() int {
	excess := m.Active() - m.opts.Capacity
	if excess <= 0 {
		return 0
	}

	now := m.now()
	evicted := 0
	for _, t := range m.toasts {
		if evicted == excess {
			break
		}
		if t.Hiding {
			continue
		}
		m.stopHide(t)
		t.Hiding = true
		t.HidingSince = now
		evicted++
		m.log.Debug("toast evicted", "id", t.ID)
	}
	return evicted
}

// Hide starts hiding the toast with the given id. Unknown ids and toasts
// already hiding are ignored.
func (m *Manager) Hide(id int) tea.Cmd {
	for _, t := range m.toasts {
		if t.ID == id {
			return m.markHide(t)
		}
	}
	return nil
}

func (m *Manager) markHide(t *Toast) tea.Cmd {
	m.stopHide(t)
	if t.Hiding {
		return nil
	}
	t.Hiding = true
	t.HidingSince = m.now()
	m.log.Debug("toast hiding", "id", t.ID)

	m.forceUpdate()
	return m.lazyCleanUp()
}

// Pause stops every auto-hide timer. Toasts added while paused get no timer
// until Resume.
func (m *Manager) Pause() {
	m.paused = true
	for _, t := range m.toasts {
		m.stopHide(t)
	}
	m.log.Debug("paused")
}

// Resume restarts a timer for every active toast. The toast at index i of
// the sequence waits HideTimeout + i*Stagger.
func (m *Manager) Resume() tea.Cmd {
	m.paused = false

	var cmds []tea.Cmd
	for i, t := range m.toasts {
		if t.Hiding {
			continue
		}
		m.stopHide(t)
		cmds = append(cmds, m.scheduleHide(t, m.opts.HideTimeout+time.Duration(i)*m.opts.Stagger))
	}
	m.log.Debug("resumed", "timers", len(cmds))
	return tea.Batch(cmds...)
}

func (m *Manager) TogglePause() tea.Cmd {
	if m.paused {
		return m.Resume()
	}
	m.Pause()
	return nil
}

// Restart is what a click on the stack does: every timer starts over.
func (m *Manager) Restart() tea.Cmd {
	m.Pause()
	return m.Resume()
}

func (m *Manager) scheduleHide(t *Toast, d time.Duration) tea.Cmd {
	id, cmd := m.timers.schedule(d, func() tea.Cmd {
		t.hideTimer = 0
		return m.markHide(t)
	})
	t.hideTimer = id
	return cmd
}

func (m *Manager) stopHide(t *Toast) {
	if t.hideTimer != 0 {
		m.timers.cancel(t.hideTimer)
		t.hideTimer = 0
	}
}

// lazyCleanUp schedules a sweep. Sweeps aren't deduplicated; running one
// more than needed removes nothing extra.
func (m *Manager) lazyCleanUp() tea.Cmd {
	_, cmd := m.timers.schedule(m.opts.SweepDelay, m.sweep)
	return cmd
}

func (m *Manager) sweep() tea.Cmd {
	limit := m.now().Add(-m.opts.HideGrace)

	kept := make([]*Toast, 0, len(m.toasts))
	for _, t := range m.toasts {
		if t.Hiding && !t.HidingSince.After(limit) {
			continue
		}
		kept = append(kept, t)
	}
	if removed := len(m.toasts) - len(kept); removed > 0 {
		m.log.Debug("swept", "removed", removed, "left", len(kept))
	}
	m.toasts = kept

	m.forceUpdate()
	return nil
}

func (m *Manager) forceUpdate() {
	m.version++
}

// delayedUpdate coalesces re-render requests made in the same tick.
func (m *Manager) delayedUpdate() tea.Cmd {
	if m.updatePending {
		return nil
	}
	m.updatePending = true
	_, cmd := m.timers.schedule(0, func() tea.Cmd {
		m.updatePending = false
		m.forceUpdate()
		return nil
	})
	return cmd
}

func (m *Manager) handleMouse(msg tea.MouseMsg) tea.Cmd {
	inside := m.Contains(msg.X, msg.Y)

	var cmds []tea.Cmd
	switch {
	case inside && !m.hovered:
		m.hovered = true
		m.Pause()
	case !inside && m.hovered:
		m.hovered = false
		cmds = append(cmds, m.Resume())
	}

	if inside && m.opts.ClickRestarts &&
		msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		cmds = append(cmds, m.Restart())
	}

	return tea.Batch(cmds...)
}

// Toasts returns a copy of the current sequence, oldest first.
func (m *Manager) Toasts() []Toast {
	out := make([]Toast, len(m.toasts))
	for i, t := range m.toasts {
		out[i] = *t
	}
	return out
}

// Active counts toasts that are not hiding.
func (m *Manager) Active() int {
	n := 0
	for _, t := range m.toasts {
		if !t.Hiding {
			n++
		}
	}
	return n
}

func (m *Manager) Len() int         { return len(m.toasts) }
func (m *Manager) Paused() bool     { return m.paused }
func (m *Manager) Mounted() bool    { return m.mounted }
func (m *Manager) Options() Options { return m.opts }

// Version increases every time the visible state changes.
func (m *Manager) Version() int { return m.version }
