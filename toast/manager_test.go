package toast

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_SchedulesHideTimer(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	cmd := m.Add(Text("hello"))
	require.NotNil(t, cmd)

	ts := m.Toasts()
	require.Len(t, ts, 1)
	assert.False(t, ts[0].Hiding)
	assert.True(t, ts[0].TimerRunning())

	d, ok := hideDelay(m, ts[0])
	require.True(t, ok)
	assert.Equal(t, 4*time.Second, d)
}

func TestAdd_IDsStrictlyIncrease(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	for i := 0; i < 5; i++ {
		m.Add(Text(fmt.Sprintf("toast %d", i)))
	}

	ts := m.Toasts()
	for i := 1; i < len(ts); i++ {
		assert.Greater(t, ts[i].ID, ts[i-1].ID)
	}
}

func TestAdd_IDsNotReusedAcrossDisplays(t *testing.T) {
	m1, _ := newTestManager(t, DefaultOptions())
	m1.Add(Text("a"))
	last := m1.Toasts()[0].ID
	m1.Close()

	m2 := New(DefaultOptions())
	t.Cleanup(m2.Close)
	m2.Add(Text("b"))
	assert.Greater(t, m2.Toasts()[0].ID, last)
}

func TestAdd_CapacityEvictsOldest(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())

	for _, s := range []string{"A", "B", "C", "D"} {
		m.Add(Text(s))
	}

	ts := m.Toasts()
	require.Len(t, ts, 4)
	assert.True(t, ts[0].Hiding, "A should be hiding")
	assert.Equal(t, clock.now, ts[0].HidingSince)
	assert.False(t, ts[0].TimerRunning(), "evicted toast keeps no timer")
	for _, tt := range ts[1:] {
		assert.False(t, tt.Hiding)
	}
	assert.Equal(t, 3, m.Active())
}

func TestAdd_ActiveNeverExceedsCapacity(t *testing.T) {
	opts := DefaultOptions()
	opts.Capacity = 2
	m, clock := newTestManager(t, opts)

	for i := 0; i < 12; i++ {
		m.Add(Text(fmt.Sprintf("t%d", i)))
		assert.LessOrEqual(t, m.Active(), 2)
		advance(m, clock, 300*time.Millisecond)
	}
}

func TestAdd_CapacityCountsOnlyActive(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	m.Add(Text("A"))
	m.Add(Text("B"))
	m.Add(Text("C"))
	// B hides on its own; the sequence now holds A, B(hiding), C
	m.Hide(m.Toasts()[1].ID)
	m.Add(Text("D"))

	ts := m.Toasts()
	assert.False(t, ts[0].Hiding, "A still fits within capacity")
	assert.True(t, ts[1].Hiding)
	assert.Equal(t, 3, m.Active())

	m.Add(Text("E"))
	ts = m.Toasts()
	assert.True(t, ts[0].Hiding, "A is now the oldest excess active toast")
	assert.Equal(t, 3, m.Active())
}

func TestScenario_CapacityThenTimeouts(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())
	start := clock.now

	for _, s := range []string{"A", "B", "C", "D"} {
		m.Add(Text(s))
	}

	advance(m, clock, 700*time.Millisecond)
	require.Len(t, m.Toasts(), 4, "A stays for the grace period")

	advance(m, clock, 300*time.Millisecond)
	ts := m.Toasts()
	require.Len(t, ts, 3, "sweep removes A")
	assert.Equal(t, "B", ts[0].Content.Resolve())

	advance(m, clock, 3*time.Second-time.Millisecond)
	assert.Equal(t, 3, m.Active())

	advance(m, clock, time.Millisecond)
	ts = m.Toasts()
	require.Len(t, ts, 3)
	for _, tt := range ts {
		assert.True(t, tt.Hiding)
		assert.Equal(t, start.Add(4*time.Second), tt.HidingSince)
	}

	advance(m, clock, time.Second)
	assert.Empty(t, m.Toasts())
}

func TestSweep_RespectsGraceForLateHides(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())

	m.Add(Text("X"))
	m.Add(Text("Y"))
	ts := m.Toasts()

	m.Hide(ts[0].ID)
	advance(m, clock, 500*time.Millisecond)
	m.Hide(ts[1].ID)

	// X's sweep fires 500ms after Y started hiding
	advance(m, clock, 500*time.Millisecond)
	left := m.Toasts()
	require.Len(t, left, 1)
	assert.Equal(t, ts[1].ID, left[0].ID)

	advance(m, clock, 500*time.Millisecond)
	assert.Empty(t, m.Toasts())
}

func TestSweep_DelayShorterThanGrace(t *testing.T) {
	opts := DefaultOptions()
	opts.SweepDelay = 500 * time.Millisecond
	opts.HideGrace = 700 * time.Millisecond
	m, clock := newTestManager(t, opts)

	assert.Equal(t, 700*time.Millisecond, m.Options().SweepDelay)

	m.Add(Text("A"))
	m.Hide(m.Toasts()[0].ID)

	advance(m, clock, 699*time.Millisecond)
	require.Len(t, m.Toasts(), 1)

	advance(m, clock, time.Millisecond)
	assert.Empty(t, m.Toasts())
}

func TestHide_CancelsTimerAndIsIdempotent(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())

	m.Add(Text("A"))
	id := m.Toasts()[0].ID

	require.NotNil(t, m.Hide(id))
	first := m.Toasts()[0]
	assert.True(t, first.Hiding)
	assert.False(t, first.TimerRunning())

	advance(m, clock, 100*time.Millisecond)
	assert.Nil(t, m.Hide(id))
	assert.Equal(t, first.HidingSince, m.Toasts()[0].HidingSince)

	assert.Nil(t, m.Hide(9999))
}

func TestScenario_PauseHoldsToast(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())

	m.Add(Text("A"))
	advance(m, clock, time.Second)

	m.Pause()
	assert.True(t, m.Paused())
	assert.False(t, m.Toasts()[0].TimerRunning())

	advance(m, clock, time.Hour)
	require.Len(t, m.Toasts(), 1)
	assert.False(t, m.Toasts()[0].Hiding)

	require.NotNil(t, m.Resume())
	assert.False(t, m.Paused())
	d, ok := hideDelay(m, m.Toasts()[0])
	require.True(t, ok)
	assert.Equal(t, 4*time.Second, d)

	advance(m, clock, 4*time.Second-time.Millisecond)
	assert.False(t, m.Toasts()[0].Hiding)
	advance(m, clock, time.Millisecond)
	assert.True(t, m.Toasts()[0].Hiding)
}

func TestResume_StaggersByIndex(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	for _, s := range []string{"A", "B", "C", "D"} {
		m.Add(Text(s))
	}
	m.Pause()
	m.Resume()

	ts := m.Toasts()
	assert.False(t, ts[0].TimerRunning(), "hiding toasts get no timer")

	for i := 1; i < len(ts); i++ {
		d, ok := hideDelay(m, ts[i])
		require.True(t, ok)
		assert.Equal(t, 4*time.Second+time.Duration(i)*100*time.Millisecond, d, "toast %d", i)
	}
}

func TestResume_ReplacesRunningTimer(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	m.Add(Text("A"))
	before := m.timers.len()
	m.Resume()

	assert.Equal(t, before, m.timers.len(), "no second timer for the same toast")
}

func TestPause_NewToastsWaitForResume(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())

	m.Pause()
	m.Add(Text("A"))
	assert.False(t, m.Toasts()[0].TimerRunning())

	advance(m, clock, time.Minute)
	assert.False(t, m.Toasts()[0].Hiding)

	m.Resume()
	assert.True(t, m.Toasts()[0].TimerRunning())
}

func TestTogglePause(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())
	m.Add(Text("A"))

	assert.Nil(t, m.TogglePause())
	assert.True(t, m.Paused())

	assert.NotNil(t, m.TogglePause())
	assert.False(t, m.Paused())
}

func TestRestart_RestartsTimers(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())

	m.Add(Text("A"))
	advance(m, clock, 3*time.Second)
	m.Restart()

	advance(m, clock, 3*time.Second)
	assert.False(t, m.Toasts()[0].Hiding, "timer started over")
	advance(m, clock, time.Second)
	assert.True(t, m.Toasts()[0].Hiding)
}

func TestDelayedUpdate_Coalesces(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())

	v := m.Version()
	require.NotNil(t, m.delayedUpdate())
	assert.Nil(t, m.delayedUpdate())
	assert.Equal(t, 1, m.timers.len())
	assert.Equal(t, v, m.Version())

	advance(m, clock, 0)
	assert.Equal(t, v+1, m.Version())
	assert.False(t, m.updatePending)

	assert.NotNil(t, m.delayedUpdate())
}

func TestVersion_BumpsOnChanges(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	v := m.Version()
	m.Add(Text("A"))
	assert.Greater(t, m.Version(), v)

	v = m.Version()
	m.Hide(m.Toasts()[0].ID)
	assert.Greater(t, m.Version(), v)
}

func TestMeasure_RecordsHeightAndRerenders(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())

	m.Add(Text("hello"))
	assert.Equal(t, 0, m.Toasts()[0].Height)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.NotNil(t, cmd)
	assert.Equal(t, 3, m.Toasts()[0].Height)
	assert.True(t, m.updatePending)

	v := m.Version()
	advance(m, clock, 0)
	assert.Equal(t, v+1, m.Version())

	// same size, same height: nothing to do
	_, cmd = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	assert.False(t, m.updatePending)
}

func TestMeasure_NarrowScreenGrowsToast(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	m.Add(Text("the quick brown fox jumps over the lazy dog and keeps running"))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	wide := m.Toasts()[0].Height

	m.Update(tea.WindowSizeMsg{Width: 24, Height: 30})
	assert.Greater(t, m.Toasts()[0].Height, wide)
}

func TestApplyPositions_NewestClosestToEdge(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	m.Add(Text("one"))
	m.Add(Text("two\nlines"))
	m.Add(Text("three"))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.applyPositions()

	ts := m.Toasts()
	require.Equal(t, []int{3, 4, 3}, []int{ts[0].Height, ts[1].Height, ts[2].Height})
	assert.Equal(t, 1, ts[2].Offset)
	assert.Equal(t, 4, ts[1].Offset)
	assert.Equal(t, 8, ts[0].Offset)
}

func TestApplyPositions_HidingOffsetFrozen(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	m.Add(Text("one"))
	m.Add(Text("two"))
	m.Add(Text("three"))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.applyPositions()

	newest := m.Toasts()[2]
	m.Hide(newest.ID)
	m.applyPositions()

	ts := m.Toasts()
	assert.Equal(t, newest.Offset, ts[2].Offset, "hiding toast keeps its offset")
	assert.Equal(t, 1, ts[1].Offset)
	assert.Equal(t, 4, ts[0].Offset)
}

func TestApplyPositions_UnmeasuredToastsTakeNoSpace(t *testing.T) {
	opts := DefaultOptions()
	opts.BaseMargin = 2
	m, _ := newTestManager(t, opts)

	m.Add(Text("one"))
	m.Add(Text("two"))
	m.applyPositions()

	for _, tt := range m.Toasts() {
		assert.Equal(t, 2, tt.Offset)
	}
}

func TestMount_FlushesBufferedInOrder(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	ShowText("first")
	ShowText("second")
	Show(Dynamic(func() string { return "third" }))
	require.Equal(t, 3, Pending())

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.True(t, m.Mounted())
	assert.Equal(t, 0, Pending())

	msg := cmd()
	assert.Equal(t, inboxMsg{owner: m.timers.owner}, msg)
	m.Update(msg)

	ts := m.Toasts()
	require.Len(t, ts, 3)
	assert.Equal(t, "first", ts[0].Content.Resolve())
	assert.Equal(t, "second", ts[1].Content.Resolve())
	assert.Equal(t, "third", ts[2].Content.Resolve())
	assert.Less(t, ts[0].ID, ts[1].ID)
	assert.Less(t, ts[1].ID, ts[2].ID)
}

func TestMount_ForwardsLiveShows(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())
	m.Init()

	ShowText("live")
	assert.Equal(t, 0, Pending())
	assert.Equal(t, 0, m.Len(), "nothing changes outside the update loop")

	m.Update(inboxMsg{owner: m.timers.owner})
	assert.Equal(t, 1, m.Len())
}

func TestShow_FromUpdateLoopLandsOnNextUpdate(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())
	cmd := m.Init()
	require.NotNil(t, cmd)

	ShowText("deferred")
	m.Add(Text("direct"))
	require.Equal(t, 1, m.Len())

	// the listen cmd wakes with the inbox message
	msg := cmd()
	require.Equal(t, inboxMsg{owner: m.timers.owner}, msg)
	m.Update(msg)

	ts := m.Toasts()
	require.Len(t, ts, 2)
	assert.Equal(t, "direct", ts[0].Content.Resolve())
	assert.Equal(t, "deferred", ts[1].Content.Resolve())
}

func TestInit_Twice(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())
	require.NotNil(t, m.Init())
	assert.Nil(t, m.Init())
}

func TestClose_CancelsEverything(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())
	m.Init()

	m.Add(Text("A"))
	m.Add(Text("B"))
	m.Hide(m.Toasts()[0].ID)
	m.delayedUpdate()
	require.Greater(t, m.timers.len(), 0)

	m.Close()
	assert.Equal(t, 0, m.timers.len())
	assert.False(t, m.Mounted())

	advance(m, clock, time.Hour)
	assert.Len(t, m.Toasts(), 2)
	assert.False(t, m.Toasts()[1].Hiding)

	ShowText("after close")
	assert.Equal(t, 1, Pending())

	assert.Nil(t, m.Init(), "closed displays stay closed")
	m.Close()
}

func TestClose_ListenReturns(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Close()

	assert.Nil(t, cmd())
}

func TestClose_ReturnsUnhandledToBuffer(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())
	m.Init()

	ShowText("accepted but not drained")
	m.Close()

	assert.Equal(t, 1, Pending())
}

func TestUpdate_IgnoresForeignMessages(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())
	other := New(DefaultOptions())
	t.Cleanup(other.Close)

	m.Add(Text("A"))
	id := m.Toasts()[0].hideTimer

	other.Update(timerMsg{owner: m.timers.owner, id: id})
	m.Update(timerMsg{owner: other.timers.owner, id: id})

	assert.False(t, m.Toasts()[0].Hiding)
	assert.True(t, m.Toasts()[0].TimerRunning())
}

func TestUpdate_ShowMsg(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())

	m.Update(ShowMsg{Content: Text("via msg")})
	require.Equal(t, 1, m.Len())
	assert.Equal(t, "via msg", m.Toasts()[0].Content.Resolve())
}

func TestMouse_HoverPausesAndLeaveResumes(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Add(Text("A"))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	// box is 44 wide, 3 tall, 2 columns from the right, 1 row up
	assert.True(t, m.Contains(54, 26))
	assert.True(t, m.Contains(97, 28))
	assert.False(t, m.Contains(53, 27))
	assert.False(t, m.Contains(60, 29))

	m.Update(tea.MouseMsg{X: 60, Y: 27, Action: tea.MouseActionMotion})
	assert.True(t, m.Paused())
	assert.False(t, m.Toasts()[0].TimerRunning())

	m.Update(tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionMotion})
	assert.False(t, m.Paused())
	assert.True(t, m.Toasts()[0].TimerRunning())
}

func TestContains_BeforeFirstMeasure(t *testing.T) {
	m, _ := newTestManager(t, DefaultOptions())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	// Add outside Update: no measurement has run yet
	m.Add(Text("A"))
	require.Zero(t, m.Toasts()[0].Height)

	assert.True(t, m.Contains(54, 28))
	assert.True(t, m.Contains(97, 26))
	assert.False(t, m.Contains(53, 28))
	assert.False(t, m.Contains(98, 28))
}

func TestMouse_ClickRestartsTimers(t *testing.T) {
	m, clock := newTestManager(t, DefaultOptions())
	m.Add(Text("A"))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	advance(m, clock, 3*time.Second)
	m.Update(tea.MouseMsg{X: 60, Y: 27, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, m.Paused(), "click resumes even while hovering")
	d, ok := hideDelay(m, m.Toasts()[0])
	require.True(t, ok)
	assert.Equal(t, 4*time.Second, d)

	advance(m, clock, 3*time.Second)
	assert.False(t, m.Toasts()[0].Hiding)
}

func TestMouse_ClickIgnoredWhenDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.ClickRestarts = false
	m, _ := newTestManager(t, opts)
	m.Add(Text("A"))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(tea.MouseMsg{X: 60, Y: 27, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.Paused(), "only the hover applies")
}

func TestOptions_Normalize(t *testing.T) {
	got := Options{Stagger: -1, HideGrace: -1, BaseMargin: -3, Width: 2}.normalize()
	d := DefaultOptions()

	assert.Equal(t, d.HideTimeout, got.HideTimeout)
	assert.Equal(t, time.Duration(0), got.Stagger)
	assert.Equal(t, d.SweepDelay, got.SweepDelay)
	assert.Equal(t, time.Duration(0), got.HideGrace)
	assert.Equal(t, d.Capacity, got.Capacity)
	assert.Equal(t, 0, got.BaseMargin)
	assert.Equal(t, d.Width, got.Width)

	got = Options{SweepDelay: 200 * time.Millisecond, HideGrace: time.Second}.normalize()
	assert.Equal(t, time.Second, got.SweepDelay)
}
