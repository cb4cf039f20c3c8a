package toast

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Instance is a mounted display. Show must not block and must not call back
// into this package's Show.
type Instance interface {
	Show(Content)
}

// ShowMsg asks a Manager to add a toast from inside the update loop.
type ShowMsg struct {
	Content Content
}

var (
	queueMu  sync.Mutex
	pending  []Content
	instance Instance
)

// Show hands content to the mounted display, or buffers it until a display
// mounts. It is safe to call from any goroutine. A mounted display picks the
// content up on its next update, even when Show is called from inside the
// update loop. Code inside the loop can call Manager.Add to add it in the
// same pass, or return ShowCmd to route it through a message.
func Show(c Content) {
	queueMu.Lock()
	defer queueMu.Unlock()

	if instance != nil {
		instance.Show(c)
		return
	}
	pending = append(pending, c)
}

func ShowText(s string) {
	Show(Text(s))
}

// ShowCmd is the in-loop alternative to Show for code that already returns
// commands.
func ShowCmd(c Content) tea.Cmd {
	return func() tea.Msg {
		return ShowMsg{Content: c}
	}
}

// Pending reports how many requests are waiting for a display.
func Pending() int {
	queueMu.Lock()
	defer queueMu.Unlock()
	return len(pending)
}

// Register makes inst the active display and flushes buffered requests into
// it in arrival order.
func Register(inst Instance) {
	queueMu.Lock()
	defer queueMu.Unlock()

	instance = inst
	for _, c := range pending {
		inst.Show(c)
	}
	pending = nil
}

// Deregister clears the active display if it is inst. Later calls to Show
// are buffered again.
func Deregister(inst Instance) {
	deregister(inst, nil)
}

// deregister puts requests the display accepted but never handled back at
// the head of the buffer.
func deregister(inst Instance, unhandled func() []Content) {
	queueMu.Lock()
	defer queueMu.Unlock()

	if instance != inst {
		return
	}
	instance = nil
	if unhandled != nil {
		pending = append(unhandled(), pending...)
	}
}
