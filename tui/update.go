package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jackchuka/toasts/toast"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.overButton(msg.X, msg.Y) && !m.overToasts(msg.X, msg.Y) {
			m.showSentence()
		}
		return m, m.forward(msg)

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn("clipboard write failed", "err", msg.err)
			toast.ShowText("Copy failed: " + msg.err.Error())
		} else {
			toast.ShowText("Copied to clipboard")
		}
		return m, nil
	}

	return m, m.forward(msg)
}

// forward hands a message to the display, if one is mounted.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	if m.display == nil {
		return nil
	}
	_, cmd := m.display.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay, any key closes
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Show):
		m.showSentence()

	case key.Matches(msg, m.keys.Dynamic):
		m.showLive()

	case key.Matches(msg, m.keys.Pause):
		if m.display != nil {
			return m, m.display.TogglePause()
		}

	case key.Matches(msg, m.keys.Mount):
		return m, m.toggleMount()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyLast()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}

	return m, nil
}

func (m *Model) overToasts(x, y int) bool {
	return m.display != nil && m.display.Contains(x, y)
}
