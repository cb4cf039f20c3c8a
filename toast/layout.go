package toast

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth    = 12
	rightMargin = 2
)

// applyPositions stacks active toasts upward from the bottom, newest first.
// Hiding toasts are skipped so they fade where they were and don't hold
// space for the toasts above them.
func (m *Manager) applyPositions() {
	offset := m.opts.BaseMargin
	for i := len(m.toasts) - 1; i >= 0; i-- {
		t := m.toasts[i]
		if t.Hiding {
			continue
		}
		t.Offset = offset
		offset += t.Height
	}
}

// measure records the rendered size of every toast. A changed height means
// the offsets used for the last render were wrong, so another render is
// requested.
func (m *Manager) measure() tea.Cmd {
	if m.closed {
		return nil
	}

	changed := false
	for _, t := range m.toasts {
		if h := lipgloss.Height(m.renderToast(t)); h != t.Height {
			t.Height = h
			changed = true
		}
	}
	if changed {
		return m.delayedUpdate()
	}
	return nil
}

func (m *Manager) boxWidth() int {
	w := m.opts.Width
	if m.width > 0 && w > m.width-2*rightMargin {
		w = max(m.width-2*rightMargin, minWidth)
	}
	return w
}

type placement struct {
	x, y int
	box  string
}

// placements returns screen positions for every toast, hiding ones first so
// active toasts are drawn over them.
func (m *Manager) placements() []placement {
	m.applyPositions()

	out := make([]placement, 0, len(m.toasts))
	for _, pass := range []bool{true, false} {
		for _, t := range m.toasts {
			if t.Hiding != pass {
				continue
			}
			box := m.renderToast(t)
			out = append(out, placement{
				x:   m.width - rightMargin - lipgloss.Width(box),
				y:   m.height - t.Offset - lipgloss.Height(box),
				box: box,
			})
		}
	}
	return out
}

// Contains reports whether the cell at x, y is inside the toast stack.
func (m *Manager) Contains(x, y int) bool {
	if m.width == 0 || len(m.toasts) == 0 {
		return false
	}

	ps := m.placements()
	x0, y0 := ps[0].x, ps[0].y
	x1 := x0
	for _, p := range ps {
		x0 = min(x0, p.x)
		y0 = min(y0, p.y)
		x1 = max(x1, p.x+lipgloss.Width(p.box))
	}
	y1 := m.height - m.opts.BaseMargin

	return x >= x0 && x < x1 && y >= y0 && y < y1
}
