package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	colorCyan = lipgloss.Color("73")
	colorGold = lipgloss.Color("220")
	colorFg   = lipgloss.Color("253")
	colorDim  = lipgloss.Color("242")
	colorGone = lipgloss.Color("238")

	styleToastBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorCyan).
			Foreground(colorFg).
			Padding(0, 1)

	styleToastPaused = styleToastBox.BorderForeground(colorGold)

	styleToastHiding = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorGone).
				Foreground(colorDim).
				Padding(0, 1)

	styleFaded = lipgloss.NewStyle().Foreground(colorDim)
)

func (m *Manager) renderToast(t *Toast) string {
	if t.Content.IsDynamic() {
		s := t.Content.Resolve()
		if t.Hiding {
			s = styleFaded.Render(ansi.Strip(s))
		}
		return s
	}

	style := styleToastBox
	switch {
	case t.Hiding:
		style = styleToastHiding
	case m.paused:
		style = styleToastPaused
	}
	// Width excludes the two border columns.
	return style.Width(m.boxWidth() - 2).Render(t.Content.Resolve())
}

// View renders the stack on its own, bottom row last. It is empty when there
// are no toasts unless Options.RenderEmpty is set.
func (m *Manager) View() string {
	if len(m.toasts) == 0 {
		if m.opts.RenderEmpty {
			return strings.Repeat(" ", m.boxWidth())
		}
		return ""
	}

	ps := m.placements()
	x0, y0 := ps[0].x, ps[0].y
	x1, y1 := x0, y0
	for _, p := range ps {
		x0 = min(x0, p.x)
		y0 = min(y0, p.y)
		x1 = max(x1, p.x+lipgloss.Width(p.box))
		y1 = max(y1, p.y+lipgloss.Height(p.box))
	}

	canvas := blank(x1-x0, y1-y0)
	for _, p := range ps {
		canvas = placeOverlay(p.x-x0, p.y-y0, p.box, canvas)
	}
	return canvas
}

// Overlay draws the stack over bg, anchored to the bottom-right corner.
// bg should be the full screen as sized by the last tea.WindowSizeMsg.
// With no toasts bg comes back unchanged, whatever Options.RenderEmpty says.
func (m *Manager) Overlay(bg string) string {
	for _, p := range m.placements() {
		bg = placeOverlay(p.x, p.y, p.box, bg)
	}
	return bg
}

func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// placeOverlay writes fg on top of bg at the given column (x) and row (y).
func placeOverlay(x, y int, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	if x < 0 {
		x = 0
	}

	for i, fgLine := range fgLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLine := bgLines[bgIdx]
		fgW := ansi.StringWidth(fgLine)
		bgW := ansi.StringWidth(bgLine)

		if x >= bgW {
			bgLines[bgIdx] = bgLine + strings.Repeat(" ", x-bgW) + fgLine
			continue
		}

		left := ansi.Cut(bgLine, 0, x)
		var right string
		if x+fgW < bgW {
			right = ansi.Cut(bgLine, x+fgW, bgW)
		}
		bgLines[bgIdx] = left + fgLine + right
	}
	return strings.Join(bgLines, "\n")
}
