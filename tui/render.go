package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jackchuka/toasts/toast"
)

const (
	headerHeight = 2
	footerHeight = 2
	buttonLabel  = "Show Toast"
)

func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	bodyH := m.bodyHeight()

	var body string
	if m.showHelp {
		body = m.renderHelp(bodyH)
	} else {
		body = m.renderBody(bodyH)
	}

	view := m.renderHeader() + "\n" + body + "\n" + m.renderFooter()

	if m.display != nil && !m.showHelp {
		view = m.display.Overlay(view)
	}
	return view
}

func (m *Model) bodyHeight() int {
	return max(m.height-headerHeight-footerHeight, 1)
}

func (m *Model) renderHeader() string {
	title := styleTitle.Render("Toasts")

	var parts []string
	if m.display == nil {
		parts = append(parts, styleWarn.Render(iconPlug+" unmounted"))
	} else {
		if m.display.Paused() {
			parts = append(parts, stylePaused.Render(iconPause+" paused"))
		}
		parts = append(parts, styleDim.Render("visible ")+fmt.Sprintf("%d", m.display.Len()))
	}
	if n := toast.Pending(); n > 0 {
		parts = append(parts, styleDim.Render("queued ")+stylePaused.Render(fmt.Sprintf("%d", n)))
	}
	stats := strings.Join(parts, "  ")

	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(stats), 1)
	line := title + strings.Repeat(" ", gap) + stats
	sep := styleDim.Render(strings.Repeat("─", m.width))

	return line + "\n" + sep
}

// buttonRect is the button's position on screen: x, y, width, height.
func (m *Model) buttonRect() (int, int, int, int) {
	btn := styleButton.Render(buttonLabel)
	bw, bh := lipgloss.Width(btn), lipgloss.Height(btn)
	x := max((m.width-bw)/2, 0)
	y := headerHeight + max((m.bodyHeight()-bh)/2, 0)
	return x, y, bw, bh
}

func (m *Model) overButton(x, y int) bool {
	bx, by, bw, bh := m.buttonRect()
	return x >= bx && x < bx+bw && y >= by && y < by+bh
}

func (m *Model) renderBody(height int) string {
	bx, by, _, _ := m.buttonRect()
	indent := strings.Repeat(" ", bx)

	lines := make([]string, by-headerHeight)
	for _, l := range strings.Split(styleButton.Render(buttonLabel), "\n") {
		lines = append(lines, indent+l)
	}

	hint := "enter or click"
	if m.display == nil {
		hint = "display unmounted, toasts will queue"
	}
	pad := max((m.width-lipgloss.Width(hint))/2, 0)
	lines = append(lines, "", strings.Repeat(" ", pad)+styleDim.Render(hint))

	return padLines(strings.Join(lines, "\n"), m.width, height)
}

func (m *Model) renderFooter() string {
	sep := styleDim.Render(strings.Repeat("─", m.width))

	parts := []string{
		styleKey.Render("t") + " toast",
		styleKey.Render("d") + " live",
		styleKey.Render("p") + " pause",
		styleKey.Render("m") + " mount",
		styleKey.Render("y") + " copy",
		styleKey.Render("?") + " help",
		styleKey.Render("q") + " quit",
	}

	return sep + "\n " + truncateWithEllipsis(strings.Join(parts, "  "), m.width-2)
}

func (m *Model) renderHelp(height int) string {
	content := m.keys.helpText()

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(colorCyan).
		Padding(1, 2).
		Width(50).
		Render(styleTitle.Render("HELP") + "\n\n" + content + "\n\n" + styleDim.Render("press any key to close"))

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

func padLines(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		w := lipgloss.Width(line)
		if w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(lines, "\n")
}
