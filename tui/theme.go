package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI 256 color palette
var (
	colorCyan = lipgloss.Color("73")
	colorGold = lipgloss.Color("220")
	colorRed  = lipgloss.Color("167")
	colorFg   = lipgloss.Color("253")
	colorDim  = lipgloss.Color("242")
	colorBtn  = lipgloss.Color("238")
)

const (
	iconBolt  = "⚡"
	iconPause = "⏸"
	iconPlug  = "⏻"
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleKey    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	stylePaused = lipgloss.NewStyle().Foreground(colorGold).Bold(true)
	styleWarn   = lipgloss.NewStyle().Foreground(colorRed)

	styleButton = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Background(colorBtn).
			Foreground(colorFg).
			Bold(true).
			Padding(0, 3)

	styleLive = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorGold).
			Padding(0, 1)
)

func truncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		candidate := string(runes[:i]) + "…"
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return "…"
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
