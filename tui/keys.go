package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Show    key.Binding
	Dynamic key.Binding
	Pause   key.Binding
	Mount   key.Binding
	Copy    key.Binding

	Help key.Binding
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Show: key.NewBinding(
			key.WithKeys("enter", " ", "t"),
			key.WithHelp("enter/t", "show toast"),
		),
		Dynamic: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "live toast"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
		Mount: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mount/unmount"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy last"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) helpText() string {
	format := func(b key.Binding) string {
		h := b.Help()
		return "  " + padRight(h.Key, 12) + h.Desc
	}

	return `Toasts
` + format(k.Show) + `
` + format(k.Dynamic) + `
` + format(k.Copy) + `

Display
` + format(k.Pause) + `
` + format(k.Mount) + `
  ` + padRight("hover", 12) + `pause while over the stack
  ` + padRight("click", 12) + `restart timers

` + format(k.Help) + `
` + format(k.Quit)
}
