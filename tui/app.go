package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jackchuka/toasts/internal/config"
	"github.com/jackchuka/toasts/internal/logging"
	"github.com/jackchuka/toasts/internal/sentences"
	"github.com/jackchuka/toasts/toast"
)

type Model struct {
	cfg     *config.Config
	display *toast.Manager
	picker  *sentences.Picker
	keys    keyMap

	width, height int
	showHelp      bool

	started  time.Time
	live     int    // dynamic toasts shown so far
	lastText string // newest sentence, for copying

	copyText func(string) error
	log      *logging.Logger
}

type copiedMsg struct{ err error }

func NewModel(cfg *config.Config) *Model {
	return &Model{
		cfg:      cfg,
		display:  toast.New(ToastOptions(cfg.Toast)),
		picker:   sentences.NewPicker("", nil),
		keys:     newKeyMap(),
		started:  time.Now(),
		copyText: clipboard.WriteAll,
		log:      logging.Get().With("component", "demo"),
	}
}

// ToastOptions maps the config file section onto the display options.
func ToastOptions(c config.ToastConfig) toast.Options {
	return toast.Options{
		HideTimeout:   c.HideTimeout,
		Stagger:       c.Stagger,
		SweepDelay:    c.SweepDelay,
		HideGrace:     c.HideGrace,
		Capacity:      c.Capacity,
		BaseMargin:    c.BaseMargin,
		Width:         c.Width,
		RenderEmpty:   c.RenderEmpty,
		ClickRestarts: c.ClickRestarts,
	}
}

func (m *Model) Init() tea.Cmd {
	if m.display == nil {
		return nil
	}
	return m.display.Init()
}

// Close tears the display down; buffered toasts stay queued.
func (m *Model) Close() {
	if m.display != nil {
		m.display.Close()
	}
}

func (m *Model) showSentence() {
	text := m.picker.Pick(m.cfg.Demo.MaxLength)
	m.lastText = text
	toast.ShowText(text)
}

// showLive queues a toast whose text is computed each time it is drawn.
func (m *Model) showLive() {
	m.live++
	n := m.live
	started := m.started
	toast.Show(toast.Dynamic(func() string {
		up := time.Since(started).Truncate(time.Second)
		return styleLive.Render(fmt.Sprintf("%s live toast #%d, up %s", iconBolt, n, up))
	}))
}

func (m *Model) toggleMount() tea.Cmd {
	if m.display != nil {
		m.display.Close()
		m.display = nil
		m.log.Info("display unmounted")
		return nil
	}

	m.display = toast.New(ToastOptions(m.cfg.Toast))
	cmd := m.display.Init()
	m.display.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.log.Info("display mounted")
	return cmd
}

func (m *Model) copyLast() tea.Cmd {
	if m.lastText == "" {
		toast.ShowText("Nothing to copy yet")
		return nil
	}
	text := m.lastText
	return func() tea.Msg {
		return copiedMsg{err: m.copyText(text)}
	}
}

func Run(cfg *config.Config) error {
	m := NewModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()

	m.Close()

	if err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
