package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jackchuka/toasts/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up toasts config interactively",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

type initStep int

const (
	stepWelcome   initStep = iota
	stepOverwrite          // only if config exists
	stepTimeout
	stepCapacity
	stepConfirm
	stepDone
)

var (
	styleInitTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("73"))
	styleInitSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("71"))
	styleInitWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	styleInitDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type initModel struct {
	step         initStep
	input        textinput.Model
	cfg          *config.Config
	configPath   string
	configExists bool
	invalid      string
	err          error
	cancelled    bool
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	_, err := os.Stat(configPath)
	configExists := err == nil

	m := newInitModel(configPath, configExists)

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return err
	}

	if final, ok := result.(*initModel); ok && final.err != nil {
		return final.err
	}

	return nil
}

func newInitModel(configPath string, configExists bool) *initModel {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20

	return &initModel{
		step:         stepWelcome,
		input:        ti,
		cfg:          config.NewConfig(),
		configPath:   configPath,
		configExists: configExists,
	}
}

func (m *initModel) Init() tea.Cmd {
	return nil
}

func (m *initModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		// Global quit
		if key == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}

		switch m.step {
		case stepWelcome:
			if key == "enter" {
				if m.configExists {
					m.step = stepOverwrite
					return m, nil
				}
				return m, m.ask(stepTimeout)
			}
			if key == "esc" {
				m.cancelled = true
				return m, tea.Quit
			}

		case stepOverwrite:
			switch key {
			case "y", "Y":
				return m, m.ask(stepTimeout)
			case "n", "N", "esc", "enter":
				m.cancelled = true
				return m, tea.Quit
			}

		case stepTimeout, stepCapacity:
			if key == "enter" {
				if err := m.apply(strings.TrimSpace(m.input.Value())); err != nil {
					m.invalid = err.Error()
					return m, nil
				}
				m.invalid = ""
				if m.step == stepTimeout {
					return m, m.ask(stepCapacity)
				}
				m.input.Blur()
				m.step = stepConfirm
				return m, nil
			}
			if key == "esc" {
				m.cancelled = true
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd

		case stepConfirm:
			if key == "enter" {
				if err := config.Save(m.cfg, m.configPath); err != nil {
					m.err = err
				}
				m.step = stepDone
				return m, tea.Quit
			}
			if key == "esc" {
				return m, m.ask(stepTimeout)
			}

		case stepDone:
			return m, tea.Quit
		}
	}

	return m, nil
}

// ask moves to an input step, prefilled with the current value.
func (m *initModel) ask(step initStep) tea.Cmd {
	m.step = step
	m.input.Reset()
	switch step {
	case stepTimeout:
		m.input.Placeholder = m.cfg.Toast.HideTimeout.String()
	case stepCapacity:
		m.input.Placeholder = strconv.Itoa(m.cfg.Toast.Capacity)
	}
	m.input.Focus()
	return textinput.Blink
}

// apply stores the answer for the current step. Empty keeps the default.
func (m *initModel) apply(val string) error {
	if val == "" {
		return nil
	}
	switch m.step {
	case stepTimeout:
		d, err := time.ParseDuration(val)
		if err != nil || d <= 0 {
			return fmt.Errorf("%q is not a positive duration, try 3s or 4500ms", val)
		}
		m.cfg.Toast.HideTimeout = d
	case stepCapacity:
		n, err := strconv.Atoi(val)
		if err != nil || n <= 0 {
			return fmt.Errorf("%q is not a positive number", val)
		}
		m.cfg.Toast.Capacity = n
	}
	return nil
}

func (m *initModel) View() string {
	var b strings.Builder

	switch m.step {
	case stepWelcome:
		b.WriteString(styleInitTitle.Render("Welcome to toasts!"))
		b.WriteString("\n\n")
		b.WriteString("Config will be saved to ")
		b.WriteString(styleInitDim.Render(m.configPath))
		b.WriteString("\n\n")
		b.WriteString(styleInitDim.Render("Press Enter to continue, Esc to cancel"))
		b.WriteString("\n")

	case stepOverwrite:
		b.WriteString(styleInitWarn.Render("Config already exists"))
		b.WriteString(" at ")
		b.WriteString(styleInitDim.Render(m.configPath))
		b.WriteString("\n\n")
		b.WriteString("Overwrite? ")
		b.WriteString(styleInitDim.Render("[y/N]"))
		b.WriteString("\n")

	case stepTimeout:
		b.WriteString(styleInitTitle.Render("Hide timeout"))
		b.WriteString("\n\n")
		b.WriteString("How long should a toast stay up? (Enter keeps the default)\n")
		m.writeInput(&b)

	case stepCapacity:
		b.WriteString(styleInitTitle.Render("Capacity"))
		b.WriteString("\n\n")
		b.WriteString("How many toasts may be visible at once?\n")
		m.writeInput(&b)

	case stepConfirm:
		b.WriteString(styleInitTitle.Render("Ready to write config"))
		b.WriteString(":\n\n")
		fmt.Fprintf(&b, "  - hide timeout %s\n", m.cfg.Toast.HideTimeout)
		fmt.Fprintf(&b, "  - capacity     %d\n", m.cfg.Toast.Capacity)
		b.WriteString("\n")
		b.WriteString(styleInitDim.Render("[Enter] Write config  [Esc] Go back"))
		b.WriteString("\n")

	case stepDone:
		if m.err != nil {
			b.WriteString(styleInitWarn.Render("Error: " + m.err.Error()))
			b.WriteString("\n")
		} else {
			b.WriteString(styleInitSuccess.Render("Config saved to " + m.configPath))
			b.WriteString("\n\n")
			b.WriteString("Run ")
			b.WriteString(styleInitTitle.Render("toasts"))
			b.WriteString(" to try it out!\n")
		}
	}

	return b.String()
}

func (m *initModel) writeInput(b *strings.Builder) {
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.invalid != "" {
		b.WriteString(styleInitWarn.Render("  " + m.invalid))
		b.WriteString("\n")
	}
}
