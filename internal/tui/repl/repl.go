// Package repl provides the interactive Warden console.
package repl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/warden-sh/warden-cli/internal/console"
	"github.com/warden-sh/warden-cli/internal/tui"
)

// Config holds console configuration
type Config struct {
	Version     string
	HistorySize int

	// Payloads are the launchable payload names, for tab completion.
	Payloads []string

	// NewRouter builds the command router writing to the given output.
	// The REPL captures each command's output in its own buffer.
	NewRouter func(out *bytes.Buffer) *console.Router
}

// Model is the BubbleTea model for the console
type Model struct {
	input       textinput.Model
	newRouter   func(out *bytes.Buffer) *console.Router
	completer   *Completer
	history     []string
	historyIdx  int
	historyMax  int
	suggestions []string
	selectedSug int
	output      string
	err         error
	quitting    bool
	version     string
	width       int
	showWelcome bool
}

// New creates a new console model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60
	ti.PromptStyle = tui.PromptStyle
	ti.Prompt = "warden ❯ "

	// A throwaway router gives the completer the command names without
	// touching the registry.
	names := cfg.NewRouter(&bytes.Buffer{}).CommandNames()
	completer := NewCompleter(names)
	completer.SetPayloads(cfg.Payloads)

	historyMax := cfg.HistorySize
	if historyMax <= 0 {
		historyMax = 200
	}

	return Model{
		input:       ti,
		newRouter:   cfg.NewRouter,
		completer:   completer,
		history:     []string{},
		historyIdx:  -1,
		historyMax:  historyMax,
		version:     cfg.Version,
		showWelcome: true,
		selectedSug: -1,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			// If suggestions visible and one is selected, use it
			if len(m.suggestions) > 0 && m.selectedSug >= 0 && m.selectedSug < len(m.suggestions) {
				m.input.SetValue(m.suggestions[m.selectedSug] + " ")
				m.input.CursorEnd()
				m.suggestions = nil
				m.selectedSug = -1
				return m, nil
			}

			input := strings.TrimSpace(m.input.Value())
			if input == "" {
				return m, nil
			}

			m.history = append(m.history, input)
			if len(m.history) > m.historyMax {
				m.history = m.history[len(m.history)-m.historyMax:]
			}
			m.historyIdx = len(m.history)

			m.input.SetValue("")
			m.suggestions = nil
			m.selectedSug = -1
			m.showWelcome = false

			m.output, m.err = m.executeInput(input)

			if m.err == ErrQuit {
				m.quitting = true
				return m, tea.Quit
			}

			return m, nil

		case tea.KeyUp:
			if len(m.suggestions) > 0 {
				m.selectedSug--
				if m.selectedSug < 0 {
					m.selectedSug = len(m.suggestions) - 1
				}
				return m, nil
			}
			if len(m.history) > 0 && m.historyIdx > 0 {
				m.historyIdx--
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			if len(m.suggestions) > 0 {
				m.selectedSug++
				if m.selectedSug >= len(m.suggestions) {
					m.selectedSug = 0
				}
				return m, nil
			}
			if m.historyIdx < len(m.history)-1 {
				m.historyIdx++
				m.input.SetValue(m.history[m.historyIdx])
				m.input.CursorEnd()
			} else if m.historyIdx == len(m.history)-1 {
				m.historyIdx = len(m.history)
				m.input.SetValue("")
			}
			return m, nil

		case tea.KeyTab:
			suggestions := m.completer.Complete(m.input.Value())
			if len(suggestions) == 1 {
				m.input.SetValue(suggestions[0] + " ")
				m.input.CursorEnd()
				m.suggestions = nil
				m.selectedSug = -1
			} else if len(suggestions) > 1 {
				m.suggestions = suggestions
				m.selectedSug = 0
				commonPrefix := FindLongestCommonPrefix(suggestions)
				if len(commonPrefix) > len(m.input.Value()) {
					m.input.SetValue(commonPrefix)
					m.input.CursorEnd()
				}
			}
			return m, nil

		case tea.KeyEsc:
			m.suggestions = nil
			m.selectedSug = -1
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = min(msg.Width-12, 70)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	// Update suggestions as user types
	if v := m.input.Value(); v != "" && !strings.Contains(v, " ") {
		newSuggestions := m.completer.Complete(v)
		if len(newSuggestions) > 0 && len(newSuggestions) <= 8 {
			m.suggestions = newSuggestions
			if m.selectedSug >= len(m.suggestions) {
				m.selectedSug = 0
			}
		} else {
			m.suggestions = nil
			m.selectedSug = -1
		}
	} else {
		m.suggestions = nil
		m.selectedSug = -1
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder

	// Header
	title := tui.TitleStyle.Render("⬢ Warden")
	version := tui.MutedStyle.Render(" " + m.version)
	sb.WriteString(title + version + "\n")
	sb.WriteString(tui.MutedStyle.Render(strings.Repeat("─", 40)) + "\n\n")

	if m.showWelcome {
		sb.WriteString(m.renderWelcome())
	} else if m.output != "" {
		lines := strings.Split(strings.TrimRight(m.output, "\n"), "\n")
		maxLines := 30
		if len(lines) > maxLines {
			lines = lines[:maxLines]
			lines = append(lines, tui.MutedStyle.Render("... (truncated)"))
		}
		for _, line := range lines {
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString("\n")
	}

	if m.err != nil && m.err != ErrQuit {
		sb.WriteString(tui.ErrorStyle.Render("  ✗ "+m.err.Error()) + "\n\n")
	}

	sb.WriteString(m.input.View() + "\n")

	if len(m.suggestions) > 0 {
		sb.WriteString("\n")
		var items []string
		for i, s := range m.suggestions {
			if i == m.selectedSug {
				items = append(items, lipgloss.NewStyle().
					Bold(true).
					Foreground(tui.ColorPrimary).
					Background(lipgloss.Color("236")).
					Padding(0, 1).
					Render(s))
			} else {
				items = append(items, tui.MutedStyle.Render("  "+s))
			}
		}
		sb.WriteString(strings.Join(items, "\n") + "\n")
	}

	sb.WriteString("\n" + tui.MutedStyle.Render("Tab: complete • ↑↓: history • Enter: run • Ctrl+C: quit"))

	return sb.String()
}

func (m Model) renderWelcome() string {
	var sb strings.Builder

	commands := []struct {
		cmd  string
		desc string
	}{
		{"jobs", "List running jobs (-v for detail)"},
		{"handler", "Launch a payload handler job"},
		{"kill", "Stop jobs by id or range"},
		{"rename_job", "Rename a job"},
		{"help", "All commands"},
		{"exit", "Leave the console"},
	}

	sb.WriteString("  " + tui.LabelStyle.Render("Commands:") + "\n")
	for _, c := range commands {
		cmd := lipgloss.NewStyle().Foreground(tui.ColorPrimary).Render(c.cmd)
		sb.WriteString(fmt.Sprintf("    %-22s %s\n", cmd, tui.MutedStyle.Render(c.desc)))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (m *Model) executeInput(input string) (string, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", nil
	}

	name := parts[0]
	args := parts[1:]

	if name == "exit" || name == "quit" {
		return "", ErrQuit
	}

	var buf bytes.Buffer
	router := m.newRouter(&buf)
	err := router.Dispatch(name, args)
	return buf.String(), err
}

// ErrQuit is returned when the user wants to leave the console
var ErrQuit = fmt.Errorf("quit")

// Run starts the interactive console and blocks until it exits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg))
	_, err := p.Run()
	return err
}
