// Package menu implements the interactive converter prompt.
//
// One run of the program walks through: pick a mode, enter the input path,
// choose whether to save, and name the output file. The caller performs the
// conversion and starts a new round.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/srt2txt/internal/srt"
	"github.com/grovetools/srt2txt/internal/textio"
)

type step int

const (
	stepMenu step = iota
	stepInput
	stepSave
	stepOutput
)

// Request is what the user asked for in one round.
type Request struct {
	Mode   srt.Mode
	Input  string
	Output string // empty when the result should only be printed
}

// Model is the bubbletea model for one round of the menu.
type Model struct {
	step    step
	input   textinput.Model
	request Request
	status  string
	done    bool
	quit    bool

	suffix string
	exists func(string) bool
}

// New creates a menu. suffix builds the default output name from the input
// path; exists reports whether an input path can be used.
func New(suffix string, exists func(string) bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	return Model{
		step:   stepMenu,
		input:  ti,
		suffix: suffix,
		exists: exists,
	}
}

// Done reports whether a complete request was collected.
func (m Model) Done() bool { return m.done }

// Quit reports whether the user chose to leave.
func (m Model) Quit() bool { return m.quit }

// Request returns the collected request. Only meaningful when Done is true.
func (m Model) Request() Request { return m.request }

// Status returns the last message shown to the user.
func (m Model) Status() string { return m.status }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.quit = true
		return m, tea.Quit
	}

	switch m.step {
	case stepMenu:
		return m.updateMenu(key)
	case stepInput:
		return m.updateInput(key)
	case stepSave:
		return m.updateSave(key)
	case stepOutput:
		return m.updateOutput(key)
	}
	return m, nil
}

func (m Model) updateMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "1":
		m.request = Request{Mode: srt.SingleBlock}
	case "2":
		m.request = Request{Mode: srt.Paragraphs}
	case "3", "q", "esc":
		m.quit = true
		return m, tea.Quit
	default:
		m.status = "Invalid option!"
		return m, nil
	}
	m.status = ""
	m.step = stepInput
	cmd := m.prompt("path/to/file.srt")
	return m, cmd
}

func (m Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.step = stepMenu
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		if path == "" || !m.exists(path) {
			m.status = "File not found!"
			m.step = stepMenu
			return m, nil
		}
		m.request.Input = path
		m.step = stepSave
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m Model) updateSave(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(key.String()) {
	case "s", "y":
		m.step = stepOutput
		cmd := m.prompt(m.defaultOutput())
		return m, cmd
	case "n", "enter", "esc":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateOutput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyEnter {
		out := strings.TrimSpace(m.input.Value())
		if out == "" {
			out = m.defaultOutput()
		}
		m.request.Output = out
		m.done = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m Model) defaultOutput() string {
	return textio.ReplaceExt(m.request.Input, m.suffix)
}

// prompt clears the text input and focuses it.
func (m *Model) prompt(placeholder string) tea.Cmd {
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(theme.DefaultColors.Green)
	mutedStyle  = lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	statusStyle = lipgloss.NewStyle().Foreground(theme.DefaultColors.Red)
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("=== SRT TO TEXT CONVERTER ===") + "\n\n")

	switch m.step {
	case stepMenu:
		b.WriteString("Options:\n")
		b.WriteString("1. Convert SRT to continuous text\n")
		b.WriteString("2. Convert keeping paragraphs\n")
		b.WriteString("3. Exit\n\n")
		b.WriteString("Choose an option (1-3)\n")
	case stepInput:
		b.WriteString("SRT file path:\n")
		b.WriteString(m.input.View() + "\n")
	case stepSave:
		fmt.Fprintf(&b, "%s %s\n\n", theme.IconFile, m.request.Input)
		b.WriteString("Save to file? (y/n)\n")
	case stepOutput:
		b.WriteString("Output file name (enter for default):\n")
		b.WriteString(m.input.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(mutedStyle.Render("\nesc: back • ctrl+c: quit") + "\n")
	return b.String()
}
