package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fedesilva/minnieml/buffer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	demoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	result   string
	input    textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectDemo modelState = iota
	stateInputArg
	stateShowResult
)

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{state: stateSelectDemo}
}

type demoResultMsg struct {
	err    error
	output string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArg || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectDemo && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectDemo && m.selected < len(demos)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectDemo:
				m.prepareInput()
				m.state = stateInputArg

			case stateInputArg:
				return m, m.runDemo

			case stateShowResult:
				m.state = stateSelectDemo
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputArg:
				m.state = stateSelectDemo
			case stateShowResult:
				m.state = stateSelectDemo
				m.result = ""
				m.err = nil
			}
		}

	case demoResultMsg:
		m.result = msg.output
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArg {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	d := demos[m.selected]
	ti := textinput.New()
	ti.Placeholder = d.defaultArg
	ti.Prompt = d.argHint + ": "
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

// runDemo executes the selected program against a capturing buffer so the
// output can be rendered in the result view instead of written to stdout.
func (m *interactiveModel) runDemo() tea.Msg {
	d := demos[m.selected]
	arg := m.input.Value()
	if arg == "" {
		arg = d.defaultArg
	}

	var captured bytes.Buffer
	out := buffer.New(buffer.WithWriter(&captured))
	defer out.Release()

	if err := d.run(out, arg); err != nil {
		return demoResultMsg{err: err}
	}
	if err := out.Flush(); err != nil {
		return demoResultMsg{err: err}
	}
	return demoResultMsg{output: captured.String()}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("MinnieML Runtime"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectDemo:
		b.WriteString("Select a demo program:\n\n")
		for i, d := range demos {
			line := demoStyle.Render(d.name) + "  " + d.desc
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + d.name + "  " + d.desc))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter run • q quit"))

	case stateInputArg:
		d := demos[m.selected]
		b.WriteString(fmt.Sprintf("Running %s\n\n", demoStyle.Render(d.name)))
		b.WriteString(m.input.View())
		b.WriteString(" ")
		b.WriteString(hintStyle.Render("(default " + d.defaultArg + ")"))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • esc back"))

	case stateShowResult:
		d := demos[m.selected]
		b.WriteString(fmt.Sprintf("Output of %s:\n\n", demoStyle.Render(d.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
