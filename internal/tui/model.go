// Package tui drives the professor shell from a terminal.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/saulo-duarte/professor/internal/shell"
	"github.com/saulo-duarte/professor/internal/web"
)

// StateMsg carries a resolved shell state back into the program.
type StateMsg struct{ State shell.State }

type Model struct {
	ctx     context.Context
	shell   *shell.Shell
	state   shell.State
	input   textinput.Model
	spinner spinner.Model
	width   int
}

func New(ctx context.Context, sh *shell.Shell) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask a question..."
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		ctx:     ctx,
		shell:   sh,
		state:   sh.State(),
		input:   ti,
		spinner: s,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.shell.Reset()
			m.state = m.shell.State()
			m.input.SetValue("")
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
		if m.state.Loading() {
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case StateMsg:
		if msg.State.Token < m.state.Token {
			return m, nil
		}
		m.state = msg.State
		if !m.state.Loading() {
			m.input.Focus()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	in := shell.NewInput()
	in.SetValue(m.input.Value())
	in.SetDisabled(m.state.Loading())

	text, ok := in.Submit()
	if !ok {
		return m, nil
	}

	done, ok := m.shell.Start(m.ctx, text)
	if !ok {
		return m, nil
	}
	m.state = m.shell.State()
	m.input.Blur()
	return m, tea.Batch(m.spinner.Tick, waitForState(done))
}

func waitForState(done <-chan shell.State) tea.Cmd {
	return func() tea.Msg {
		return StateMsg{State: <-done}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AI Professor"))
	b.WriteString("\n")
	b.WriteString(avatarStyle.Render(avatar(m.state.Loading())))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch m.state.Phase {
	case shell.PhaseLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" The Professor is thinking...\n")
	case shell.PhaseError:
		b.WriteString(bubbleStyle.Render(errorStyle.Render("Oh, dear...\n" + m.state.Message)))
		b.WriteString("\n")
	case shell.PhaseSuccess:
		b.WriteString(m.answerView())
	}

	b.WriteString(helpStyle.Render("enter: ask • ctrl+r: reset • esc: quit"))
	return b.String()
}

func (m Model) answerView() string {
	if m.state.Answer == nil {
		return ""
	}
	a := m.state.Answer.Answer

	var b strings.Builder
	b.WriteString(headingStyle.Render("The Concept"))
	b.WriteString("\n")
	b.WriteString(a.Definition)
	b.WriteString("\n\n")
	b.WriteString(headingStyle.Render("Key Notes"))
	b.WriteString("\n")
	for _, note := range a.KeyNotes {
		b.WriteString(noteStyle.Render("• " + note))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Real-World Application"))
	b.WriteString("\n")
	b.WriteString(appliedStyle.Render(a.Application))
	b.WriteString("\n")

	if id := m.state.Answer.VideoID; id != nil && *id != "" {
		b.WriteString("\n")
		b.WriteString(videoStyle.Render("Lesson video: " + web.EmbedURL(*id)))
		b.WriteString("\n")
	}
	return b.String()
}

func avatar(speaking bool) string {
	mouth := "‿"
	if speaking {
		mouth = "o"
	}
	return " .---.\n( ° ° )\n (  " + mouth + "  )\n  '-'"
}
