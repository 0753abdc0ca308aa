// Package ui renders live fuzzing session progress with Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rattle/internal/harness"
)

type sessionModel struct {
	title     string
	events    <-chan harness.Event
	spinner   spinner.Model
	prog      progress.Model
	iteration int
	total     int
	failures  int
	width     int
	done      bool
}

type eventMsg harness.Event
type doneMsg struct{}

// NewSessionModel returns a Bubble Tea model that renders session progress.
func NewSessionModel(title string, total int, events <-chan harness.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	return &sessionModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		total:   total,
		width:   80,
	}
}

func (m *sessionModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		ev := harness.Event(msg)
		cmd := m.applyEvent(ev)
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m *sessionModel) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := truncate(m.title, m.width-8)
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  iteration %d/%d", m.iteration, m.total))
	b.WriteString("   ")
	b.WriteString(styleFailures(m.failures).Render(fmt.Sprintf("failures %d", m.failures)))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *sessionModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *sessionModel) applyEvent(ev harness.Event) tea.Cmd {
	m.iteration = ev.Iteration
	m.failures = ev.Failures
	if ev.Total > 0 {
		m.total = ev.Total
		return m.prog.SetPercent(float64(ev.Iteration) / float64(ev.Total))
	}
	return nil
}

func styleFailures(n int) lipgloss.Style {
	if n > 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
}

func truncate(s string, width int) string {
	if width < 8 {
		width = 8
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}
