package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// isTerminal is a test seam; redirected output gets a plain progress line.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

type sessionWaitDoneMsg struct {
	err error
}

// sessionWaitModel animates while a login or register round trip is pending.
type sessionWaitModel struct {
	spinner spinner.Model
	label   string
	started time.Time
	work    tea.Cmd
	err     error
	done    bool
}

func newSessionWaitModel(label string, work tea.Cmd) sessionWaitModel {
	return sessionWaitModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("179"))),
		),
		label:   label,
		started: time.Now(),
		work:    work,
	}
}

func (m sessionWaitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m sessionWaitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sessionWaitDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m sessionWaitModel) View() string {
	if m.done {
		return ""
	}

	elapsed := time.Since(m.started).Truncate(100 * time.Millisecond)
	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, lipgloss.NewStyle().Faint(true).Render(elapsed.String()))
}

// runWithSpinner shows label on output while work runs and returns work's
// error. Output that is not a terminal gets label once, without animation.
func runWithSpinner(ctx context.Context, output io.Writer, label string, work func(context.Context) error) error {
	if !isTerminal(output) {
		if _, err := fmt.Fprintln(output, label); err != nil {
			return err
		}
		return work(ctx)
	}

	p := tea.NewProgram(
		newSessionWaitModel(label, func() tea.Msg {
			return sessionWaitDoneMsg{err: work(ctx)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(sessionWaitModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
