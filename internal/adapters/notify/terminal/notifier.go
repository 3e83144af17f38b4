// Package terminal shows toasts and navigation hints as styled lines on a
// writer, normally stderr.
package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	styles map[ports.Severity]lipgloss.Style
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(out io.Writer) *Notifier {
	return &Notifier{
		out: out,
		styles: map[ports.Severity]lipgloss.Style{
			ports.SeverityDefault:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			ports.SeveritySuccess:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
			ports.SeverityDestructive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		},
	}
}

func (n *Notifier) Notify(_ context.Context, message string, severity ports.Severity) {
	style, ok := n.styles[severity]
	if !ok {
		style = n.styles[ports.SeverityDefault]
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	_, _ = fmt.Fprintln(n.out, style.Render(marker(severity)+" "+message))
}

func marker(severity ports.Severity) string {
	switch severity {
	case ports.SeveritySuccess:
		return "✓"
	case ports.SeverityDestructive:
		return "!"
	default:
		return "•"
	}
}
