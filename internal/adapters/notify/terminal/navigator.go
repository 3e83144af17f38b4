package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

// commands maps each screen to the invocation that shows it.
var commands = map[ports.Route]string{
	ports.RouteHome:         "gamelan catalog",
	ports.RouteLogin:        "gamelan login --email EMAIL --password PASSWORD",
	ports.RouteRegister:     "gamelan register --name NAME --email EMAIL --password PASSWORD",
	ports.RouteCollection:   "gamelan catalog",
	ports.RouteConsultation: "gamelan history",
	ports.RouteProfile:      "gamelan profile",
	ports.RouteSettings:     "gamelan settings",
	ports.RouteHistory:      "gamelan history",
}

// Navigator cannot switch screens in a one-shot CLI, so it prints the command
// for the target screen and remembers the route.
type Navigator struct {
	mu    sync.Mutex
	out   io.Writer
	style lipgloss.Style
	last  ports.Route
}

var _ ports.Navigator = (*Navigator)(nil)

func NewNavigator(out io.Writer) *Navigator {
	return &Navigator{
		out:   out,
		style: lipgloss.NewStyle().Faint(true),
	}
}

func (n *Navigator) GoTo(_ context.Context, route ports.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.last = route
	command, ok := commands[route]
	if !ok {
		return
	}
	_, _ = fmt.Fprintln(n.out, n.style.Render("→ "+command))
}

// Last returns the most recent route, or "" when GoTo was never called.
func (n *Navigator) Last() ports.Route {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.last
}

// CommandFor returns the CLI invocation for route.
func CommandFor(route ports.Route) (string, bool) {
	command, ok := commands[route]
	return command, ok
}
