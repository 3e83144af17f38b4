package terminal

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierWritesOneLinePerMessage(t *testing.T) {
	var out bytes.Buffer
	notifier := NewNotifier(&out)

	notifier.Notify(context.Background(), "Berhasil masuk!", ports.SeveritySuccess)
	notifier.Notify(context.Background(), "Silakan masuk", ports.SeverityDestructive)
	notifier.Notify(context.Background(), "Info", ports.Severity("unknown"))

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "✓ Berhasil masuk!")
	assert.Contains(t, string(lines[1]), "! Silakan masuk")
	assert.Contains(t, string(lines[2]), "Info")
}

func TestNavigatorPrintsCommandHint(t *testing.T) {
	var out bytes.Buffer
	navigator := NewNavigator(&out)

	assert.Empty(t, navigator.Last())
	navigator.GoTo(context.Background(), ports.RouteLogin)

	assert.Equal(t, ports.RouteLogin, navigator.Last())
	assert.Contains(t, out.String(), "gamelan login --email EMAIL --password PASSWORD")
}

func TestEveryRouteHasACommand(t *testing.T) {
	for _, route := range []ports.Route{
		ports.RouteHome, ports.RouteLogin, ports.RouteRegister, ports.RouteCollection,
		ports.RouteConsultation, ports.RouteProfile, ports.RouteSettings, ports.RouteHistory,
	} {
		_, ok := CommandFor(route)
		assert.True(t, ok, "route %s", route)
	}
}
