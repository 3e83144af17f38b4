package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runGamelan(t, binaryPath, home, "login", "--email", "a@b.c", "--password", "123456")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runGamelan(t, binaryPath, home, "consult", "KRT-03")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runGamelan(t, binaryPath, home, "profile")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Ilham")
	assert.Contains(t, stdout, "Total Konsultasi: 1")

	_, stderr, err = runGamelan(t, binaryPath, home, "logout")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runGamelan(t, binaryPath, home, "profile")
	require.Error(t, err)
	assert.Contains(t, stderr, "not authenticated")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "gamelan-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gamelan")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build gamelan binary: %s", string(output))
	return binaryPath
}

func runGamelan(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "GAMELAN_SESSION_LATENCY=0s")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
