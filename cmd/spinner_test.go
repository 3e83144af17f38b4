package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forceTerminal(t *testing.T, terminal bool) {
	t.Helper()

	previous := isTerminal
	isTerminal = func(io.Writer) bool { return terminal }
	t.Cleanup(func() { isTerminal = previous })
}

func TestRunWithSpinnerPrintsPlainLabelWhenNotATerminal(t *testing.T) {
	forceTerminal(t, false)
	out := &bytes.Buffer{}
	workErr := errors.New("password too short")

	err := runWithSpinner(context.Background(), out, "Sedang masuk...", func(context.Context) error {
		return workErr
	})

	require.ErrorIs(t, err, workErr)
	assert.Equal(t, "Sedang masuk...\n", out.String())
}

func TestRunWithSpinnerAnimatesOnTerminal(t *testing.T) {
	forceTerminal(t, true)
	out := &bytes.Buffer{}
	ran := false

	err := runWithSpinner(context.Background(), out, "Signing in...", func(context.Context) error {
		time.Sleep(200 * time.Millisecond)
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
	assert.Contains(t, out.String(), "Signing in...")
}

func TestSessionWaitModelHidesOnceDone(t *testing.T) {
	model := newSessionWaitModel("Sedang mendaftar...", nil)
	assert.Contains(t, model.View(), "Sedang mendaftar...")

	updated, _ := model.Update(sessionWaitDoneMsg{err: context.Canceled})
	done := updated.(sessionWaitModel)
	assert.Empty(t, done.View())
	assert.ErrorIs(t, done.err, context.Canceled)
}
