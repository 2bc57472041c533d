package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/rileyhilliard/sysgauge/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RunsDashboard(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	var got context.Context
	cmd := newRootCmd(func(ctx context.Context) error {
		got = ctx
		return nil
	})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(ctx))
	require.NotNil(t, got)
	assert.Equal(t, "marker", got.Value(ctxKey{}), "dashboard receives the command context")
}

func TestRootCmd_Version(t *testing.T) {
	withVersion(t, "1.2.3", "abc1234", "2025-01-08")

	called := false
	cmd := newRootCmd(func(context.Context) error {
		called = true
		return nil
	})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())

	assert.False(t, called, "--version does not start the dashboard")
	assert.Contains(t, buf.String(), "sysgauge v1.2.3")
	assert.Contains(t, buf.String(), "commit: abc1234")
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd(func(context.Context) error {
		t.Fatal("dashboard should not start")
		return nil
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}

func TestRootCmd_PropagatesFatalError(t *testing.T) {
	fatal := errors.New(errors.ErrTerminal, "not a tty", "")
	cmd := newRootCmd(func(context.Context) error { return fatal })
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.Equal(t, fatal, err)
}

func TestRootCmd_Help(t *testing.T) {
	cmd := newRootCmd(func(context.Context) error { return nil })
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "Press q to quit")
	assert.Contains(t, buf.String(), "SYSGAUGE_LOG_FILE")
}
