package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/allfeat/internal/adapters/shell"
	"go.trai.ch/allfeat/internal/core/domain"
	"go.trai.ch/allfeat/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// writeTool creates an executable shell script acting as the build tool.
func writeTool(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake-cargo")
	//nolint:gosec // Test requires executable file
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700)
	require.NoError(t, err)
	return path
}

func TestExecutor_Execute_Pass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	var stdout bytes.Buffer
	executor := shell.NewExecutor(mockLogger).WithOutput(&stdout, io.Discard)

	tool := writeTool(t, `echo "$@"`)
	inv := domain.Invocation{
		Program:    tool,
		Subcommand: "test",
		Features:   "a,b",
		Args:       []string{"--release"},
		LintArgs:   []string{"--", "--nocapture"},
		Dir:        t.TempDir(),
	}

	outcome, err := executor.Execute(context.Background(), inv)
	require.NoError(t, err)
	assert.True(t, outcome.Passed())
	assert.Equal(t, "test --no-default-features --features a,b --release -- --nocapture\n", stdout.String())
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	var stdout bytes.Buffer
	executor := shell.NewExecutor(mockLogger).WithOutput(&stdout, io.Discard)

	dir := t.TempDir()
	tool := writeTool(t, "pwd -P")

	outcome, err := executor.Execute(context.Background(), domain.Invocation{Program: tool, Subcommand: "build", Dir: dir})
	require.NoError(t, err)
	assert.True(t, outcome.Passed())

	expected, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, expected+"\n", stdout.String())
}

func TestExecutor_Execute_StderrIsForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	var stderr bytes.Buffer
	executor := shell.NewExecutor(mockLogger).WithOutput(io.Discard, &stderr)

	tool := writeTool(t, "echo compiling >&2")

	outcome, err := executor.Execute(context.Background(), domain.Invocation{Program: tool, Subcommand: "build"})
	require.NoError(t, err)
	assert.True(t, outcome.Passed())
	assert.Equal(t, "compiling\n", stderr.String())
}

func TestExecutor_Execute_NonZeroExitIsFailOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger).WithOutput(io.Discard, io.Discard)

	tool := writeTool(t, "exit 42")

	outcome, err := executor.Execute(context.Background(), domain.Invocation{Program: tool, Subcommand: "test"})
	require.NoError(t, err)
	assert.False(t, outcome.Passed())
	assert.Equal(t, 42, outcome.ExitCode)
	assert.Equal(t, "exit status 42", outcome.Status)
}

func TestExecutor_Execute_SignalIsFailOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger).WithOutput(io.Discard, io.Discard)

	tool := writeTool(t, "kill -9 $$")

	outcome, err := executor.Execute(context.Background(), domain.Invocation{Program: tool, Subcommand: "test"})
	require.NoError(t, err)
	assert.False(t, outcome.Passed())
	assert.Equal(t, -1, outcome.ExitCode)
	assert.Contains(t, outcome.Status, "killed")
}

func TestExecutor_Execute_MissingProgramIsSpawnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger).WithOutput(io.Discard, io.Discard)

	_, err := executor.Execute(context.Background(), domain.Invocation{
		Program:    "nonexistent-cargo-xyz123",
		Subcommand: "build",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrSpawnFailed)
}

func TestExecutor_Execute_NotExecutableIsSpawnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger).WithOutput(io.Discard, io.Discard)

	path := filepath.Join(t.TempDir(), "cargo")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o600))

	_, err := executor.Execute(context.Background(), domain.Invocation{Program: path, Subcommand: "build"})
	require.ErrorIs(t, err, domain.ErrSpawnFailed)
}

func TestExecutor_Execute_InvalidDirIsSpawnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger).WithOutput(io.Discard, io.Discard)

	tool := writeTool(t, "exit 0")

	_, err := executor.Execute(context.Background(), domain.Invocation{
		Program:    tool,
		Subcommand: "build",
		Dir:        filepath.Join(t.TempDir(), "missing"),
	})
	require.ErrorIs(t, err, domain.ErrSpawnFailed)
}

func TestExecutor_Execute_CancelledBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger).WithOutput(io.Discard, io.Discard)

	marker := filepath.Join(t.TempDir(), "started")
	tool := writeTool(t, "touch "+marker)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := executor.Execute(ctx, domain.Invocation{Program: tool, Subcommand: "build"})
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrSpawnFailed)
	assert.False(t, outcome.Passed())
	assert.NoFileExists(t, marker)
}

func TestExecutor_Execute_CancelInterruptsChild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any())
	executor := shell.NewExecutor(mockLogger).WithOutput(io.Discard, io.Discard)

	ready := filepath.Join(t.TempDir(), "ready")
	tool := writeTool(t, "trap 'exit 3' INT TERM\ntouch "+ready+"\nsleep 5 >/dev/null 2>&1 &\nwait")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		for ctx.Err() == nil {
			if _, err := os.Stat(ready); err == nil {
				cancel()
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}()

	outcome, err := executor.Execute(ctx, domain.Invocation{Program: tool, Subcommand: "test"})
	require.NoError(t, err)
	assert.False(t, outcome.Passed())
	assert.Equal(t, 3, outcome.ExitCode, "child handles the interrupt itself")
}
