//go:generate mockgen -destination=./mocks/runner.go -package=mocks . CommandRunner

// Package apt wraps the apt command line tools (apt-config, apt-cache) that
// provide the host-side package state: environment values, the installed
// package set, locally cached archives and declared dependencies.
package apt

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	pkgerrors "github.com/aptforge/aptdown/pkg/errors"
)

// CommandRunner executes a system command and returns its stdout. It exists
// so the apt collaborators can be exercised against canned output in tests.
type CommandRunner interface {
	// Run executes a command and returns its stdout.
	Run(ctx context.Context, name string, args ...string) (string, error)

	// RunEnv executes a command with extra environment variables appended
	// to the inherited environment.
	RunEnv(ctx context.Context, extraEnv []string, name string, args ...string) (string, error)
}

type execRunner struct{}

// NewRunner returns a CommandRunner backed by os/exec.
func NewRunner() CommandRunner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	return r.RunEnv(ctx, nil, name, args...)
}

func (r *execRunner) RunEnv(ctx context.Context, extraEnv []string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// stderr is discarded; apt tools print warnings there that are not
	// part of the parsed output.

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ProcessState reports "exit status N" or "signal: ..." so the
			// failure mode is visible in the message.
			return "", pkgerrors.Wrapf(pkgerrors.ErrCommandFailed,
				"%s %s: %s", name, strings.Join(args, " "), exitErr.ProcessState.String())
		}
		return "", pkgerrors.Wrapf(err, "running %s", name)
	}
	return stdout.String(), nil
}
