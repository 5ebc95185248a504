// Package execx wraps external command execution behind a small interface
// so installer and verifier logic can be tested without spawning
// processes. Resolved tool locations are returned as values and threaded
// through callers; the process environment is never mutated mid-run.
package execx

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/logging"
)

// Runner executes external commands.
type Runner interface {
	// LookPath resolves a command name on PATH.
	LookPath(name string) (string, error)

	// Output runs the command and returns its combined output, trimmed.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// OutputEnv is Output with extra environment entries appended to the
	// inherited environment.
	OutputEnv(ctx context.Context, env []string, name string, args ...string) (string, error)

	// OutputInput is Output with data piped to stdin.
	OutputInput(ctx context.Context, input string, name string, args ...string) (string, error)

	// Run executes the command with the given extra environment entries
	// appended to the inherited environment, discarding output.
	Run(ctx context.Context, env []string, name string, args ...string) error
}

// OSRunner is the production Runner backed by os/exec.
type OSRunner struct{}

// New returns a Runner backed by the operating system.
func New() *OSRunner {
	return &OSRunner{}
}

func (r *OSRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *OSRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	return r.capture(ctx, "", nil, name, args...)
}

func (r *OSRunner) OutputEnv(ctx context.Context, env []string, name string, args ...string) (string, error) {
	return r.capture(ctx, "", env, name, args...)
}

func (r *OSRunner) OutputInput(ctx context.Context, input string, name string, args ...string) (string, error) {
	return r.capture(ctx, input, nil, name, args...)
}

func (r *OSRunner) capture(ctx context.Context, input string, env []string, name string, args ...string) (string, error) {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}
	if len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	return strings.TrimSpace(out.String()), err
}

func (r *OSRunner) Run(ctx context.Context, env []string, name string, args ...string) error {
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}
	return cmd.Run()
}
