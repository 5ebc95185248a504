package execx

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Call records one command the ScriptedRunner saw.
type Call struct {
	Name  string
	Args  []string
	Env   []string
	Input string
}

// ScriptedRunner is a test Runner that answers from canned responses and
// records every call. The zero value fails every lookup and command.
type ScriptedRunner struct {
	mu sync.Mutex

	// OnPath lists command names LookPath resolves; everything else is
	// reported missing.
	OnPath map[string]string

	// Outputs maps "name arg1 arg2..." to canned stdout.
	Outputs map[string]string

	// Fail maps "name arg1 arg2..." to a forced failure.
	Fail map[string]bool

	Calls []Call
}

// NewScriptedRunner returns an empty scripted runner.
func NewScriptedRunner() *ScriptedRunner {
	return &ScriptedRunner{
		OnPath:  make(map[string]string),
		Outputs: make(map[string]string),
		Fail:    make(map[string]bool),
	}
}

func key(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func (r *ScriptedRunner) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, c)
}

// knows reports whether name is a registered command, by bare name or by
// its resolved path.
func (r *ScriptedRunner) knows(name string) bool {
	if _, ok := r.OnPath[name]; ok {
		return true
	}
	for _, path := range r.OnPath {
		if path == name {
			return true
		}
	}
	return false
}

func (r *ScriptedRunner) LookPath(name string) (string, error) {
	if path, ok := r.OnPath[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (r *ScriptedRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	return r.OutputInput(ctx, "", name, args...)
}

func (r *ScriptedRunner) OutputEnv(ctx context.Context, env []string, name string, args ...string) (string, error) {
	out, err := r.OutputInput(ctx, "", name, args...)
	r.mu.Lock()
	if n := len(r.Calls); n > 0 {
		r.Calls[n-1].Env = env
	}
	r.mu.Unlock()
	return out, err
}

func (r *ScriptedRunner) OutputInput(ctx context.Context, input string, name string, args ...string) (string, error) {
	r.record(Call{Name: name, Args: args, Input: input})

	k := key(name, args)
	if r.Fail[k] {
		return "", fmt.Errorf("command %q failed", k)
	}
	if out, ok := r.Outputs[k]; ok {
		return out, nil
	}
	if r.knows(name) {
		return "", nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (r *ScriptedRunner) Run(ctx context.Context, env []string, name string, args ...string) error {
	r.record(Call{Name: name, Args: args, Env: env})

	if r.Fail[key(name, args)] {
		return fmt.Errorf("command %q failed", key(name, args))
	}
	if !r.knows(name) {
		return fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
	return nil
}

// CommandRan reports whether a command with the given name was executed.
func (r *ScriptedRunner) CommandRan(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Calls {
		if c.Name == name {
			return true
		}
	}
	return false
}
