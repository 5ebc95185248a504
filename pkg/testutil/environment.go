// Package testutil provides isolated test environments: a temp home with
// a populated dotfiles tree, so installer and verifier logic can run
// against a real filesystem without touching the user's environment.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsetup/pkg/paths"
)

// Env is an isolated home + dotfiles tree rooted in t.TempDir().
type Env struct {
	Home         string
	DotfilesRoot string
	Paths        *paths.Paths

	t *testing.T
}

// NewEnv creates the environment and points HOME and DOTSETUP_ROOT at it
// for the duration of the test.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	tempDir := t.TempDir()
	home := filepath.Join(tempDir, "home")
	root := filepath.Join(home, "dotfiles")
	require.NoError(t, os.MkdirAll(root, 0755))

	t.Setenv("HOME", home)
	t.Setenv(paths.EnvDotfilesRoot, root)
	// Keep the suite blind to any real user config.
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	// adrg/xdg caches at init; recompute with the test environment.
	xdg.Reload()

	p, err := paths.New("")
	require.NoError(t, err)

	return &Env{
		Home:         home,
		DotfilesRoot: root,
		Paths:        p,
		t:            t,
	}
}

// WriteSource creates a file inside the dotfiles tree.
func (e *Env) WriteSource(rel, content string) string {
	e.t.Helper()
	path := filepath.Join(e.DotfilesRoot, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteHome creates a file under the temp home.
func (e *Env) WriteHome(rel, content string) string {
	e.t.Helper()
	path := filepath.Join(e.Home, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// MkdirSource creates a directory inside the dotfiles tree.
func (e *Env) MkdirSource(rel string) string {
	e.t.Helper()
	path := filepath.Join(e.DotfilesRoot, rel)
	require.NoError(e.t, os.MkdirAll(path, 0755))
	return path
}

// ReadFile returns a file's content, failing the test when unreadable.
func (e *Env) ReadFile(path string) string {
	e.t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(e.t, err)
	return string(data)
}
