package paths

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPaths(t *testing.T) *Paths {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	p, err := New("")
	require.NoError(t, err)
	return p
}

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		dotfilesRoot string
		envRoot      string
		validate     func(t *testing.T, p *Paths)
	}{
		{
			name:         "explicit dotfiles root",
			dotfilesRoot: "/tmp/dotfiles",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/tmp/dotfiles", p.DotfilesRoot())
			},
		},
		{
			name:    "from DOTSETUP_ROOT env",
			envRoot: "/env/dotfiles",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, "/env/dotfiles", p.DotfilesRoot())
			},
		},
		{
			name: "fallback to ~/dotfiles",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, filepath.Join(p.Home(), "dotfiles"), p.DotfilesRoot())
			},
		},
		{
			name:         "expand tilde in explicit path",
			dotfilesRoot: "~/my-dotfiles",
			validate: func(t *testing.T, p *Paths) {
				assert.Equal(t, filepath.Join(p.Home(), "my-dotfiles"), p.DotfilesRoot())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			if tt.envRoot != "" {
				t.Setenv(EnvDotfilesRoot, tt.envRoot)
			} else {
				t.Setenv(EnvDotfilesRoot, "")
			}

			p, err := New(tt.dotfilesRoot)
			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(p.DotfilesRoot()))
			tt.validate(t, p)
		})
	}
}

func TestBackupDir(t *testing.T) {
	p := newTestPaths(t)

	assert.Equal(t, filepath.Join(p.Home(), BackupDirName), p.BackupRoot())

	now := time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)
	dir := p.NewBackupDir(now)
	assert.Equal(t, filepath.Join(p.BackupRoot(), "20240315_093045"), dir)
}

func TestSetBackupDirName(t *testing.T) {
	p := newTestPaths(t)

	p.SetBackupDirName("stash")
	assert.Equal(t, filepath.Join(p.Home(), "stash"), p.BackupRoot())

	// Empty names keep the current value.
	p.SetBackupDirName("")
	assert.Equal(t, filepath.Join(p.Home(), "stash"), p.BackupRoot())
}

func TestSourceAndTarget(t *testing.T) {
	p := newTestPaths(t)

	assert.Equal(t, filepath.Join(p.DotfilesRoot(), "nvim"), p.Source("nvim"))
	assert.Equal(t, filepath.Join(p.Home(), ".config", "nvim"), p.Target(".config/nvim"))
}

func TestRelativeToHome(t *testing.T) {
	p := newTestPaths(t)

	rel := p.RelativeToHome(filepath.Join(p.Home(), ".config", "kitty"))
	assert.Equal(t, filepath.Join(".config", "kitty"), rel)

	// Outside home: leading separator stripped, no dot-dot escapes.
	outside := p.RelativeToHome("/etc/hosts")
	assert.Equal(t, "etc/hosts", outside)
	assert.False(t, strings.HasPrefix(outside, ".."))
}

func TestExpandHome(t *testing.T) {
	p := newTestPaths(t)

	assert.Equal(t, p.Home(), p.ExpandHome("~"))
	assert.Equal(t, filepath.Join(p.Home(), "x"), p.ExpandHome("~/x"))
	assert.Equal(t, "/abs/path", p.ExpandHome("/abs/path"))
	assert.Equal(t, "rel/path", p.ExpandHome("rel/path"))
}

func TestFontDir(t *testing.T) {
	p := newTestPaths(t)
	// Test runs on linux or darwin; either way the dir is under home.
	assert.True(t, strings.HasPrefix(p.FontDir(), p.Home()))
}

func TestEnvFilePath(t *testing.T) {
	p := newTestPaths(t)
	assert.Equal(t, filepath.Join(p.DotfilesRoot(), ".dotsetup.env"), p.EnvFilePath())
}
