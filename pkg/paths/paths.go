// Package paths provides centralized path handling for dotsetup. It
// implements XDG Base Directory compliance and resolves every location the
// installer and verifier hard-code: the dotfiles root, symlink targets,
// the backup root, and the per-OS font directory.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotsetup/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfilesRoot is the primary environment variable for the
	// checked-out configuration tree.
	EnvDotfilesRoot = "DOTSETUP_ROOT"

	// EnvConfigDir overrides the XDG config directory for dotsetup
	EnvConfigDir = "DOTSETUP_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for dotsetup-specific files
	AppDirName = "dotsetup"

	// DefaultDotfilesDir is the default dotfiles directory under home
	DefaultDotfilesDir = "dotfiles"

	// BackupDirName is the fixed backup root name under home
	BackupDirName = "dotfiles_backup"

	// BackupTimestampLayout names per-run backup directories
	BackupTimestampLayout = "20060102_150405"

	// RunLogName is the log file written inside each backup root
	RunLogName = "install.log"
)

// Paths provides centralized path management for dotsetup.
type Paths struct {
	home          string
	dotfilesRoot  string
	xdgConfig     string
	backupDirName string
}

// New creates a Paths instance. If dotfilesRoot is empty it is resolved
// from DOTSETUP_ROOT, falling back to ~/dotfiles.
func New(dotfilesRoot string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
	}

	p := &Paths{home: home, backupDirName: BackupDirName}

	if dotfilesRoot == "" {
		dotfilesRoot = os.Getenv(EnvDotfilesRoot)
	}
	if dotfilesRoot == "" {
		dotfilesRoot = filepath.Join(home, DefaultDotfilesDir)
	}
	p.dotfilesRoot = p.ExpandHome(dotfilesRoot)

	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = p.ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	return p, nil
}

// Home returns the user's home directory.
func (p *Paths) Home() string {
	return p.home
}

// DotfilesRoot returns the checked-out configuration tree root.
func (p *Paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// ConfigDir returns the XDG config directory for dotsetup itself.
func (p *Paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFilePath returns the dotsetup config file location.
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, "dotsetup.toml")
}

// EnvFilePath returns the companion environment file location beside the
// dotfiles root, used in constrained environments.
func (p *Paths) EnvFilePath() string {
	return filepath.Join(p.dotfilesRoot, ".dotsetup.env")
}

// SetBackupDirName overrides the backup root's directory name. Empty
// names are ignored.
func (p *Paths) SetBackupDirName(name string) {
	if name != "" {
		p.backupDirName = name
	}
}

// BackupRoot returns the parent of all per-run backup directories.
func (p *Paths) BackupRoot() string {
	return filepath.Join(p.home, p.backupDirName)
}

// NewBackupDir returns a fresh per-run backup directory path named by the
// given time. The directory is not created.
func (p *Paths) NewBackupDir(now time.Time) string {
	return filepath.Join(p.BackupRoot(), now.Format(BackupTimestampLayout))
}

// FontDir returns the user font directory per the current OS convention.
func (p *Paths) FontDir() string {
	if runtime.GOOS == "darwin" {
		return filepath.Join(p.home, "Library", "Fonts")
	}
	return filepath.Join(p.home, ".local", "share", "fonts")
}

// Source resolves a dotfiles-relative path to an absolute one.
func (p *Paths) Source(rel string) string {
	return filepath.Join(p.dotfilesRoot, rel)
}

// Target resolves a home-relative path to an absolute one.
func (p *Paths) Target(rel string) string {
	return filepath.Join(p.home, rel)
}

// RelativeToHome returns the path of target relative to home, used to
// mirror structure inside the backup tree. Targets outside home come back
// with their leading separator stripped.
func (p *Paths) RelativeToHome(target string) string {
	rel, err := filepath.Rel(p.home, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return strings.TrimPrefix(target, string(filepath.Separator))
	}
	return rel
}

// ExpandHome expands a leading ~ to the user's home directory.
func (p *Paths) ExpandHome(path string) string {
	if path == "~" {
		return p.home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(p.home, path[2:])
	}
	return path
}
