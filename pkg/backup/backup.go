// Package backup implements the installer's displace-before-link policy.
// The policy is deliberately asymmetric: a regular file or directory at a
// target path is user data and is moved into the per-run backup tree,
// preserving its home-relative path; a symlink at a target path is prior
// installer output and is removed without backup.
package backup

import (
	"io/fs"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/paths"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Outcome says what Displace did with a target path.
type Outcome string

const (
	// OutcomeNothing means the target did not exist.
	OutcomeNothing Outcome = "nothing"

	// OutcomeBackedUp means a real file or directory was moved into the
	// backup tree.
	OutcomeBackedUp Outcome = "backed-up"

	// OutcomeRemovedLink means a pre-existing symlink was discarded.
	OutcomeRemovedLink Outcome = "removed-link"
)

// Manager owns one installer run's backup directory. The directory is
// created lazily on the first displaced file, so a fresh host ends the run
// with no backup entries at all.
type Manager struct {
	fs      types.FS
	paths   *paths.Paths
	dir     string
	created bool
	logger  zerolog.Logger
	runLog  *RunLog
}

// NewManager prepares a backup manager for a run starting at now.
func NewManager(filesystem types.FS, p *paths.Paths, now time.Time) *Manager {
	return &Manager{
		fs:     filesystem,
		paths:  p,
		dir:    p.NewBackupDir(now),
		logger: logging.GetLogger("backup"),
	}
}

// Dir returns the per-run backup directory path.
func (m *Manager) Dir() string {
	return m.dir
}

// Created reports whether anything was backed up this run.
func (m *Manager) Created() bool {
	return m.created
}

// AttachRunLog ties a run log to the manager so every displacement is
// recorded durably.
func (m *Manager) AttachRunLog(rl *RunLog) {
	m.runLog = rl
}

func (m *Manager) ensureDir() error {
	if m.created {
		return nil
	}
	if err := m.fs.MkdirAll(m.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create backup directory %s", m.dir)
	}
	m.created = true
	return nil
}

// Displace clears the way for a symlink at target, applying the
// asymmetric policy. Failures here are fatal to the run: they indicate a
// broken filesystem precondition, not a missing optional tool.
func (m *Manager) Displace(target string) (Outcome, error) {
	info, err := m.fs.Lstat(target)
	if err != nil {
		// Target absent: nothing to do.
		return OutcomeNothing, nil
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		if err := m.fs.Remove(target); err != nil {
			return OutcomeNothing, errors.Wrapf(err, errors.ErrBackupFailed,
				"failed to remove existing symlink %s", target)
		}
		m.logger.Debug().Str("target", target).Msg("removed stale symlink")
		m.record("removed-link", target, "")
		return OutcomeRemovedLink, nil
	}

	if err := m.ensureDir(); err != nil {
		return OutcomeNothing, err
	}

	rel := m.paths.RelativeToHome(target)
	dest := filepath.Join(m.dir, rel)
	if err := m.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return OutcomeNothing, errors.Wrapf(err, errors.ErrBackupFailed,
			"failed to create backup parent for %s", rel)
	}
	if err := m.fs.Rename(target, dest); err != nil {
		return OutcomeNothing, errors.Wrapf(err, errors.ErrBackupFailed,
			"failed to move %s to backup", target)
	}

	m.logger.Info().Str("target", target).Str("backup", dest).Msg("backed up existing file")
	m.record("backed-up", target, dest)
	return OutcomeBackedUp, nil
}

func (m *Manager) record(action, target, dest string) {
	if m.runLog == nil {
		return
	}
	m.runLog.Record(action, map[string]string{"target": target, "backup": dest})
}
