// Package linker converges config symlinks: after a successful run every
// declared target resolves, via one level of indirection, exactly to its
// source inside the dotfiles tree. Linking is last-writer-wins; whatever
// sat at the target before is displaced through the backup policy first.
package linker

import (
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/backup"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/paths"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Linker creates the declared symlinks.
type Linker struct {
	fs     types.FS
	paths  *paths.Paths
	backup *backup.Manager
	logger zerolog.Logger
}

// New creates a Linker that displaces through the given backup manager.
func New(filesystem types.FS, p *paths.Paths, bm *backup.Manager) *Linker {
	return &Linker{
		fs:     filesystem,
		paths:  p,
		backup: bm,
		logger: logging.GetLogger("linker"),
	}
}

// EnsureLink converges one mapping. Returns true when the link already
// pointed at the source and nothing was changed. Any failure is fatal to
// the run.
func (l *Linker) EnsureLink(m types.LinkMapping) (already bool, err error) {
	source := l.paths.Source(m.Source)
	target := l.paths.Target(m.Target)

	if l.Converged(m) {
		l.logger.Debug().Str("target", target).Msg("link already converged")
		return true, nil
	}

	if _, err := l.fs.Stat(source); err != nil {
		return false, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"link source %s is missing from the dotfiles tree", source)
	}

	if _, err := l.backup.Displace(target); err != nil {
		return false, err
	}

	if err := l.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create parent directory for %s", target)
	}

	if err := l.fs.Symlink(source, target); err != nil {
		return false, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to link %s -> %s", target, source)
	}

	l.logger.Info().Str("target", target).Str("source", source).Msg("symlink created")
	return false, nil
}

// Converged reports whether the target is a symlink pointing exactly at
// the source.
func (l *Linker) Converged(m types.LinkMapping) bool {
	return IsConverged(l.fs, l.paths, m)
}

// IsConverged is the read-only convergence check, shared with the
// verifier so auditing needs no backup machinery.
func IsConverged(filesystem types.FS, p *paths.Paths, m types.LinkMapping) bool {
	target := p.Target(m.Target)

	info, err := filesystem.Lstat(target)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return false
	}

	dest, err := filesystem.Readlink(target)
	if err != nil {
		return false
	}
	return dest == p.Source(m.Source)
}
