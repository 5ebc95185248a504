// Package pkgmgr implements one package-manager strategy per recognized
// OS family. The Unknown family gets a manager that never acts and only
// reports manual instructions.
package pkgmgr

import (
	"context"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/execx"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/platform"
)

// Manager installs packages for one OS family.
type Manager interface {
	// Name is the package-manager binary, e.g. "brew".
	Name() string

	// Available reports whether the manager binary is on PATH, returning
	// its resolved location.
	Available() (string, bool)

	// Bootstrap makes the manager itself available. Only Homebrew has a
	// real bootstrap; the others ship with the OS.
	Bootstrap(ctx context.Context) error

	// Install installs a single package.
	Install(ctx context.Context, pkg string) error
}

// ForFamily returns the Manager for the detected OS family.
func ForFamily(f platform.Family, runner execx.Runner) Manager {
	switch f {
	case platform.Darwin:
		return &brew{runner: runner}
	case platform.Debian:
		return &apt{runner: runner}
	case platform.Fedora:
		return &dnf{runner: runner}
	case platform.Arch:
		return &pacman{runner: runner}
	default:
		return &none{}
	}
}

// cmdManager covers the managers that are plain command invocations.
type cmdManager struct {
	runner  execx.Runner
	name    string
	install []string
	env     []string
}

func (m *cmdManager) Name() string {
	return m.name
}

func (m *cmdManager) Available() (string, bool) {
	path, err := m.runner.LookPath(m.name)
	return path, err == nil
}

func (m *cmdManager) Install(ctx context.Context, pkg string) error {
	path, ok := m.Available()
	if !ok {
		return errors.Newf(errors.ErrPackageInstall, "%s is not available", m.name)
	}

	args := append(append([]string{}, m.install...), pkg)
	if err := m.runner.Run(ctx, m.env, path, args...); err != nil {
		return errors.Wrapf(err, errors.ErrPackageInstall, "%s failed to install %s", m.name, pkg)
	}

	logger := logging.GetLogger("pkgmgr")
	logger.Info().
		Str("manager", m.name).
		Str("package", pkg).
		Msg("package installed")
	return nil
}
