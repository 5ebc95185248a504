package pkgmgr

import (
	"context"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/execx"
)

// brew is the macOS strategy. Unlike the Linux managers it can bootstrap
// itself via the official install script.
type brew struct {
	runner execx.Runner
}

const brewInstallURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

func (b *brew) Name() string { return "brew" }

func (b *brew) Available() (string, bool) {
	path, err := b.runner.LookPath("brew")
	return path, err == nil
}

func (b *brew) Bootstrap(ctx context.Context) error {
	if _, ok := b.Available(); ok {
		return nil
	}

	bash, err := b.runner.LookPath("bash")
	if err != nil {
		return errors.Wrap(err, errors.ErrPackageInstall, "bash not found, cannot bootstrap homebrew")
	}

	// NONINTERACTIVE keeps the script from prompting mid-run.
	err = b.runner.Run(ctx, []string{"NONINTERACTIVE=1"},
		bash, "-c", `curl -fsSL `+brewInstallURL+` | bash`)
	if err != nil {
		return errors.Wrap(err, errors.ErrPackageInstall, "homebrew bootstrap failed")
	}
	return nil
}

func (b *brew) Install(ctx context.Context, pkg string) error {
	path, ok := b.Available()
	if !ok {
		return errors.New(errors.ErrPackageInstall, "brew is not available")
	}
	if err := b.runner.Run(ctx, nil, path, "install", pkg); err != nil {
		return errors.Wrapf(err, errors.ErrPackageInstall, "brew failed to install %s", pkg)
	}
	return nil
}

// apt is the debian-family strategy.
type apt struct {
	runner execx.Runner
}

func (a *apt) Name() string { return "apt-get" }

func (a *apt) Available() (string, bool) {
	path, err := a.runner.LookPath("apt-get")
	return path, err == nil
}

func (a *apt) Bootstrap(ctx context.Context) error {
	path, ok := a.Available()
	if !ok {
		return errors.New(errors.ErrPackageInstall, "apt-get not found")
	}
	// Refresh indexes once so later installs resolve current packages.
	if err := a.runner.Run(ctx, aptEnv(), mustPath(a.runner, "sudo"), path, "update", "-y"); err != nil {
		return errors.Wrap(err, errors.ErrPackageInstall, "apt-get update failed")
	}
	return nil
}

func (a *apt) Install(ctx context.Context, pkg string) error {
	m := &cmdManager{runner: a.runner, name: "sudo", env: aptEnv(),
		install: []string{mustPath(a.runner, "apt-get"), "install", "-y"}}
	return m.Install(ctx, pkg)
}

func aptEnv() []string {
	return []string{"DEBIAN_FRONTEND=noninteractive"}
}

// dnf is the fedora-family strategy.
type dnf struct {
	runner execx.Runner
}

func (d *dnf) Name() string { return "dnf" }

func (d *dnf) Available() (string, bool) {
	path, err := d.runner.LookPath("dnf")
	return path, err == nil
}

func (d *dnf) Bootstrap(ctx context.Context) error {
	if _, ok := d.Available(); !ok {
		return errors.New(errors.ErrPackageInstall, "dnf not found")
	}
	return nil
}

func (d *dnf) Install(ctx context.Context, pkg string) error {
	m := &cmdManager{runner: d.runner, name: "sudo",
		install: []string{mustPath(d.runner, "dnf"), "install", "-y"}}
	return m.Install(ctx, pkg)
}

// pacman is the arch-family strategy.
type pacman struct {
	runner execx.Runner
}

func (p *pacman) Name() string { return "pacman" }

func (p *pacman) Available() (string, bool) {
	path, err := p.runner.LookPath("pacman")
	return path, err == nil
}

func (p *pacman) Bootstrap(ctx context.Context) error {
	if _, ok := p.Available(); !ok {
		return errors.New(errors.ErrPackageInstall, "pacman not found")
	}
	return nil
}

func (p *pacman) Install(ctx context.Context, pkg string) error {
	m := &cmdManager{runner: p.runner, name: "sudo",
		install: []string{mustPath(p.runner, "pacman"), "-S", "--noconfirm"}}
	return m.Install(ctx, pkg)
}

// none is the Unknown-family fallback. It never attempts an action.
type none struct{}

func (n *none) Name() string { return "none" }

func (n *none) Available() (string, bool) { return "", false }

func (n *none) Bootstrap(ctx context.Context) error {
	return errors.New(errors.ErrUnsupportedOS, "no supported package manager on this system")
}

func (n *none) Install(ctx context.Context, pkg string) error {
	return errors.Newf(errors.ErrUnsupportedOS, "cannot install %s: unsupported system, install it manually", pkg)
}

// mustPath resolves a binary on PATH, falling back to the bare name so
// the resulting error message still names the command that failed.
func mustPath(runner execx.Runner, name string) string {
	path, err := runner.LookPath(name)
	if err != nil {
		return name
	}
	return path
}
