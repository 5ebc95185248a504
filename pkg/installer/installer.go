// Package installer brings the host to the state declared in
// pkg/resources, tolerating partial prior state. Tool installation is
// best-effort: a failed package-manager call is logged and the run moves
// on. Backup and symlink failures are fatal, since they indicate a broken
// filesystem precondition rather than a missing optional tool.
package installer

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/backup"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/execx"
	"github.com/arthur-debert/dotsetup/pkg/fetch"
	"github.com/arthur-debert/dotsetup/pkg/linker"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/paths"
	"github.com/arthur-debert/dotsetup/pkg/pkgmgr"
	"github.com/arthur-debert/dotsetup/pkg/platform"
	"github.com/arthur-debert/dotsetup/pkg/resources"
	"github.com/arthur-debert/dotsetup/pkg/style"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// Options configures a run.
type Options struct {
	// AssumeYes skips the interactive confirmation.
	AssumeYes bool
}

// Result summarizes an installer run.
type Result struct {
	Installed int
	Skipped   int
	Warnings  []string
	BackupDir string

	// BackupCreated is false on a fresh host where nothing was displaced.
	BackupCreated bool
}

// Installer executes one run.
type Installer struct {
	info    platform.Info
	runner  execx.Runner
	manager pkgmgr.Manager
	fetcher *fetch.Fetcher
	fs      types.FS
	paths   *paths.Paths
	backup  *backup.Manager
	runLog  *backup.RunLog
	linker  *linker.Linker
	logger  zerolog.Logger
	opts    Options
}

// New wires an installer for the detected platform.
func New(info platform.Info, runner execx.Runner, filesystem types.FS, p *paths.Paths, opts Options) *Installer {
	bm := backup.NewManager(filesystem, p, time.Now())
	rl := backup.NewRunLog(bm.Dir())
	bm.AttachRunLog(rl)

	return &Installer{
		info:    info,
		runner:  runner,
		manager: pkgmgr.ForFamily(info.Family, runner),
		fetcher: fetch.New(),
		fs:      filesystem,
		paths:   p,
		backup:  bm,
		runLog:  rl,
		linker:  linker.New(filesystem, p, bm),
		logger:  logging.GetLogger("installer"),
		opts:    opts,
	}
}

// Run executes the whole installation sequence: package-manager bootstrap,
// tool installs in the fixed catalog order, then symlink setup, then
// editor plugin sync. Returns ErrUserDeclined when confirmation is
// refused; filesystem errors abort immediately.
func (in *Installer) Run(ctx context.Context) (*Result, error) {
	result := &Result{BackupDir: in.backup.Dir()}

	style.Stepf(style.StatusInfo, "Detected platform: %s (%s)", in.info.Pretty, in.info.Family)

	if !style.Confirm("This will install tools and replace config files with symlinks. Continue?", in.opts.AssumeYes) {
		return nil, errors.New(errors.ErrUserDeclined, "installation cancelled")
	}

	in.bootstrapManager(ctx, result)

	for _, res := range resources.Catalog() {
		in.installResource(ctx, res, result)
	}

	if err := in.setupLinks(result); err != nil {
		return result, err
	}

	// Editor plugins sync after linking: the headless run needs the
	// editor config in place.
	in.installResource(ctx, resources.EditorPlugins(), result)

	result.BackupCreated = in.backup.Created()
	return result, nil
}

// bootstrapManager makes the package manager usable. A failure here is a
// warning: later package installs will fail individually and the rest of
// the run (clones, downloads, links) can still proceed.
func (in *Installer) bootstrapManager(ctx context.Context, result *Result) {
	if in.info.Family == platform.Unknown {
		in.warn(result, "unsupported system: package installs will be skipped with manual instructions")
		return
	}

	if err := in.manager.Bootstrap(ctx); err != nil {
		in.warn(result, "package manager bootstrap failed: "+err.Error())
		return
	}
	style.Stepf(style.StatusSuccess, "Package manager ready (%s)", in.manager.Name())
}

func (in *Installer) installResource(ctx context.Context, res types.Resource, result *Result) {
	if in.satisfied(res) {
		style.Stepf(style.StatusSuccess, "%s already installed", res.Name)
		result.Skipped++
		return
	}

	spec, ok := res.Install[in.info.Family]
	if !ok || in.info.Family == platform.Unknown {
		in.warn(result, res.Name+" must be installed manually: "+res.Manual)
		return
	}

	var err error
	switch spec.Method {
	case types.InstallPackage:
		err = in.manager.Install(ctx, spec.Package)
	case types.InstallClone:
		var already bool
		already, err = in.fetcher.Clone(ctx, spec.RepoURL, in.paths.Target(spec.Dest))
		if err == nil && already {
			style.Stepf(style.StatusSuccess, "%s already installed", res.Name)
			result.Skipped++
			return
		}
	case types.InstallDownload:
		_, err = in.fetcher.Download(ctx, spec.URL, in.paths.FontDir())
		if err == nil {
			in.refreshFontCache(ctx)
		}
	case types.InstallCommand:
		err = in.runCommand(ctx, spec)
	default:
		err = errors.Newf(errors.ErrInternal, "unknown install method %q", spec.Method)
	}

	if err != nil {
		in.warn(result, res.Name+" install failed: "+err.Error())
		return
	}

	in.runLog.Record("installed", map[string]string{"resource": res.Name})
	style.Stepf(style.StatusSuccess, "%s installed", res.Name)
	result.Installed++
}

// runCommand resolves the command on PATH and threads the resolved
// location through; the process environment is never mutated.
func (in *Installer) runCommand(ctx context.Context, spec types.InstallSpec) error {
	path, err := in.runner.LookPath(spec.Command)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed, "%s not found on PATH", spec.Command)
	}
	if err := in.runner.Run(ctx, nil, path, spec.Args...); err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed, "%s failed", spec.Command)
	}
	return nil
}

// refreshFontCache is Linux-only housekeeping after a font download.
// Best-effort: missing fc-cache just means the next login picks it up.
func (in *Installer) refreshFontCache(ctx context.Context) {
	if in.info.Family == platform.Darwin {
		return
	}
	if path, err := in.runner.LookPath("fc-cache"); err == nil {
		_ = in.runner.Run(ctx, nil, path, "-f", in.paths.FontDir())
	}
}

func (in *Installer) setupLinks(result *Result) error {
	for _, m := range resources.Links() {
		already, err := in.linker.EnsureLink(m)
		if err != nil {
			style.Stepf(style.StatusError, "%s: %v", m.Name, err)
			return err
		}
		if already {
			style.Stepf(style.StatusSuccess, "%s already linked", m.Name)
			result.Skipped++
			continue
		}
		in.runLog.Record("linked", map[string]string{
			"target": in.paths.Target(m.Target),
			"source": in.paths.Source(m.Source),
		})
		style.Stepf(style.StatusSuccess, "%s linked", m.Name)
		result.Installed++
	}
	return nil
}

// satisfied implements per-kind presence detection: command on PATH,
// marker path on disk, or a font file matching the pattern.
func (in *Installer) satisfied(res types.Resource) bool {
	switch res.Kind {
	case types.KindBinary:
		_, err := in.runner.LookPath(res.Command)
		return err == nil
	case types.KindPluginDir:
		_, err := in.fs.Lstat(in.paths.Target(res.MarkerPath))
		return err == nil
	case types.KindFont:
		matches, err := filepath.Glob(filepath.Join(in.paths.FontDir(), res.MarkerPath))
		return err == nil && len(matches) > 0
	}
	return false
}

func (in *Installer) warn(result *Result, msg string) {
	result.Warnings = append(result.Warnings, msg)
	in.logger.Warn().Msg(msg)
	style.Step(style.StatusWarning, msg)
}
