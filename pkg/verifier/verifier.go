// Package verifier is the read-only audit of the installed environment.
// It never mutates host state: every check is an existence probe, a
// version query, or a sandboxed smoke test, and every check is
// independent and non-fatal, so the full summary always prints.
package verifier

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotsetup/pkg/execx"
	"github.com/arthur-debert/dotsetup/pkg/linker"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/arthur-debert/dotsetup/pkg/paths"
	"github.com/arthur-debert/dotsetup/pkg/resources"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// EnvSkipTmux skips checks that could start a multiplexer session.
const EnvSkipTmux = "DOTSETUP_SKIP_TMUX"

// Options configures a verification pass.
type Options struct {
	// SkipTmux disables the multiplexer probe entirely.
	SkipTmux bool
}

// Verifier audits the resource set.
type Verifier struct {
	runner execx.Runner
	fs     types.FS
	paths  *paths.Paths
	logger zerolog.Logger
	opts   Options
}

// New wires a verifier.
func New(runner execx.Runner, filesystem types.FS, p *paths.Paths, opts Options) *Verifier {
	return &Verifier{
		runner: runner,
		fs:     filesystem,
		paths:  p,
		logger: logging.GetLogger("verifier"),
		opts:   opts,
	}
}

// Run checks every resource and symlink mapping and returns the
// aggregated report. It always runs to completion.
func (v *Verifier) Run(ctx context.Context) types.Report {
	var report types.Report

	for _, res := range resources.All() {
		report.Results = append(report.Results, v.checkResource(ctx, res))
	}
	for _, m := range resources.Links() {
		report.Results = append(report.Results, v.checkLink(m))
	}

	installed, missing, skipped := report.Counts()
	v.logger.Info().
		Int("installed", installed).
		Int("missing", missing).
		Int("skipped", skipped).
		Msg("verification complete")
	return report
}

func (v *Verifier) checkResource(ctx context.Context, res types.Resource) types.CheckResult {
	switch res.Kind {
	case types.KindBinary:
		return v.checkBinary(ctx, res)
	case types.KindPluginDir:
		return v.checkMarker(res)
	case types.KindFont:
		return v.checkFont(res)
	}
	return types.CheckResult{Resource: res.Name, State: types.StateSkipped,
		Detail: "no check for kind " + string(res.Kind)}
}

func (v *Verifier) checkMarker(res types.Resource) types.CheckResult {
	marker := v.paths.Target(res.MarkerPath)
	if _, err := v.fs.Lstat(marker); err != nil {
		return types.CheckResult{Resource: res.Name, State: types.StateMissing,
			Detail: "expected " + marker}
	}
	return types.CheckResult{Resource: res.Name, State: types.StateInstalled, Version: marker}
}

func (v *Verifier) checkFont(res types.Resource) types.CheckResult {
	pattern := filepath.Join(v.paths.FontDir(), res.MarkerPath)
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return types.CheckResult{Resource: res.Name, State: types.StateMissing,
			Detail: "no font matching " + pattern}
	}
	return types.CheckResult{Resource: res.Name, State: types.StateInstalled,
		Version: filepath.Base(matches[0])}
}

func (v *Verifier) checkLink(m types.LinkMapping) types.CheckResult {
	if linker.IsConverged(v.fs, v.paths, m) {
		return types.CheckResult{Resource: m.Name, State: types.StateInstalled,
			Version: v.paths.Target(m.Target) + " -> " + v.paths.Source(m.Source)}
	}

	target := v.paths.Target(m.Target)
	detail := target + " is not a symlink to " + v.paths.Source(m.Source)
	if _, err := v.fs.Lstat(target); err != nil {
		detail = target + " does not exist"
	}
	return types.CheckResult{Resource: m.Name, State: types.StateMissing, Detail: detail}
}
