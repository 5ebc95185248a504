package verifier

import (
	"context"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/arthur-debert/dotsetup/pkg/types"
)

var versionPattern = regexp.MustCompile(`\d+\.\d+(\.\d+)?`)

func (v *Verifier) checkBinary(ctx context.Context, res types.Resource) types.CheckResult {
	if res.Command == "tmux" {
		return v.checkTmux(ctx, res)
	}

	path, err := v.runner.LookPath(res.Command)
	if err != nil {
		return types.CheckResult{Resource: res.Name, State: types.StateMissing,
			Detail: res.Command + " not on PATH"}
	}

	version := v.queryVersion(ctx, path, res, nil)
	if result, failed := v.checkFloor(res, version); failed {
		return result
	}

	if res.Command == "fzf" {
		if detail, ok := v.fzfSmokeTest(ctx, path); !ok {
			return types.CheckResult{Resource: res.Name, State: types.StateMissing, Detail: detail}
		}
	}

	return types.CheckResult{Resource: res.Name, State: types.StateInstalled, Version: version}
}

// checkTmux probes the multiplexer. Merely invoking tmux can create a
// live session through a stale socket, so the probe runs with TMUX unset
// and a throwaway socket directory; with SkipTmux set it does not run at
// all.
func (v *Verifier) checkTmux(ctx context.Context, res types.Resource) types.CheckResult {
	if v.opts.SkipTmux {
		return types.CheckResult{Resource: res.Name, State: types.StateSkipped,
			Detail: "skipped (" + EnvSkipTmux + ")"}
	}

	path, err := v.runner.LookPath(res.Command)
	if err != nil {
		return types.CheckResult{Resource: res.Name, State: types.StateMissing,
			Detail: res.Command + " not on PATH"}
	}

	sandbox := []string{"TMUX=", "TMUX_TMPDIR=/dev/null"}
	version := v.queryVersion(ctx, path, res, sandbox)
	if result, failed := v.checkFloor(res, version); failed {
		return result
	}
	return types.CheckResult{Resource: res.Name, State: types.StateInstalled, Version: version}
}

// queryVersion runs the tool's version invocation and extracts a bare
// version string. Best-effort: an unparseable output degrades to the
// resolved path as metadata.
func (v *Verifier) queryVersion(ctx context.Context, path string, res types.Resource, env []string) string {
	args := res.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	out, err := v.runner.OutputEnv(ctx, env, path, args...)
	if err != nil || out == "" {
		return path
	}

	if match := versionPattern.FindString(out); match != "" {
		return match
	}
	firstLine, _, _ := strings.Cut(out, "\n")
	return firstLine
}

// checkFloor applies the resource's semver minimum, when one is declared
// and the version string parses. The second return is true on failure.
func (v *Verifier) checkFloor(res types.Resource, version string) (types.CheckResult, bool) {
	if res.MinVersion == "" {
		return types.CheckResult{}, false
	}

	have, err := semver.NewVersion(versionPattern.FindString(version))
	if err != nil {
		// Unparseable version output is metadata, not a failure.
		return types.CheckResult{}, false
	}

	floor, err := semver.NewVersion(res.MinVersion)
	if err != nil {
		return types.CheckResult{}, false
	}

	if have.LessThan(floor) {
		return types.CheckResult{
			Resource: res.Name,
			State:    types.StateMissing,
			Version:  version,
			Detail:   "version " + have.String() + " is older than required " + res.MinVersion,
		}, true
	}
	return types.CheckResult{}, false
}

// fzfSmokeTest confirms the fuzzy finder can filter a trivial input.
func (v *Verifier) fzfSmokeTest(ctx context.Context, path string) (string, bool) {
	out, err := v.runner.OutputInput(ctx, "alpha\nbeta\ngamma\n", path, "--filter", "beta")
	if err != nil || !strings.Contains(out, "beta") {
		return "fzf failed to filter a trivial input", false
	}
	return "", true
}
