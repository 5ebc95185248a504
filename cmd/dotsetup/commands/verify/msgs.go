package verify

// Message constants
const (
	MsgShort = "Audit the installed environment (read-only)"
	MsgLong  = `The verify command re-checks every managed tool, plugin directory,
font and config symlink and prints a pass/fail summary. It never mutates
host state; the one tool whose bare invocation has side effects (tmux) is
probed with a sandboxed environment, or skipped entirely with
DOTSETUP_SKIP_TMUX.

By default the exit code is always zero: the report is advisory. Use
--strict (or verify.strict_exit in the config) to exit nonzero when
anything is missing.`

	MsgExample = `  # Audit everything
  dotsetup verify

  # Fail a pipeline on missing resources
  dotsetup verify --strict

  # Never touch tmux
  DOTSETUP_SKIP_TMUX=1 dotsetup verify`

	MsgFlagStrict = "Exit nonzero when any resource is missing"

	MsgStrictFailure = "verification failed: %d resource(s) missing"
)
