package install

// Message constants
const (
	MsgShort = "Install tools and symlink configuration"
	MsgLong  = `The install command brings the host to the desired dotfiles state:

  - bootstraps the package manager for the detected OS family
  - installs the managed tools (best-effort: a failed install is a
    warning, not an abort)
  - moves pre-existing real config files into a timestamped backup
    directory under ~/dotfiles_backup
  - symlinks the configuration tree into place (failures here abort
    the run)

Re-running is safe: satisfied resources are skipped and links are
re-converged.`

	MsgExample = `  # Install everything, with confirmation
  dotsetup install

  # Non-interactive (CI, containers)
  dotsetup install --yes

  # Use a different checkout
  dotsetup install --root ~/src/dotfiles`

	MsgFlagYes  = "Skip the confirmation prompt"
	MsgFlagRoot = "Dotfiles tree to link from (default: DOTSETUP_ROOT or ~/dotfiles)"

	MsgDeclined   = "Nothing was changed"
	MsgDone       = "Install complete: %d changed, %d already satisfied"
	MsgWarnings   = "%d step(s) need attention, see warnings above"
	MsgBackupHint = "Displaced files were saved under %s"
)
