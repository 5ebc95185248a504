package install

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/pkg/commands"
	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/execx"
	"github.com/arthur-debert/dotsetup/pkg/filesystem"
	"github.com/arthur-debert/dotsetup/pkg/installer"
	"github.com/arthur-debert/dotsetup/pkg/platform"
	"github.com/arthur-debert/dotsetup/pkg/style"
)

// NewCommand creates the install command
func NewCommand() *cobra.Command {
	var (
		assumeYes bool
		root      string
	)

	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := commands.Bootstrap(root)
			if err != nil {
				return err
			}

			inst := installer.New(
				platform.Detect(),
				execx.New(),
				filesystem.NewOS(),
				p,
				installer.Options{AssumeYes: assumeYes || cfg.Install.AssumeYes},
			)

			result, err := inst.Run(cmd.Context())
			if err != nil {
				if errors.IsErrorCode(err, errors.ErrUserDeclined) {
					style.Step(style.StatusWarning, MsgDeclined)
				}
				return err
			}

			pterm.Println()
			style.Stepf(style.StatusSuccess, MsgDone, result.Installed, result.Skipped)
			if len(result.Warnings) > 0 {
				style.Stepf(style.StatusWarning, MsgWarnings, len(result.Warnings))
			}
			if result.BackupCreated {
				style.Stepf(style.StatusInfo, MsgBackupHint, result.BackupDir)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().StringVar(&root, "root", "", MsgFlagRoot)

	return cmd
}
