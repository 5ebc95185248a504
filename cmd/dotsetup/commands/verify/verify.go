package verify

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/pkg/commands"
	"github.com/arthur-debert/dotsetup/pkg/execx"
	"github.com/arthur-debert/dotsetup/pkg/filesystem"
	"github.com/arthur-debert/dotsetup/pkg/style"
	"github.com/arthur-debert/dotsetup/pkg/verifier"
)

// NewCommand creates the verify command
func NewCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:     "verify",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := commands.Bootstrap("")
			if err != nil {
				return err
			}

			opts := verifier.Options{
				SkipTmux: cfg.Verify.SkipTmux || os.Getenv(verifier.EnvSkipTmux) != "",
			}

			v := verifier.New(execx.New(), filesystem.NewOS(), p, opts)
			report := v.Run(cmd.Context())

			pterm.Println(style.RenderReport(report))

			if (strict || cfg.Verify.StrictExit) && !report.AllPassed() {
				_, missing, _ := report.Counts()
				return fmt.Errorf(MsgStrictFailure, missing)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)

	return cmd
}
