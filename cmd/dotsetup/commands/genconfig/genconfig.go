package genconfig

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotsetup/pkg/commands"
	"github.com/arthur-debert/dotsetup/pkg/config"
	"github.com/arthur-debert/dotsetup/pkg/style"
)

// NewCommand creates the genconfig command
func NewCommand() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := commands.Bootstrap("")
			if err != nil {
				return err
			}

			if write {
				path := p.ConfigFilePath()
				if _, err := os.Stat(path); err == nil {
					style.Stepf(style.StatusWarning, MsgExists, path)
					return nil
				}
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					return err
				}
				if err := os.WriteFile(path, []byte(config.DefaultContent()), 0644); err != nil {
					return err
				}
				style.Stepf(style.StatusSuccess, MsgWritten, path)
				return nil
			}

			// Without --write, print the effective merged configuration.
			out, err := toml.Marshal(cfg)
			if err != nil {
				return err
			}
			pterm.Print(string(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)

	return cmd
}
