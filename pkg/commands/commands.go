// Package commands holds the shared startup sequence for the CLI
// commands: resolve paths, load configuration, and re-resolve paths when
// the configuration moves the dotfiles root.
package commands

import (
	"github.com/arthur-debert/dotsetup/pkg/config"
	"github.com/arthur-debert/dotsetup/pkg/paths"
)

// Bootstrap resolves paths and configuration. rootOverride, when
// non-empty, wins over both the environment and the config file.
func Bootstrap(rootOverride string) (*paths.Paths, *config.Config, error) {
	p, err := paths.New(rootOverride)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(p.ConfigFilePath(), p.EnvFilePath())
	if err != nil {
		return nil, nil, err
	}

	if rootOverride == "" && cfg.Dotfiles.Root != "" && cfg.Dotfiles.Root != p.DotfilesRoot() {
		p, err = paths.New(cfg.Dotfiles.Root)
		if err != nil {
			return nil, nil, err
		}
	}
	p.SetBackupDirName(cfg.Backup.DirName)

	return p, cfg, nil
}
