// Package config loads dotsetup settings: embedded defaults, then the
// user's config file, then DOTSETUP_* environment variables, each layer
// overriding the last. A companion .dotsetup.env file beside the dotfiles
// root is loaded into the environment first, so constrained (e.g.
// containerized) environments can pre-set overrides without a shell
// profile.
package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	setuperr "github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the resolved settings snapshot used by the commands.
type Config struct {
	Dotfiles struct {
		Root string `koanf:"root" toml:"root"`
	} `koanf:"dotfiles" toml:"dotfiles"`

	Backup struct {
		DirName string `koanf:"dir_name" toml:"dir_name"`
	} `koanf:"backup" toml:"backup"`

	Install struct {
		AssumeYes bool `koanf:"assume_yes" toml:"assume_yes"`
	} `koanf:"install" toml:"install"`

	Verify struct {
		StrictExit bool `koanf:"strict_exit" toml:"strict_exit"`
		SkipTmux   bool `koanf:"skip_tmux" toml:"skip_tmux"`
	} `koanf:"verify" toml:"verify"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load resolves configuration. configFile and envFile may be empty or
// point at nonexistent paths; missing layers are simply skipped.
func Load(configFile, envFile string) (*Config, error) {
	logger := logging.GetLogger("config")

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				logger.Warn().Err(err).Str("path", envFile).Msg("could not load env file")
			} else {
				logger.Debug().Str("path", envFile).Msg("loaded env file")
			}
		}
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, setuperr.Wrap(err, setuperr.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file, when present
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, setuperr.Wrapf(err, setuperr.ErrConfigLoad, "failed to load config from %s", configFile)
			}
			logger.Debug().Str("path", configFile).Msg("loaded config file")
		}
	}

	// 3. Environment: DOTSETUP_VERIFY_STRICT_EXIT -> verify.strict_exit
	envProvider := env.Provider("DOTSETUP_", ".", func(s string) string {
		key := strings.TrimPrefix(s, "DOTSETUP_")
		key = strings.ToLower(key)
		return strings.Replace(key, "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, setuperr.Wrap(err, setuperr.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, setuperr.Wrap(err, setuperr.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// DefaultContent returns the embedded defaults file verbatim, used by the
// config command to seed a user config.
func DefaultContent() string {
	return string(defaultConfig)
}
