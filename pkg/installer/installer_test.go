package installer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsetup/pkg/execx"
	"github.com/arthur-debert/dotsetup/pkg/filesystem"
	"github.com/arthur-debert/dotsetup/pkg/installer"
	"github.com/arthur-debert/dotsetup/pkg/linker"
	"github.com/arthur-debert/dotsetup/pkg/platform"
	"github.com/arthur-debert/dotsetup/pkg/resources"
	"github.com/arthur-debert/dotsetup/pkg/testutil"
)

// populateSources writes every declared link source into the dotfiles tree.
func populateSources(env *testutil.Env) {
	for _, m := range resources.Links() {
		if filepath.Ext(m.Source) == "" && filepath.Base(m.Source) == m.Source {
			// Directory-style sources (nvim, kitty, eza).
			env.WriteSource(filepath.Join(m.Source, "config"), "# "+m.Name+"\n")
		} else {
			env.WriteSource(m.Source, "# "+m.Name+"\n")
		}
	}
}

// debianRunner has every managed binary plus the package manager tooling
// on PATH.
func debianRunner() *execx.ScriptedRunner {
	runner := execx.NewScriptedRunner()
	runner.OnPath["sudo"] = "/usr/bin/sudo"
	runner.OnPath["apt-get"] = "/usr/bin/apt-get"
	return runner
}

func newInstaller(env *testutil.Env, runner execx.Runner) *installer.Installer {
	return installer.New(
		platform.Info{Family: platform.Debian, Pretty: "Debian GNU/Linux"},
		runner,
		filesystem.NewOS(),
		env.Paths,
		installer.Options{AssumeYes: true},
	)
}

// satisfyClonesAndFont marks every clone/download resource as present so
// the run stays offline.
func satisfyClonesAndFont(t *testing.T, env *testutil.Env) {
	t.Helper()

	env.WriteHome(".oh-my-zsh/oh-my-zsh.sh", "# omz\n")
	env.WriteHome(".oh-my-zsh/custom/plugins/zsh-autosuggestions/.git/HEAD", "ref\n")
	env.WriteHome(".oh-my-zsh/custom/plugins/zsh-syntax-highlighting/.git/HEAD", "ref\n")
	env.WriteHome(".tmux/plugins/tpm/.git/HEAD", "ref\n")
	env.WriteHome(".local/share/nvim/lazy/lazy.nvim/README.md", "x\n")

	fontDir := env.Paths.FontDir()
	require.NoError(t, os.MkdirAll(fontDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(fontDir, "JetBrainsMonoNerdFont-Regular.ttf"), []byte("x"), 0644))
}

func TestRunFreshHost(t *testing.T) {
	env := testutil.NewEnv(t)
	populateSources(env)
	satisfyClonesAndFont(t, env)
	runner := debianRunner()

	result, err := newInstaller(env, runner).Run(context.Background())
	require.NoError(t, err)

	// Binary tools were missing, so package installs ran through apt.
	assert.True(t, runner.CommandRan("/usr/bin/sudo"))

	// All declared links converge.
	fs := filesystem.NewOS()
	for _, m := range resources.Links() {
		assert.True(t, linker.IsConverged(fs, env.Paths, m), m.Name)
	}

	// Fresh host: nothing displaced, so the run directory holds only the
	// run log.
	assert.False(t, result.BackupCreated)
	entries, err := os.ReadDir(result.BackupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "install.log", entries[0].Name())

	logContent := env.ReadFile(filepath.Join(result.BackupDir, "install.log"))
	assert.Contains(t, logContent, "installed")
	assert.Contains(t, logContent, "linked")
}

func TestRunIsIdempotent(t *testing.T) {
	env := testutil.NewEnv(t)
	populateSources(env)
	satisfyClonesAndFont(t, env)

	// Second run sees every binary on PATH.
	runner := debianRunner()
	for _, res := range resources.Catalog() {
		if res.Command != "" {
			runner.OnPath[res.Command] = "/usr/bin/" + res.Command
		}
	}

	first, err := newInstaller(env, runner).Run(context.Background())
	require.NoError(t, err)

	second, err := newInstaller(env, runner).Run(context.Background())
	require.NoError(t, err)

	// Everything already satisfied on the second run: no installs, no
	// new backup entries, links already converged.
	assert.Zero(t, second.Installed)
	assert.Equal(t, first.Installed+first.Skipped, second.Skipped)
	assert.False(t, second.BackupCreated)
}

func TestRunBacksUpPreexistingConfig(t *testing.T) {
	env := testutil.NewEnv(t)
	populateSources(env)
	satisfyClonesAndFont(t, env)
	runner := debianRunner()

	env.WriteHome(".zshrc", "user zshrc from before\n")

	result, err := newInstaller(env, runner).Run(context.Background())
	require.NoError(t, err)

	require.True(t, result.BackupCreated)
	backedUp := filepath.Join(result.BackupDir, ".zshrc")
	assert.Equal(t, "user zshrc from before\n", env.ReadFile(backedUp))

	// The target is now the expected symlink.
	dest, err := os.Readlink(filepath.Join(env.Home, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, env.Paths.Source("zsh/zshrc"), dest)

	// The run log recorded the displacement.
	logContent := env.ReadFile(filepath.Join(result.BackupDir, "install.log"))
	assert.Contains(t, logContent, "backed-up")
	assert.Contains(t, logContent, "linked")
}

func TestRunMissingSourceIsFatal(t *testing.T) {
	env := testutil.NewEnv(t)
	// No sources written: the first link step must abort the run.
	satisfyClonesAndFont(t, env)
	runner := debianRunner()

	_, err := newInstaller(env, runner).Run(context.Background())
	require.Error(t, err)
}

func TestRunPackageFailureIsBestEffort(t *testing.T) {
	env := testutil.NewEnv(t)
	populateSources(env)
	satisfyClonesAndFont(t, env)

	runner := debianRunner()
	runner.Fail["/usr/bin/sudo /usr/bin/apt-get install -y neovim"] = true

	result, err := newInstaller(env, runner).Run(context.Background())
	require.NoError(t, err)

	// The failed package produced a warning, and the run continued all
	// the way to link convergence.
	assert.NotEmpty(t, result.Warnings)
	fs := filesystem.NewOS()
	for _, m := range resources.Links() {
		assert.True(t, linker.IsConverged(fs, env.Paths, m), m.Name)
	}
}

func TestRunUnknownFamilyOnlyWarns(t *testing.T) {
	env := testutil.NewEnv(t)
	populateSources(env)
	satisfyClonesAndFont(t, env)
	runner := execx.NewScriptedRunner()

	inst := installer.New(
		platform.Info{Family: platform.Unknown, Pretty: "mystery OS"},
		runner,
		filesystem.NewOS(),
		env.Paths,
		installer.Options{AssumeYes: true},
	)

	result, err := inst.Run(context.Background())
	require.NoError(t, err)

	// No package manager was invoked; every unsatisfied tool became a
	// manual-instructions warning; links still converged.
	assert.False(t, runner.CommandRan("/usr/bin/sudo"))
	assert.NotEmpty(t, result.Warnings)

	fs := filesystem.NewOS()
	for _, m := range resources.Links() {
		assert.True(t, linker.IsConverged(fs, env.Paths, m), m.Name)
	}
}
