// Package resources declares the static set of ManagedResources the
// installer materializes and the verifier audits. Definitions are compiled
// in; they are not runtime-configurable.
package resources

import (
	"github.com/arthur-debert/dotsetup/pkg/platform"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

// pkgAll builds the common case of one package name across every managed
// platform family.
func pkgAll(name string) map[platform.Family]types.InstallSpec {
	spec := types.InstallSpec{Method: types.InstallPackage, Package: name}
	return map[platform.Family]types.InstallSpec{
		platform.Darwin: spec,
		platform.Debian: spec,
		platform.Fedora: spec,
		platform.Arch:   spec,
	}
}

func cloneAll(repo, dest string) map[platform.Family]types.InstallSpec {
	spec := types.InstallSpec{Method: types.InstallClone, RepoURL: repo, Dest: dest}
	return map[platform.Family]types.InstallSpec{
		platform.Darwin: spec,
		platform.Debian: spec,
		platform.Fedora: spec,
		platform.Arch:   spec,
	}
}

func commandAll(cmd string, args ...string) map[platform.Family]types.InstallSpec {
	spec := types.InstallSpec{Method: types.InstallCommand, Command: cmd, Args: args}
	return map[platform.Family]types.InstallSpec{
		platform.Darwin: spec,
		platform.Debian: spec,
		platform.Fedora: spec,
		platform.Arch:   spec,
	}
}

const nerdFontURL = "https://github.com/ryanoasis/nerd-fonts/raw/HEAD/patched-fonts/JetBrainsMono/Ligatures/Regular/JetBrainsMonoNerdFont-Regular.ttf"

// Ordering matters: later resources assume earlier ones exist (the shell
// plugins clone into the framework's tree, the correction tool installs
// through pipx, editor plugin sync needs the editor and its config).
var catalog = []types.Resource{
	{
		Name:       "Neovim",
		Kind:       types.KindBinary,
		Command:    "nvim",
		MinVersion: "0.9.0",
		Install:    pkgAll("neovim"),
		Manual:     "install neovim >= 0.9 from https://neovim.io",
	},
	{
		Name:        "Tmux",
		Kind:        types.KindBinary,
		Command:     "tmux",
		MinVersion:  "3.0",
		VersionArgs: []string{"-V"},
		Install:     pkgAll("tmux"),
		Manual:      "install tmux from your package manager",
	},
	{
		Name:    "Kitty",
		Kind:    types.KindBinary,
		Command: "kitty",
		Install: pkgAll("kitty"),
		Manual:  "install kitty from https://sw.kovidgoyal.net/kitty",
	},
	{
		Name:    "Zsh",
		Kind:    types.KindBinary,
		Command: "zsh",
		Install: pkgAll("zsh"),
		Manual:  "install zsh from your package manager",
	},
	{
		Name:    "Python 3",
		Kind:    types.KindBinary,
		Command: "python3",
		Install: map[platform.Family]types.InstallSpec{
			platform.Darwin: {Method: types.InstallPackage, Package: "python3"},
			platform.Debian: {Method: types.InstallPackage, Package: "python3"},
			platform.Fedora: {Method: types.InstallPackage, Package: "python3"},
			platform.Arch:   {Method: types.InstallPackage, Package: "python"},
		},
		Manual: "install python3 from your package manager",
	},
	{
		Name:    "Pipx",
		Kind:    types.KindBinary,
		Command: "pipx",
		Install: map[platform.Family]types.InstallSpec{
			platform.Darwin: {Method: types.InstallPackage, Package: "pipx"},
			platform.Debian: {Method: types.InstallPackage, Package: "pipx"},
			platform.Fedora: {Method: types.InstallPackage, Package: "pipx"},
			platform.Arch:   {Method: types.InstallPackage, Package: "python-pipx"},
		},
		Manual: "install pipx: python3 -m pip install --user pipx",
	},
	{
		Name:    "Zoxide",
		Kind:    types.KindBinary,
		Command: "zoxide",
		Install: pkgAll("zoxide"),
		Manual:  "install zoxide from https://github.com/ajeetdsouza/zoxide",
	},
	{
		Name:       "Fzf",
		Kind:       types.KindBinary,
		Command:    "fzf",
		MinVersion: "0.40.0",
		Install:    pkgAll("fzf"),
		Manual:     "install fzf from https://github.com/junegunn/fzf",
	},
	{
		Name:    "Thefuck",
		Kind:    types.KindBinary,
		Command: "thefuck",
		Install: commandAll("pipx", "install", "thefuck"),
		Manual:  "install thefuck: pipx install thefuck",
	},
	{
		Name:    "Eza",
		Kind:    types.KindBinary,
		Command: "eza",
		Install: pkgAll("eza"),
		Manual:  "install eza from https://github.com/eza-community/eza",
	},
	{
		Name:       "JetBrainsMono Nerd Font",
		Kind:       types.KindFont,
		MarkerPath: "JetBrainsMono*",
		Install: map[platform.Family]types.InstallSpec{
			platform.Darwin: {Method: types.InstallDownload, URL: nerdFontURL},
			platform.Debian: {Method: types.InstallDownload, URL: nerdFontURL},
			platform.Fedora: {Method: types.InstallDownload, URL: nerdFontURL},
			platform.Arch:   {Method: types.InstallDownload, URL: nerdFontURL},
		},
		Manual: "download JetBrainsMono Nerd Font from https://www.nerdfonts.com",
	},
	{
		Name:       "Oh My Zsh",
		Kind:       types.KindPluginDir,
		MarkerPath: ".oh-my-zsh/oh-my-zsh.sh",
		Install:    cloneAll("https://github.com/ohmyzsh/ohmyzsh.git", ".oh-my-zsh"),
		Manual:     "install oh-my-zsh from https://ohmyz.sh",
	},
	{
		Name:       "Zsh Autosuggestions",
		Kind:       types.KindPluginDir,
		MarkerPath: ".oh-my-zsh/custom/plugins/zsh-autosuggestions/.git",
		Install: cloneAll("https://github.com/zsh-users/zsh-autosuggestions.git",
			".oh-my-zsh/custom/plugins/zsh-autosuggestions"),
		Manual: "clone zsh-autosuggestions into ~/.oh-my-zsh/custom/plugins",
	},
	{
		Name:       "Zsh Syntax Highlighting",
		Kind:       types.KindPluginDir,
		MarkerPath: ".oh-my-zsh/custom/plugins/zsh-syntax-highlighting/.git",
		Install: cloneAll("https://github.com/zsh-users/zsh-syntax-highlighting.git",
			".oh-my-zsh/custom/plugins/zsh-syntax-highlighting"),
		Manual: "clone zsh-syntax-highlighting into ~/.oh-my-zsh/custom/plugins",
	},
	{
		Name:       "Tmux Plugin Manager",
		Kind:       types.KindPluginDir,
		MarkerPath: ".tmux/plugins/tpm/.git",
		Install:    cloneAll("https://github.com/tmux-plugins/tpm.git", ".tmux/plugins/tpm"),
		Manual:     "clone tpm into ~/.tmux/plugins/tpm",
	},
}

// editorPlugins is materialized after symlink setup, since the headless
// sync needs the editor config in place.
var editorPlugins = types.Resource{
	Name:       "Neovim plugins",
	Kind:       types.KindPluginDir,
	MarkerPath: ".local/share/nvim/lazy/lazy.nvim",
	Install:    commandAll("nvim", "--headless", "+Lazy! sync", "+qa"),
	Manual:     "open nvim once to let the plugin manager bootstrap itself",
}

// Catalog returns the tool resources in install order.
func Catalog() []types.Resource {
	out := make([]types.Resource, len(catalog))
	copy(out, catalog)
	return out
}

// EditorPlugins returns the post-link editor plugin resource.
func EditorPlugins() types.Resource {
	return editorPlugins
}

// All returns every resource the verifier audits.
func All() []types.Resource {
	return append(Catalog(), editorPlugins)
}

// Links returns the symlink mappings the installer converges, in setup
// order.
func Links() []types.LinkMapping {
	return []types.LinkMapping{
		{Name: "Neovim config", Source: "nvim", Target: ".config/nvim"},
		{Name: "Kitty config", Source: "kitty", Target: ".config/kitty"},
		{Name: "Tmux config", Source: "tmux/tmux.conf", Target: ".tmux.conf"},
		{Name: "Zsh config", Source: "zsh/zshrc", Target: ".zshrc"},
		{Name: "Eza config", Source: "eza", Target: ".config/eza"},
	}
}
