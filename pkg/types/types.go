// Package types defines the core data model shared by the installer and
// the verifier: managed resources, symlink mappings, and check results.
package types

import "github.com/arthur-debert/dotsetup/pkg/platform"

// Kind classifies what a ManagedResource is on disk.
type Kind string

const (
	// KindBinary is a tool whose presence is detected on PATH.
	KindBinary Kind = "binary-tool"

	// KindSymlinkFile is a single config file symlinked into the home tree.
	KindSymlinkFile Kind = "symlinked-file"

	// KindSymlinkDir is a config directory symlinked into the home tree.
	KindSymlinkDir Kind = "symlinked-dir"

	// KindPluginDir is a cloned repository detected by a marker path.
	KindPluginDir Kind = "plugin-dir"

	// KindFont is a font file detected by a name pattern in the OS font dir.
	KindFont Kind = "font-file"
)

// InstallMethod says how the installer materializes a resource.
type InstallMethod string

const (
	// InstallPackage goes through the platform package manager.
	InstallPackage InstallMethod = "package"

	// InstallClone is a shallow git clone into a target directory.
	InstallClone InstallMethod = "clone"

	// InstallDownload fetches a file over HTTP into a target directory.
	InstallDownload InstallMethod = "download"

	// InstallCommand runs an arbitrary command (e.g. pipx install).
	InstallCommand InstallMethod = "command"
)

// InstallSpec is one OS-conditioned way to materialize a resource.
type InstallSpec struct {
	Method InstallMethod

	// Package is the package-manager package name (InstallPackage).
	Package string

	// RepoURL and Dest drive InstallClone.
	RepoURL string
	Dest    string

	// URL and Dest drive InstallDownload.
	URL string

	// Command and Args drive InstallCommand. Command is looked up on PATH
	// at install time; the resolved location is threaded through, never
	// written back into the process environment.
	Command string
	Args    []string
}

// Resource is a single thing the system installs or checks. Definitions
// are static and compiled in; see pkg/resources.
type Resource struct {
	// Name is the human-readable label, e.g. "Zoxide".
	Name string

	Kind Kind

	// Command is the PATH locator for binary tools.
	Command string

	// MarkerPath locates plugin dirs and fonts. It is relative to the
	// home directory unless absolute. For fonts it is a glob pattern
	// relative to the OS font directory.
	MarkerPath string

	// MinVersion, when set, is a semver floor the verifier checks the
	// installed tool against. Empty means any version passes.
	MinVersion string

	// VersionArgs invokes the tool's version output (default: --version).
	VersionArgs []string

	// Install maps each recognized OS family to the action that
	// materializes the resource there. A missing entry means the resource
	// cannot be installed on that family and the installer reports manual
	// instructions instead.
	Install map[platform.Family]InstallSpec

	// Manual is the instruction text shown when no install spec applies.
	Manual string
}

// Installable reports whether the resource has an install action for the
// given family. The unknown family never has one.
func (r Resource) Installable(f platform.Family) bool {
	_, ok := r.Install[f]
	return ok && f != platform.Unknown
}

// LinkMapping declares one symlink the installer converges: Target (in the
// user's environment) points at Source (inside the dotfiles tree).
type LinkMapping struct {
	// Name labels the mapping in output, e.g. "Neovim config".
	Name string

	// Source is relative to the dotfiles root.
	Source string

	// Target is relative to the home directory.
	Target string
}
