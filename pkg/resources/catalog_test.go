package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotsetup/pkg/platform"
	"github.com/arthur-debert/dotsetup/pkg/types"
)

func TestCatalogInvariants(t *testing.T) {
	seen := make(map[string]bool)

	for _, res := range All() {
		t.Run(res.Name, func(t *testing.T) {
			require.NotEmpty(t, res.Name)
			assert.False(t, seen[res.Name], "duplicate resource name")
			seen[res.Name] = true

			assert.NotEmpty(t, res.Manual, "every resource needs manual instructions")

			switch res.Kind {
			case types.KindBinary:
				assert.NotEmpty(t, res.Command, "binary resources need a PATH locator")
			case types.KindPluginDir, types.KindFont:
				assert.NotEmpty(t, res.MarkerPath, "dir/font resources need a marker")
			}

			// The unknown family never gets an install action.
			assert.False(t, res.Installable(platform.Unknown))

			for family, spec := range res.Install {
				assert.NotEqual(t, platform.Unknown, family)
				switch spec.Method {
				case types.InstallPackage:
					assert.NotEmpty(t, spec.Package)
				case types.InstallClone:
					assert.NotEmpty(t, spec.RepoURL)
					assert.NotEmpty(t, spec.Dest)
				case types.InstallDownload:
					assert.NotEmpty(t, spec.URL)
				case types.InstallCommand:
					assert.NotEmpty(t, spec.Command)
				default:
					t.Fatalf("unknown install method %q", spec.Method)
				}
			}
		})
	}
}

func TestCatalogOrdering(t *testing.T) {
	names := make([]string, 0)
	for _, res := range Catalog() {
		names = append(names, res.Name)
	}

	index := func(name string) int {
		for i, n := range names {
			if n == name {
				return i
			}
		}
		t.Fatalf("resource %q not in catalog", name)
		return -1
	}

	// The correction tool installs through pipx, which needs python.
	assert.Less(t, index("Python 3"), index("Pipx"))
	assert.Less(t, index("Pipx"), index("Thefuck"))

	// Shell plugins clone into the framework's tree.
	assert.Less(t, index("Zsh"), index("Oh My Zsh"))
	assert.Less(t, index("Oh My Zsh"), index("Zsh Autosuggestions"))
	assert.Less(t, index("Oh My Zsh"), index("Zsh Syntax Highlighting"))
}

func TestEditorPluginsIsPostLink(t *testing.T) {
	res := EditorPlugins()
	assert.Equal(t, types.KindPluginDir, res.Kind)

	// Not part of the pre-link catalog.
	for _, c := range Catalog() {
		assert.NotEqual(t, res.Name, c.Name)
	}
	// But audited with everything else.
	found := false
	for _, c := range All() {
		if c.Name == res.Name {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLinksInvariants(t *testing.T) {
	links := Links()
	require.NotEmpty(t, links)

	for _, m := range links {
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Source)
		assert.NotEmpty(t, m.Target)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Catalog()[0].Name)
}
