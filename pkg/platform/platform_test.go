package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		osRelease  string
		wantFamily Family
	}{
		{
			name:       "macOS",
			goos:       "darwin",
			wantFamily: Darwin,
		},
		{
			name:       "windows is unknown",
			goos:       "windows",
			wantFamily: Unknown,
		},
		{
			name: "ubuntu",
			goos: "linux",
			osRelease: `ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 24.04 LTS"
`,
			wantFamily: Debian,
		},
		{
			name: "fedora",
			goos: "linux",
			osRelease: `ID=fedora
PRETTY_NAME="Fedora Linux 40"
`,
			wantFamily: Fedora,
		},
		{
			name: "rocky via ID_LIKE",
			goos: "linux",
			osRelease: `ID=rocky
ID_LIKE="rhel centos fedora"
`,
			wantFamily: Fedora,
		},
		{
			name: "manjaro",
			goos: "linux",
			osRelease: `ID=manjaro
ID_LIKE=arch
`,
			wantFamily: Arch,
		},
		{
			name: "quoted values",
			goos: "linux",
			osRelease: `ID="debian"
PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
`,
			wantFamily: Debian,
		},
		{
			name: "unrecognized distro",
			goos: "linux",
			osRelease: `ID=nixos
`,
			wantFamily: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			releasePath := "/nonexistent/os-release"
			if tt.osRelease != "" {
				releasePath = writeOSRelease(t, tt.osRelease)
			}

			info := detect(tt.goos, releasePath)
			assert.Equal(t, tt.wantFamily, info.Family)
		})
	}
}

func TestDetectMissingOSRelease(t *testing.T) {
	info := detect("linux", "/nonexistent/os-release")
	assert.Equal(t, Unknown, info.Family)
	assert.Equal(t, "Linux", info.Pretty)
}

func TestDetectPrettyName(t *testing.T) {
	path := writeOSRelease(t, `ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 24.04 LTS"
`)
	info := detect("linux", path)
	assert.Equal(t, "Ubuntu 24.04 LTS", info.Pretty)
	assert.Equal(t, "ubuntu", info.ID)
}

func TestParseOSReleaseSkipsComments(t *testing.T) {
	path := writeOSRelease(t, `# comment
ID=arch

BROKENLINE
`)
	rel, err := parseOSRelease(path)
	require.NoError(t, err)
	assert.Equal(t, "arch", rel["ID"])
	assert.NotContains(t, rel, "BROKENLINE")
}
