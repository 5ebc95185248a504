// Package platform detects the host OS family so installer steps can pick
// the right package-manager strategy. Exactly five families are
// recognized; Unknown never attempts an action, only reports manual
// instructions.
package platform

import (
	"bufio"
	"os"
	"runtime"
	"strings"

	"github.com/arthur-debert/dotsetup/pkg/logging"
)

// Family is the closed OS enum the installer branches on.
type Family string

const (
	Darwin  Family = "macos"
	Debian  Family = "debian"
	Fedora  Family = "fedora"
	Arch    Family = "arch"
	Unknown Family = "unknown"
)

// Families lists every recognized family in a stable order.
var Families = []Family{Darwin, Debian, Fedora, Arch, Unknown}

// Info is the global detection result threaded through installer steps.
type Info struct {
	Family Family

	// ID is the raw os-release ID (e.g. "ubuntu"), empty on macOS.
	ID string

	// Pretty is a human-readable OS name for output.
	Pretty string
}

const osReleasePath = "/etc/os-release"

// Detect resolves the host OS family. It never fails: hosts that match no
// known family come back as Unknown.
func Detect() Info {
	return detect(runtime.GOOS, osReleasePath)
}

func detect(goos, releasePath string) Info {
	logger := logging.GetLogger("platform")

	if goos == "darwin" {
		return Info{Family: Darwin, Pretty: "macOS"}
	}
	if goos != "linux" {
		logger.Warn().Str("goos", goos).Msg("unsupported operating system")
		return Info{Family: Unknown, Pretty: goos}
	}

	rel, err := parseOSRelease(releasePath)
	if err != nil {
		logger.Warn().Err(err).Msg("could not read os-release")
		return Info{Family: Unknown, Pretty: "Linux"}
	}

	info := Info{Family: classify(rel), ID: rel["ID"]}
	info.Pretty = rel["PRETTY_NAME"]
	if info.Pretty == "" {
		info.Pretty = "Linux"
	}

	logger.Debug().
		Str("id", info.ID).
		Str("family", string(info.Family)).
		Msg("detected platform")
	return info
}

// classify maps os-release ID (with ID_LIKE fallback) onto a family.
func classify(rel map[string]string) Family {
	ids := []string{rel["ID"]}
	ids = append(ids, strings.Fields(rel["ID_LIKE"])...)

	for _, id := range ids {
		switch id {
		case "debian", "ubuntu", "linuxmint", "pop", "raspbian":
			return Debian
		case "fedora", "rhel", "centos", "rocky", "almalinux":
			return Fedora
		case "arch", "archlinux", "manjaro", "endeavouros":
			return Arch
		}
	}
	return Unknown
}

// parseOSRelease reads the key=value pairs from an os-release file.
// Values may be quoted; quotes are stripped.
func parseOSRelease(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	rel := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		rel[key] = strings.Trim(value, `"'`)
	}
	return rel, scanner.Err()
}
