package toolchain

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersionOutput extracts a semantic version from a tool's --version
// output. It scans whitespace-separated tokens and returns the first one
// that parses as semver, tolerating a leading "v". This handles the formats
// of git ("git version 2.39.2"), uv ("uv 0.4.18 (hash 2024-10-01)"), and
// adb ("Android Debug Bridge version 1.0.41").
func ParseVersionOutput(output string) (string, error) {
	for _, token := range strings.Fields(output) {
		if v, err := parseSemver(token); err == nil {
			return v.String(), nil
		}
	}
	return "", fmt.Errorf("no version found in %q", strings.TrimSpace(output))
}

// MeetsMinimum reports whether version satisfies the minimum. Both strings
// tolerate a leading "v".
func MeetsMinimum(version, minimum string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	m, err := parseSemver(minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	return v.Compare(m) >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
