// Package buildinfo holds the version stamped into the binary at build time
// and normalizes it for display.
package buildinfo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Canonical returns version without a leading "v" and in canonical semver
// form. Development builds ("dev", or anything that is not semver) are
// returned unchanged.
func Canonical(version string) string {
	v, err := parseSemver(version)
	if err != nil {
		return version
	}
	return v.String()
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
