// Package version reports the build version stamped in via -ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set with -ldflags "-X github.com/avestaexchange/avesta/internal/shared/version.Version=v1.2.0".
var (
	Version = "dev"
	Commit  = "unknown"
)

// Normalize ensures a version string has the "v" prefix semver expects.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// Canonical returns the canonical semver form of v, or v unchanged when it is
// not a semantic version (e.g. "dev").
func Canonical(v string) string {
	n := Normalize(v)
	if !semver.IsValid(n) {
		return v
	}
	return semver.Canonical(n)
}

// String formats the running build for logs and --version.
func String() string {
	return Canonical(Version) + " (" + Commit + ")"
}
