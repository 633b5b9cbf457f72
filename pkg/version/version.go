// Package version reports build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/rshade/moviefinder/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Set via -ldflags at build time.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// Parse returns the build version as semver, or an error for builds not
// stamped with a release tag.
func Parse() (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("version %q is not semver: %w", version, err)
	}
	return v, nil
}

// IsRelease reports whether the binary carries a release version without a
// prerelease suffix.
func IsRelease() bool {
	return IsReleaseVersion(version)
}

// IsReleaseVersion reports whether raw is a semver release without a
// prerelease suffix.
func IsReleaseVersion(raw string) bool {
	v, err := semver.NewVersion(raw)
	return err == nil && v.Prerelease() == ""
}

// Info is the structured form printed by "moviefinder version --json".
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Release   bool   `json:"release"`
}

// GetInfo collects all build metadata.
func GetInfo() Info {
	return Info{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Release:   IsRelease(),
	}
}

// UserAgent is the User-Agent sent to the OMDb API. Release builds report
// the canonical semver form.
func UserAgent() string {
	if v, err := Parse(); err == nil {
		return "moviefinder/" + v.String()
	}
	return "moviefinder/" + version
}
