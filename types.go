// Package bumper decides and publishes the next semantic version of a Git repository.
//
// The decision itself (Resolve) is pure; reading tags, reading the version file and
// committing, tagging and pushing are done by collaborators defined in interface.go.
package bumper

import (
	"fmt"
	"strings"
)

// BumpKind is the requested category of increment
type BumpKind string

const (
	BumpMajor      BumpKind = "major"
	BumpMinor      BumpKind = "minor"
	BumpPatch      BumpKind = "patch"
	BumpPremajor   BumpKind = "premajor"
	BumpPreminor   BumpKind = "preminor"
	BumpPrepatch   BumpKind = "prepatch"
	BumpPrerelease BumpKind = "prerelease"
)

// BumpKinds lists every supported bump kind in the order they are documented
var BumpKinds = []BumpKind{
	BumpMajor, BumpMinor, BumpPatch,
	BumpPremajor, BumpPreminor, BumpPrepatch, BumpPrerelease,
}

// ParseBumpKind converts s into a BumpKind. Matching is case-insensitive.
func ParseBumpKind(s string) (BumpKind, error) {
	kind := BumpKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range BumpKinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown bump %q", s)
}

// IsPre reports whether the bump produces a prerelease version
func (b BumpKind) IsPre() bool {
	switch b {
	case BumpPremajor, BumpPreminor, BumpPrepatch, BumpPrerelease:
		return true
	}
	return false
}

func (b BumpKind) String() string {
	return string(b)
}

// Input is everything Resolve needs. Empty strings mean "absent".
type Input struct {
	// CurrentVersion is the raw content of the version file
	CurrentVersion string

	// ReleasedVersion is the name of the latest tag reachable from the branch
	ReleasedVersion string

	// DefaultVersion is used when no current version can be found. It must be valid.
	DefaultVersion string

	Bump BumpKind

	// PrereleaseText is the identifier used by the pre* bumps (e.g. "beta")
	PrereleaseText string

	// BuildNumber is appended as build metadata
	BuildNumber string
}

// Result is the outcome of Resolve
type Result struct {
	// Version is the resolved version, always prefixed with "v"
	Version string `json:"version"`

	// NewVersion reports whether Version should be published
	NewVersion bool `json:"new-version"`

	Warnings []Warning `json:"-"`
}

// WarningKind identifies which input was missing or invalid
type WarningKind string

const (
	WarnNoReleasedVersion      WarningKind = "no-released-version"
	WarnInvalidReleasedVersion WarningKind = "invalid-released-version"
	WarnNoCurrentVersion       WarningKind = "no-current-version"
	WarnInvalidCurrentVersion  WarningKind = "invalid-current-version"
	WarnInvalidPrereleaseText  WarningKind = "invalid-prerelease-text"
	WarnInvalidBuildNumber     WarningKind = "invalid-build-number"
)

// Warning describes an input that degraded to a fallback
type Warning struct {
	Kind WarningKind

	// Value is the offending raw value, empty when the input was absent
	Value string

	// Fallback is what was used instead, empty when the input was dropped
	Fallback string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnNoReleasedVersion:
		return "no released version found, treating the branch as unreleased"
	case WarnInvalidReleasedVersion:
		return fmt.Sprintf("released version %q is not a semantic version, treating the branch as unreleased", w.Value)
	case WarnNoCurrentVersion:
		return fmt.Sprintf("no current version found, using %q", w.Fallback)
	case WarnInvalidCurrentVersion:
		return fmt.Sprintf("current version %q is not a semantic version, using %q", w.Value, w.Fallback)
	case WarnInvalidPrereleaseText:
		return fmt.Sprintf("prerelease text %q is not a valid identifier, ignoring it", w.Value)
	case WarnInvalidBuildNumber:
		return fmt.Sprintf("build number %q is not valid build metadata, ignoring it", w.Value)
	}
	return string(w.Kind)
}
