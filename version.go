package bumper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blang/semver"
)

// ErrInvalidConfiguration is returned when the configuration cannot be used at all.
// Every other missing or invalid input degrades to a Warning.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Resolve decides whether a new version should be published and what it is.
//
// The version is bumped from the released version (the latest tag) whenever the
// version file is not ahead of it. When the file has already been bumped past the
// release, only the build number may change.
func Resolve(in Input) (Result, error) {
	defaultVersion, err := ParseDefault(in.DefaultVersion)
	if err != nil {
		return Result{}, err
	}

	bump, err := ParseBumpKind(string(in.Bump))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	var warnings []Warning

	prereleaseText := in.PrereleaseText
	if prereleaseText != "" && !validPrerelease(prereleaseText) {
		warnings = append(warnings, Warning{Kind: WarnInvalidPrereleaseText, Value: prereleaseText})
		prereleaseText = ""
	}

	buildNumber := in.BuildNumber
	if buildNumber != "" && !validBuild(buildNumber) {
		warnings = append(warnings, Warning{Kind: WarnInvalidBuildNumber, Value: buildNumber})
		buildNumber = ""
	}

	released, hasReleased := Clean(in.ReleasedVersion)
	switch {
	case in.ReleasedVersion == "":
		warnings = append(warnings, Warning{Kind: WarnNoReleasedVersion})
	case !hasReleased:
		warnings = append(warnings, Warning{Kind: WarnInvalidReleasedVersion, Value: in.ReleasedVersion})
	}

	current, hasCurrent := Clean(in.CurrentVersion)
	if !hasCurrent {
		fallback := defaultVersion.String()
		if strings.TrimSpace(in.CurrentVersion) == "" {
			warnings = append(warnings, Warning{Kind: WarnNoCurrentVersion, Fallback: fallback})
		} else {
			warnings = append(warnings, Warning{
				Kind:     WarnInvalidCurrentVersion,
				Value:    in.CurrentVersion,
				Fallback: fallback,
			})
		}
		current = defaultVersion
	}

	result := decide(current, released, hasReleased, defaultVersion, bump, prereleaseText, buildNumber)
	result.Warnings = warnings
	return result, nil
}

func decide(current, released semver.Version, hasReleased bool, defaultVersion semver.Version,
	bump BumpKind, prereleaseText, buildNumber string) Result {

	// Nothing released yet: the file version is the first release unless it has
	// already moved past the default.
	if !hasReleased {
		return Result{
			Version:    render(current),
			NewVersion: current.LTE(defaultVersion),
		}
	}

	if current.LTE(released) {
		// bump and prereleaseText were validated by Resolve
		next, _ := Increment(released, bump, prereleaseText)
		if buildNumber != "" {
			next.Build = strings.Split(buildNumber, ".")
		}
		return Result{Version: render(next), NewVersion: true}
	}

	// The file was bumped manually; only a new build number makes a new version
	if buildNumber != "" && strings.Join(current.Build, ".") != buildNumber {
		next := semver.Version{
			Major: current.Major,
			Minor: current.Minor,
			Patch: current.Patch,
			Pre:   current.Pre,
			Build: strings.Split(buildNumber, "."),
		}
		return Result{Version: render(next), NewVersion: true}
	}

	return Result{Version: render(current), NewVersion: false}
}
