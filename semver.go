package bumper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blang/semver"
)

var versionPattern = regexp.MustCompile(
	`\d+\.\d+\.\d+` +
		`(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?` +
		`(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?`)

// Clean extracts the first semantic version found in raw. Anything before it (such as
// a "v" or "release/v" prefix) and anything after it is discarded.
func Clean(raw string) (semver.Version, bool) {
	match := versionPattern.FindString(strings.TrimSpace(raw))
	if match == "" {
		return semver.Version{}, false
	}

	version, err := semver.Parse(match)
	if err != nil {
		return semver.Version{}, false
	}
	return version, true
}

// ParseDefault parses a configured default version. Unlike Clean it only tolerates
// surrounding whitespace and a leading "v" or "=".
func ParseDefault(raw string) (semver.Version, error) {
	trimmed := strings.TrimLeft(strings.TrimSpace(raw), "=v")
	version, err := semver.Parse(trimmed)
	if err != nil {
		return semver.Version{}, fmt.Errorf("%w: default version %q is not a semantic version: %v",
			ErrInvalidConfiguration, raw, err)
	}
	return version, nil
}

// Increment returns the version that follows base for the given bump. Build metadata is
// never carried over. id is the prerelease identifier used by the pre* bumps and may
// be empty.
func Increment(base semver.Version, bump BumpKind, id string) (semver.Version, error) {
	var ident *semver.PRVersion
	if id != "" {
		pr, err := semver.NewPRVersion(id)
		if err != nil {
			return semver.Version{}, fmt.Errorf("invalid prerelease text %q: %w", id, err)
		}
		ident = &pr
	}

	next := semver.Version{Major: base.Major, Minor: base.Minor, Patch: base.Patch}
	hasPre := len(base.Pre) > 0

	switch bump {
	case BumpMajor:
		// 1.0.0-rc.1 is released as 1.0.0
		if base.Minor != 0 || base.Patch != 0 || !hasPre {
			next.Major++
		}
		next.Minor, next.Patch = 0, 0
	case BumpMinor:
		if base.Patch != 0 || !hasPre {
			next.Minor++
		}
		next.Patch = 0
	case BumpPatch:
		if !hasPre {
			next.Patch++
		}
	case BumpPremajor:
		next.Major++
		next.Minor, next.Patch = 0, 0
		next.Pre = nextPrerelease(nil, ident)
	case BumpPreminor:
		next.Minor++
		next.Patch = 0
		next.Pre = nextPrerelease(nil, ident)
	case BumpPrepatch:
		next.Patch++
		next.Pre = nextPrerelease(nil, ident)
	case BumpPrerelease:
		if !hasPre {
			next.Patch++
			next.Pre = nextPrerelease(nil, ident)
			break
		}
		next.Pre = nextPrerelease(base.Pre, ident)
		// switching to an identifier that sorts lower (rc -> beta) starts on the next patch
		if next.LTE(base) {
			next.Patch++
			next.Pre = nextPrerelease(nil, ident)
		}
	default:
		return semver.Version{}, fmt.Errorf("%w: unknown bump %q", ErrInvalidConfiguration, bump)
	}

	return next, nil
}

// nextPrerelease bumps the right-most numeric identifier of pre, appending 0 when there
// is none. A series that does not start with ident is restarted as ident.0.
func nextPrerelease(pre []semver.PRVersion, ident *semver.PRVersion) []semver.PRVersion {
	next := make([]semver.PRVersion, len(pre))
	copy(next, pre)

	if len(next) == 0 {
		next = []semver.PRVersion{numericIdentifier(0)}
	} else {
		bumped := false
		for i := len(next) - 1; i >= 0; i-- {
			if next[i].IsNum {
				next[i].VersionNum++
				bumped = true
				break
			}
		}
		if !bumped {
			next = append(next, numericIdentifier(0))
		}
	}

	if ident == nil {
		return next
	}

	if next[0].Compare(*ident) != 0 || len(next) < 2 || !next[1].IsNum {
		return []semver.PRVersion{*ident, numericIdentifier(0)}
	}
	return next
}

func numericIdentifier(n uint64) semver.PRVersion {
	return semver.PRVersion{VersionNum: n, IsNum: true}
}

// validPrerelease reports whether s can be used as a prerelease identifier
func validPrerelease(s string) bool {
	_, err := semver.NewPRVersion(s)
	return err == nil
}

// validBuild reports whether s is valid build metadata. Dotted values are allowed.
func validBuild(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if _, err := semver.NewBuildVersion(part); err != nil {
			return false
		}
	}
	return true
}

// render formats v the way versions are published: with a "v" prefix
func render(v semver.Version) string {
	return "v" + v.String()
}
