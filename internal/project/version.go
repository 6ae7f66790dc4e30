package project

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// AsyncParamsMajor is the first framework major that hands route params to
// pages as a promise.
const AsyncParamsMajor = 15

// floatingTags are dist-tags that always resolve to the newest release line.
var floatingTags = map[string]bool{
	"latest": true,
	"canary": true,
	"rc":     true,
	"next":   true,
	"*":      true,
	"x":      true,
}

// MinVersion returns the lowest version a package.json version spec admits.
// It understands exact versions, caret/tilde/comparison ranges, x-ranges,
// hyphen ranges and "||" alternatives; dist-tags and URLs are rejected.
func MinVersion(spec string) (*semver.Version, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("empty version spec")
	}

	var lowest *semver.Version
	for _, alt := range strings.Split(spec, "||") {
		first := firstComparator(alt)
		if first == "" {
			continue
		}
		v, err := semver.NewVersion(lowerBound(first))
		if err != nil {
			return nil, fmt.Errorf("parsing version spec %q: %w", spec, err)
		}
		if lowest == nil || v.LessThan(lowest) {
			lowest = v
		}
	}
	if lowest == nil {
		return nil, fmt.Errorf("no version in spec %q", spec)
	}
	return lowest, nil
}

// firstComparator returns the first comparator of a range, rejoining an
// operator written apart from its version: ">= 13.4.0" → ">=13.4.0".
func firstComparator(rng string) string {
	fields := strings.Fields(rng)
	if len(fields) == 0 {
		return ""
	}
	if strings.Trim(fields[0], "^~=<>") == "" && len(fields) > 1 {
		return fields[0] + fields[1]
	}
	return fields[0]
}

// lowerBound strips range operators from a single comparator and turns
// wildcard parts into zeros: "^14.x" → "14.0". An upper-bound-only
// comparator ("<16") has no lower bound and maps to "0.0.0".
func lowerBound(comparator string) string {
	if strings.HasPrefix(comparator, "<") {
		return "0.0.0"
	}
	s := strings.TrimLeft(comparator, "^~=<>v ")
	parts := strings.Split(s, ".")
	for i, p := range parts {
		if p == "x" || p == "X" || p == "*" {
			parts[i] = "0"
		}
	}
	return strings.Join(parts, ".")
}

// AwaitsParams reports whether the detected framework version delivers route
// params asynchronously. ok is false when the version could not be told.
func (pc *Context) AwaitsParams() (awaits bool, ok bool) {
	if pc == nil || !pc.HasFrameworkDependency {
		return false, false
	}
	if floatingTags[strings.ToLower(pc.FrameworkSpec)] {
		return true, true
	}
	if pc.FrameworkVersion == nil {
		return false, false
	}
	return pc.FrameworkVersion.Major() >= AsyncParamsMajor, true
}
