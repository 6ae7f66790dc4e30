package route

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// PageSuffix is appended to the last route segment to form the component symbol.
const PageSuffix = "Page"

var (
	// ErrInvalidRouteName is returned when a route name contains characters
	// outside letters, digits, "/", "-" and "_", or normalizes to nothing.
	ErrInvalidRouteName = errors.New("invalid route name")

	// ErrInvalidParamName is returned when a parameter name is empty or
	// contains anything other than ASCII letters.
	ErrInvalidParamName = errors.New("invalid parameter name")
)

var (
	disallowedChars = regexp.MustCompile(`[^A-Za-z0-9/_-]`)
	multiSlash      = regexp.MustCompile(`/{2,}`)
	routeNameRe     = regexp.MustCompile(`^[A-Za-z0-9/_-]+$`)
	paramNameRe     = regexp.MustCompile(`^[A-Za-z]+$`)
)

// Normalized is a route name reduced to path-safe segments.
type Normalized struct {
	// Path is the normalized route as produced by Normalize.
	Path string
	// Segments are the non-empty components of Path, in order.
	Segments []string
	// Symbol is the component name derived from the last segment.
	Symbol string
}

// Normalize rewrites a route name into a filesystem-safe form:
//   - every character outside [A-Za-z0-9/_-] becomes "-"
//   - runs of "/" collapse into one
//   - leading and trailing "-" are trimmed
//   - the result is lowercased
//
// Example: "Service View/Details" → "service-view/details"
func Normalize(name string) string {
	s := disallowedChars.ReplaceAllString(name, "-")
	s = multiSlash.ReplaceAllString(s, "/")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

// Segments splits a normalized route on "/" and drops empty components.
func Segments(normalized string) []string {
	var segs []string
	for _, part := range strings.Split(normalized, "/") {
		if part != "" {
			segs = append(segs, part)
		}
	}
	return segs
}

// SymbolName derives the page component name from the last segment of a
// normalized route: "service/view" → "ViewPage". A route without segments
// yields the bare suffix.
func SymbolName(normalized string) string {
	segs := Segments(normalized)
	if len(segs) == 0 {
		return PageSuffix
	}
	last := segs[len(segs)-1]
	r, size := utf8.DecodeRuneInString(last)
	return string(unicode.ToUpper(r)) + last[size:] + PageSuffix
}

// Parse normalizes a raw route name and splits it into segments. A name that
// normalizes to no segments at all (e.g. "---" or "/") is rejected rather
// than being placed at the routing root.
func Parse(raw string) (Normalized, error) {
	path := Normalize(raw)
	segs := Segments(path)
	if len(segs) == 0 {
		return Normalized{}, fmt.Errorf("%w: %q does not contain any usable path segment", ErrInvalidRouteName, raw)
	}
	return Normalized{
		Path:     path,
		Segments: segs,
		Symbol:   SymbolName(path),
	}, nil
}

// ValidateRouteName rejects names containing characters other than letters,
// digits, "/", "-" and "_". Empty input is the caller's business: it means
// the user cancelled.
func ValidateRouteName(name string) error {
	if !routeNameRe.MatchString(name) {
		return fmt.Errorf("%w %q: only letters, digits, \"/\", \"-\" and \"_\" are allowed", ErrInvalidRouteName, name)
	}
	return nil
}

// ValidateParamName requires a non-empty name made of ASCII letters only,
// since it becomes both a bracketed folder and a code identifier.
func ValidateParamName(name string) error {
	if !paramNameRe.MatchString(name) {
		return fmt.Errorf("%w %q: only letters (a-z, A-Z) are allowed", ErrInvalidParamName, name)
	}
	return nil
}

// ParamFolder returns the dynamic segment folder name for a parameter: "id" → "[id]".
func ParamFolder(param string) string {
	return "[" + param + "]"
}
