package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ManifestFile is the npm manifest read from the project root.
const ManifestFile = "package.json"

// ErrManifestUnreadable is returned when package.json is missing or is not
// valid JSON. Detection fails closed on it.
var ErrManifestUnreadable = errors.New("package.json unreadable")

// PackageManifest holds the parts of package.json that detection cares about.
type PackageManifest struct {
	Name            string         `json:"name"`
	Dependencies    map[string]any `json:"dependencies"`
	DevDependencies map[string]any `json:"devDependencies"`
}

// ReadManifest reads and parses package.json under root.
func ReadManifest(root string) (*PackageManifest, error) {
	path := filepath.Join(root, ManifestFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrManifestUnreadable, path, err)
	}

	var m PackageManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrManifestUnreadable, path, err)
	}
	return &m, nil
}

// DependencySpec returns the version spec declared for pkg, looking at
// production dependencies first and development dependencies second.
// The boolean is false when the package is not declared with a truthy value.
func (m *PackageManifest) DependencySpec(pkg string) (string, bool) {
	for _, deps := range []map[string]any{m.Dependencies, m.DevDependencies} {
		v, ok := deps[pkg]
		if !ok || !truthy(v) {
			continue
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s), true
		}
		return fmt.Sprint(v), true
	}
	return "", false
}

// HasDependency reports whether pkg is declared under dependencies or
// devDependencies.
func (m *PackageManifest) HasDependency(pkg string) bool {
	_, ok := m.DependencySpec(pkg)
	return ok
}

// truthy mirrors how npm tooling treats manifest values: null, false, "" and
// 0 do not count as a declaration.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	default:
		return true
	}
}
