package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ErrInvalidProjectFile is returned by Load when nextroute.yaml fails schema validation.
var ErrInvalidProjectFile = errors.New("invalid project file")

// Path returns the location of the project file under root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Load reads, validates and decodes root/nextroute.yaml. A missing file is
// not an error: Load returns (nil, nil).
func Load(root string) (*ProjectFile, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w %s: %s", ErrInvalidProjectFile, path, result.Summary())
	}

	return Parse(data)
}

// Parse decodes project file YAML without validating it.
func Parse(data []byte) (*ProjectFile, error) {
	var pf ProjectFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return &pf, nil
	}
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing project file: %w", err)
	}
	return &pf, nil
}
