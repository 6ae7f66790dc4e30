package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// ErrWriteFailed wraps any filesystem failure while writing a plan.
var ErrWriteFailed = errors.New("writing route files failed")

// FS is the filesystem surface the scaffolder writes through.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// OSFS is FS backed by the os package.
type OSFS struct{}

func (OSFS) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (OSFS) MkdirAll(path string, perm fs.FileMode) error { return os.MkdirAll(path, perm) }

func (OSFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Result holds the outcome of a scaffolding run.
type Result struct {
	Plan        *Plan
	OutputDir   string
	Dirs        []string // directories created by this run
	Files       []string // files written, relative to OutputDir
	Overwritten []string // files that existed and were replaced
	Warnings    []string
	Cancelled   bool
	DryRun      bool
}

// Apply writes a plan. Directories are created only when missing, so
// re-running over an existing route leaves sibling content alone. Files are
// always rewritten: the last write wins. A failure part way leaves whatever
// was already written in place.
func Apply(plan *Plan, fsys FS) (*Result, error) {
	result := &Result{Plan: plan, OutputDir: plan.Destination}

	for _, dir := range plan.Dirs {
		full := plan.abs(dir)
		if _, err := fsys.Stat(full); err == nil {
			continue
		}
		if err := fsys.MkdirAll(full, 0755); err != nil {
			return result, fmt.Errorf("%w: creating directory %s: %v", ErrWriteFailed, full, err)
		}
		slog.Debug("created directory", "path", full)
		result.Dirs = append(result.Dirs, dir)
	}

	for _, f := range plan.Files {
		full := plan.abs(f.Path)
		if _, err := fsys.Stat(full); err == nil {
			result.Overwritten = append(result.Overwritten, f.Path)
			result.Warnings = append(result.Warnings, fmt.Sprintf("overwrote existing %s", f.Path))
		}
		if err := fsys.WriteFile(full, []byte(f.Content), 0644); err != nil {
			return result, fmt.Errorf("%w: writing %s: %v", ErrWriteFailed, full, err)
		}
		slog.Debug("wrote file", "path", full, "bytes", len(f.Content))
		result.Files = append(result.Files, f.Path)
	}

	return result, nil
}
