package project

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/nextroute-dev/nextroute/internal/branding"
)

const (
	// SourceDir is the conventional nested source folder.
	SourceDir = "src"
	// AppDir is the app-router routing root.
	AppDir = "app"
	// PagesDir is the pages-router routing root.
	PagesDir = "pages"
)

var (
	// ErrNotFrameworkProject is returned when no root is given or the root's
	// package.json does not declare the framework dependency.
	ErrNotFrameworkProject = errors.New("not a Next.js project")

	// ErrRoutingRootNotFound is returned when neither an app nor a pages
	// directory exists where the project convention expects one.
	ErrRoutingRootNotFound = errors.New("app/pages directory not found")
)

// Router identifies which routing convention a routing root follows.
type Router string

const (
	RouterNone  Router = ""
	RouterApp   Router = AppDir
	RouterPages Router = PagesDir
)

// Context is everything detection learned about a project root. It is
// computed once per command and never mutated afterwards.
type Context struct {
	Root                   string
	HasFrameworkDependency bool
	UsesNestedSourceFolder bool
	// RoutingRoot is the absolute routing root, empty when none was found.
	RoutingRoot string
	Router      Router
	// FrameworkSpec is the raw version spec from package.json (e.g. "^15.0.0").
	FrameworkSpec string
	// FrameworkVersion is the lowest version FrameworkSpec admits, nil when
	// the spec could not be interpreted.
	FrameworkVersion *semver.Version
	// ManifestErr records why package.json could not be read, if it couldn't.
	ManifestErr error
}

// HasFrameworkDependency reports whether root's package.json declares the
// framework package under dependencies or devDependencies. A missing or
// unparsable manifest yields false.
func HasFrameworkDependency(root string) bool {
	m, err := ReadManifest(root)
	if err != nil {
		return false
	}
	return m.HasDependency(branding.FrameworkPackage())
}

// UsesNestedSourceFolder reports whether src/app or src/pages exists under root.
func UsesNestedSourceFolder(root string) bool {
	return exists(filepath.Join(root, SourceDir, AppDir)) ||
		exists(filepath.Join(root, SourceDir, PagesDir))
}

// ResolveRoutingRoot returns the first existing routing root, preferring the
// app directory over the pages directory. Both candidates sit under src/
// when the project uses the nested source folder.
func ResolveRoutingRoot(root string) (string, bool) {
	path, router := resolveRoutingRoot(root)
	return path, router != RouterNone
}

func resolveRoutingRoot(root string) (string, Router) {
	base := root
	if UsesNestedSourceFolder(root) {
		base = filepath.Join(root, SourceDir)
	}

	candidates := []struct {
		path   string
		router Router
	}{
		{filepath.Join(base, AppDir), RouterApp},
		{filepath.Join(base, PagesDir), RouterPages},
	}
	for _, c := range candidates {
		if exists(c.path) {
			return c.path, c.router
		}
	}
	return "", RouterNone
}

// Detect inspects root and returns its Context. It never fails: problems are
// recorded on the Context and surfaced by Check.
func Detect(root string) *Context {
	pc := &Context{Root: root}
	if root == "" {
		return pc
	}
	if abs, err := filepath.Abs(root); err == nil {
		pc.Root = abs
	}

	m, err := ReadManifest(pc.Root)
	if err != nil {
		pc.ManifestErr = err
		slog.Debug("manifest unreadable", "root", pc.Root, "error", err)
	} else if spec, ok := m.DependencySpec(branding.FrameworkPackage()); ok {
		pc.HasFrameworkDependency = true
		pc.FrameworkSpec = spec
		pc.FrameworkVersion, _ = MinVersion(spec)
	}

	pc.UsesNestedSourceFolder = UsesNestedSourceFolder(pc.Root)
	pc.RoutingRoot, pc.Router = resolveRoutingRoot(pc.Root)

	slog.Debug("project detected",
		"root", pc.Root,
		"framework", pc.HasFrameworkDependency,
		"spec", pc.FrameworkSpec,
		"src", pc.UsesNestedSourceFolder,
		"routingRoot", pc.RoutingRoot,
	)
	return pc
}

// Check returns ErrNotFrameworkProject or ErrRoutingRootNotFound when the
// project cannot receive scaffolded routes, nil otherwise.
func (pc *Context) Check() error {
	if pc == nil || pc.Root == "" {
		return fmt.Errorf("%w: no project root", ErrNotFrameworkProject)
	}
	if !pc.HasFrameworkDependency {
		if pc.ManifestErr != nil {
			return fmt.Errorf("%w: %w", ErrNotFrameworkProject, pc.ManifestErr)
		}
		return fmt.Errorf("%w: %s does not declare %q", ErrNotFrameworkProject,
			filepath.Join(pc.Root, ManifestFile), branding.FrameworkPackage())
	}
	if pc.RoutingRoot == "" {
		return fmt.Errorf("%w under %s", ErrRoutingRootNotFound, pc.Root)
	}
	return nil
}

// RelRoutingRoot returns the routing root relative to the project root,
// slash-separated, for display.
func (pc *Context) RelRoutingRoot() string {
	if pc.RoutingRoot == "" {
		return ""
	}
	rel, err := filepath.Rel(pc.Root, pc.RoutingRoot)
	if err != nil {
		return pc.RoutingRoot
	}
	return filepath.ToSlash(rel)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
