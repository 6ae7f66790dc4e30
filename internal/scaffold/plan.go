package scaffold

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/nextroute-dev/nextroute/internal/manifest"
	"github.com/nextroute-dev/nextroute/internal/route"
)

// Folder and file names written next to every generated page. "componentes"
// is the established folder name in projects using this layout and is kept
// as is.
const (
	TypesDir       = "types"
	ComponentsDir  = "componentes"
	StoreTypesFile = "types/store.type.ts"
	StoreFile      = "store.ts"
	pageBaseName   = "page"
)

// ErrRouteExists is returned when overwriting is disabled and a file the plan
// would write is already present.
var ErrRouteExists = errors.New("route already exists")

// Request is a validated scaffolding request.
type Request struct {
	Route   route.Normalized
	Param   string // required for dynamic variants
	Variant Variant
}

// Options tune how a plan is built and applied.
type Options struct {
	PageExtension string
	Overwrite     bool
}

// File is a file to write, relative to the plan destination.
type File struct {
	Path    string // slash-separated
	Content string
}

// Plan is the full set of directories and files for one route.
type Plan struct {
	Variant     Variant
	Route       string // normalized route, e.g. "users"
	Param       string
	Symbol      string
	RoutingRoot string
	Destination string   // absolute directory receiving the page
	Dirs        []string // relative to Destination; "." is the destination itself
	Files       []File
}

// RelDestination returns the destination relative to the routing root,
// slash-separated: "users/[userId]".
func (p *Plan) RelDestination() string {
	rel := p.Route
	if p.Variant.IsDynamic() {
		rel = path.Join(rel, route.ParamFolder(p.Param))
	}
	return rel
}

// BuildPlan computes where a route goes and what gets written there.
func BuildPlan(routingRoot string, req Request, opts Options) (*Plan, error) {
	if len(req.Route.Segments) == 0 {
		return nil, fmt.Errorf("%w: empty route", route.ErrInvalidRouteName)
	}
	if req.Variant.IsDynamic() {
		if err := route.ValidateParamName(req.Param); err != nil {
			return nil, err
		}
	}

	ext := opts.PageExtension
	if ext == "" {
		ext = manifest.ExtTSX
	}

	dest := filepath.Join(routingRoot, filepath.FromSlash(path.Join(req.Route.Segments...)))
	param := ""
	if req.Variant.IsDynamic() {
		param = req.Param
		dest = filepath.Join(dest, route.ParamFolder(param))
	}

	page, err := renderPage(req.Variant, pageData{
		Symbol: req.Route.Symbol,
		Param:  param,
		Ext:    ext,
	})
	if err != nil {
		return nil, err
	}

	return &Plan{
		Variant:     req.Variant,
		Route:       path.Join(req.Route.Segments...),
		Param:       param,
		Symbol:      req.Route.Symbol,
		RoutingRoot: routingRoot,
		Destination: dest,
		Dirs:        []string{".", TypesDir, ComponentsDir},
		Files: []File{
			{Path: pageBaseName + "." + ext, Content: page},
			{Path: StoreTypesFile, Content: ""},
			{Path: StoreFile, Content: ""},
		},
	}, nil
}

// Existing returns the plan files that are already present on fsys.
func (p *Plan) Existing(fsys FS) []string {
	var found []string
	for _, f := range p.Files {
		if _, err := fsys.Stat(p.abs(f.Path)); err == nil {
			found = append(found, f.Path)
		}
	}
	return found
}

func (p *Plan) abs(rel string) string {
	return filepath.Join(p.Destination, filepath.FromSlash(rel))
}

// checkOverwrite fails with ErrRouteExists when overwriting is off and any
// planned file already exists.
func (p *Plan) checkOverwrite(fsys FS, opts Options) error {
	if opts.Overwrite {
		return nil
	}
	if existing := p.Existing(fsys); len(existing) > 0 {
		return fmt.Errorf("%w: %s already contains %v", ErrRouteExists, p.Destination, existing)
	}
	return nil
}
