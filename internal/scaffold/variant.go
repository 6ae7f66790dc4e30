package scaffold

import (
	"fmt"
	"log/slog"

	"github.com/nextroute-dev/nextroute/internal/manifest"
	"github.com/nextroute-dev/nextroute/internal/project"
)

// Variant selects which page template a route is generated from.
type Variant int

const (
	// Static is a route without a dynamic segment.
	Static Variant = iota
	// DynamicCurrent is a [param] route whose page awaits params.
	DynamicCurrent
	// DynamicLegacy is a [param] route whose page reads params synchronously.
	DynamicLegacy
)

// strategy is the data behind a Variant.
type strategy struct {
	name     string
	template string
	dynamic  bool
	async    bool
	label    string
}

var strategies = map[Variant]strategy{
	Static:         {name: "static", template: "page.static.tmpl"},
	DynamicCurrent: {name: "current", template: "page.dynamic.tmpl", dynamic: true, async: true, label: "Next.js 15 and later"},
	DynamicLegacy:  {name: "legacy", template: "page.dynamic.tmpl", dynamic: true, label: "Next.js 14 and earlier"},
}

// Variants lists every variant in declaration order.
var Variants = []Variant{Static, DynamicCurrent, DynamicLegacy}

func (v Variant) strategy() strategy {
	if s, ok := strategies[v]; ok {
		return s
	}
	return strategies[Static]
}

// String returns the variant name used in configuration ("static", "current", "legacy").
func (v Variant) String() string { return v.strategy().name }

// IsDynamic reports whether the variant generates a [param] segment.
func (v Variant) IsDynamic() bool { return v.strategy().dynamic }

// Label names the framework versions a dynamic variant targets; empty for Static.
func (v Variant) Label() string { return v.strategy().label }

// DynamicVariant resolves a configured dynamic_variant value. "auto" asks the
// project which framework version it depends on and falls back to
// DynamicCurrent when that cannot be told.
func DynamicVariant(pc *project.Context, configured string) (Variant, error) {
	switch configured {
	case manifest.VariantCurrent, "":
		return DynamicCurrent, nil
	case manifest.VariantLegacy:
		return DynamicLegacy, nil
	case manifest.VariantAuto:
		awaits, ok := pc.AwaitsParams()
		if !ok {
			slog.Debug("framework version unknown, using current template", "spec", specOf(pc))
			return DynamicCurrent, nil
		}
		if awaits {
			return DynamicCurrent, nil
		}
		return DynamicLegacy, nil
	default:
		return Static, fmt.Errorf("unknown dynamic variant %q", configured)
	}
}

func specOf(pc *project.Context) string {
	if pc == nil {
		return ""
	}
	return pc.FrameworkSpec
}
