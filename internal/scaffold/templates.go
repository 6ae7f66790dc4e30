package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	pageTemplates *template.Template
	parseOnce     sync.Once
	parseErr      error
)

// pageData holds the variables available to page templates.
type pageData struct {
	Symbol string // e.g. "ViewPage"
	Param  string // e.g. "userId"; empty for static routes
	Async  bool   // await params before destructuring
	Ext    string // page extension, e.g. "tsx"
}

func loadTemplates() (*template.Template, error) {
	parseOnce.Do(func() {
		pageTemplates, parseErr = template.New("pages").
			Funcs(sprig.TxtFuncMap()).
			ParseFS(templateFS, "templates/*.tmpl")
		if parseErr != nil {
			parseErr = fmt.Errorf("parsing page templates: %w", parseErr)
		}
	})
	return pageTemplates, parseErr
}

// renderPage renders the page body for a variant.
func renderPage(v Variant, data pageData) (string, error) {
	tmpls, err := loadTemplates()
	if err != nil {
		return "", err
	}

	s := v.strategy()
	data.Async = s.async

	var buf bytes.Buffer
	if err := tmpls.ExecuteTemplate(&buf, s.template, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", s.template, err)
	}
	return buf.String(), nil
}
