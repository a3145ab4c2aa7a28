// Package web provides infrastructure for serving web pages with Go templates,
// embedded static assets, and fallback routing.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef defines a page with its route, template file, and title.
type ViewDef struct {
	Route    string
	Template string
	Title    string
}

// ViewData contains the data passed to page templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	BasePath string
	Data     any
}

// TemplateSet holds one parsed template tree per view, each a clone of the
// shared layouts.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet parses the layouts matching layoutGlob and every view under
// viewSubdir. funcs is installed on the layouts before parsing and may be nil.
// Any parse error is returned so a broken template fails startup.
func NewTemplateSet(
	fsys fs.FS,
	layoutGlob, viewSubdir, basePath string,
	funcs template.FuncMap,
	views []ViewDef,
) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(fsys, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(fsys, viewSubdir)
	if err != nil {
		return nil, err
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	for _, p := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", p.Template, err)
		}
		_, err = t.ParseFS(viewSub, p.Template)
		if err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", p.Template, err)
		}
		viewTemplates[p.Template] = t
	}

	return &TemplateSet{
		views:    viewTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the URL prefix passed to every view.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// ErrorHandler renders view with the given status and no data.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, status, layout, view, nil); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// PageHandler renders view with data produced by load on each request.
// load may be nil for static pages.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef, load func(r *http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data any
		if load != nil {
			data = load(r)
		}
		if err := ts.Render(w, http.StatusOK, layout, view, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes layout for view into a buffer and writes it with status.
// Nothing is written when execution fails, so the caller can still send an
// error response.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout string, view ViewDef, data any) error {
	t, ok := ts.views[view.Template]
	if !ok {
		return fmt.Errorf("template not found: %s", view.Template)
	}

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, layout, ViewData{
		Title:    view.Title,
		BasePath: ts.basePath,
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", view.Template, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}
