// Package app serves the newsdesk dashboard: the submission form and the
// department and statistics views over the verification log.
package app

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JaimeStill/newsdesk/internal/analysis"
	"github.com/JaimeStill/newsdesk/internal/departments"
	"github.com/JaimeStill/newsdesk/internal/sentiment"
	"github.com/JaimeStill/newsdesk/internal/verification"
	"github.com/JaimeStill/newsdesk/pkg/module"
	"github.com/JaimeStill/newsdesk/pkg/web"
)

//go:embed templates static
var content embed.FS

const layout = "app"

var (
	verifyView      = web.ViewDef{Route: "/verify", Template: "home.html", Title: "Verify News"}
	departmentsView = web.ViewDef{Route: "/departments", Template: "departments.html", Title: "Departments"}
	statisticsView  = web.ViewDef{Route: "/statistics", Template: "statistics.html", Title: "Statistics"}
	notFoundView    = web.ViewDef{Template: "404.html", Title: "Not Found"}
)

var views = []web.ViewDef{verifyView, departmentsView, statisticsView, notFoundView}

// Bubble plot geometry, in SVG user units.
const (
	plotStep   = 24
	plotMargin = 16
	plotRow    = 10
)

var funcs = template.FuncMap{
	"displayName":    departments.DisplayName,
	"sentimentClass": sentimentClass,
	"timestamp": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05")
	},
	"plotX": func(order int) int {
		return plotMargin + order*plotStep
	},
	"plotY": func(hour int) int {
		return plotMargin + (23-hour)*plotRow
	},
	"plotWidth": func(n int) int {
		return 2*plotMargin + (n+1)*plotStep
	},
}

func sentimentClass(label sentiment.Label) string {
	return strings.ToLower(string(label))
}

// Result is the view model for the submission form.
type Result struct {
	Result  string
	Class   string
	Outcome *analysis.Outcome
}

// Handler renders dashboard pages.
type Handler struct {
	ts            *web.TemplateSet
	analysis      analysis.System
	log           verification.System
	maxUploadSize int64
	logger        *slog.Logger
}

// NewModule creates the dashboard module mounted at basePath.
func NewModule(
	basePath string,
	analysisSys analysis.System,
	log verification.System,
	maxUploadSize int64,
	logger *slog.Logger,
) (*module.Module, error) {
	ts, err := web.NewTemplateSet(
		content,
		"templates/layouts/*.html",
		"templates/views",
		basePath,
		funcs,
		views,
	)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		ts:            ts,
		analysis:      analysisSys,
		log:           log,
		maxUploadSize: maxUploadSize,
		logger:        logger.With("module", "app"),
	}

	return module.New(basePath, h.router()), nil
}

func (h *Handler) router() http.Handler {
	r := web.NewRouter(h.ts.ErrorHandler(layout, notFoundView, http.StatusNotFound))

	verify := h.ts.PageHandler(layout, verifyView, nil)
	r.HandleFunc("GET /{$}", verify)
	r.HandleFunc("GET /home", verify)
	r.HandleFunc("GET "+verifyView.Route, verify)
	r.HandleFunc("POST /analyze", h.Analyze)

	r.HandleFunc("GET "+departmentsView.Route, h.ts.PageHandler(
		layout, departmentsView,
		func(*http.Request) any { return h.log.Departments() },
	))
	r.HandleFunc("GET "+statisticsView.Route, h.ts.PageHandler(
		layout, statisticsView,
		func(*http.Request) any { return h.log.Statistics() },
	))

	r.Handle("GET /static/", web.StaticServer(content, "static", "/static"))

	return r
}

// Analyze runs a form submission through the pipeline and re-renders the
// form with the verdict. An empty submission renders the advisory message
// and logs nothing.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	sub, err := analysis.ParseSubmission(w, r, h.maxUploadSize)
	if err != nil {
		h.renderFailure(w, err)
		return
	}

	outcome, err := h.analysis.Submit(r.Context(), sub)
	if err != nil {
		if errors.Is(err, analysis.ErrEmptySubmission) {
			h.render(w, http.StatusOK, &Result{Result: analysis.EmptyMessage, Class: "advisory"})
			return
		}
		h.renderFailure(w, err)
		return
	}

	h.render(w, http.StatusOK, &Result{
		Result:  outcome.Message,
		Class:   sentimentClass(outcome.Sentiment),
		Outcome: outcome,
	})
}

func (h *Handler) renderFailure(w http.ResponseWriter, err error) {
	status := analysis.MapHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("analyze failed", "error", err)
	}

	message := "Submission could not be read."
	if errors.Is(err, analysis.ErrFileTooLarge) {
		message = "The uploaded file is too large."
	}
	h.render(w, status, &Result{Result: message, Class: "advisory"})
}

func (h *Handler) render(w http.ResponseWriter, status int, result *Result) {
	if err := h.ts.Render(w, status, layout, verifyView, result); err != nil {
		h.logger.Error("render failed", "view", verifyView.Template, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
