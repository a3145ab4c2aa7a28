package verification

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/newsdesk/pkg/handlers"
	"github.com/JaimeStill/newsdesk/pkg/pagination"
	"github.com/JaimeStill/newsdesk/pkg/routes"
)

// Handler provides HTTP endpoints for reading the verification log and its views.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "verification"),
		pagination: pagination,
	}
}

// Routes returns the route groups for the log and its projections.
func (h *Handler) Routes() []routes.Group {
	return []routes.Group{
		{
			Prefix: "/verifications",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.List},
				{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			},
		},
		{
			Prefix: "/departments",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.Departments},
			},
		},
		{
			Prefix: "/statistics",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: h.Statistics},
			},
		},
	}
}

// List returns a page of records, newest first, optionally filtered by a snippet search term.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	handlers.RespondJSON(w, http.StatusOK, h.sys.List(page))
}

// Find returns a single record by its integer id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrInvalidID), ErrInvalidID)
		return
	}

	rec, err := h.sys.Find(id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rec)
}

// Departments returns the per-department rollup.
func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Departments())
}

// Statistics returns the sentiment histogram and bubble data.
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Statistics())
}
