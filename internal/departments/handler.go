package departments

import (
	"net/http"

	"github.com/JaimeStill/newsdesk/pkg/handlers"
	"github.com/JaimeStill/newsdesk/pkg/routes"
)

// Handler exposes the configured rule set.
type Handler struct {
	rules []Rule
}

// NewHandler creates a Handler serving rules.
func NewHandler(rules []Rule) *Handler {
	return &Handler{rules: rules}
}

// Routes returns the route group definition for department rule endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/departments",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/rules", Handler: h.Rules},
		},
	}
}

// Rules returns the configured department rules in configuration order.
func (h *Handler) Rules(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.rules)
}
