// Package api assembles the JSON API module over the shared domain systems.
package api

import (
	"net/http"

	"github.com/JaimeStill/newsdesk/internal/config"
	"github.com/JaimeStill/newsdesk/pkg/middleware"
	"github.com/JaimeStill/newsdesk/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, runtime *Runtime, domain *Domain) (*module.Module, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(runtime.HTTP.Middleware(cfg.API.BasePath))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
