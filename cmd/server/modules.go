package main

import (
	"encoding/json"
	"net/http"

	"github.com/JaimeStill/newsdesk/internal/api"
	"github.com/JaimeStill/newsdesk/internal/config"
	"github.com/JaimeStill/newsdesk/internal/infrastructure"
	"github.com/JaimeStill/newsdesk/internal/ocr/tesseract"
	"github.com/JaimeStill/newsdesk/pkg/metrics"
	"github.com/JaimeStill/newsdesk/pkg/middleware"
	"github.com/JaimeStill/newsdesk/pkg/module"
	"github.com/JaimeStill/newsdesk/web/app"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	runtime := api.NewRuntime(cfg, infra)

	domain, err := api.NewDomain(cfg, runtime, tesseract.New())
	if err != nil {
		return nil, err
	}

	apiModule, err := api.NewModule(cfg, runtime, domain)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(
		cfg.API.AppBasePath,
		domain.Analysis,
		domain.Verification,
		runtime.MaxUploadSize,
		infra.Logger,
	)
	if err != nil {
		return nil, err
	}
	appModule.Use(infra.HTTP.Middleware(cfg.API.AppBasePath))
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.API.AppBasePath+"/", http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]any{
				"status":  "not ready",
				"pending": infra.Lifecycle.Pending(),
			})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	if cfg.Metrics.IsEnabled() {
		scrape := metrics.Handler(infra.Metrics)
		router.HandleNative("GET "+cfg.Metrics.Path, scrape.ServeHTTP)
	}

	return router
}
