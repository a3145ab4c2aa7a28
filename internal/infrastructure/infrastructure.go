// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, metrics, upload storage) that domain
// systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JaimeStill/newsdesk/internal/config"
	"github.com/JaimeStill/newsdesk/pkg/lifecycle"
	"github.com/JaimeStill/newsdesk/pkg/metrics"
	"github.com/JaimeStill/newsdesk/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// Storage is nil when no connection string is configured.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *prometheus.Registry
	HTTP      *metrics.HTTP
	Storage   storage.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	reg := metrics.NewRegistry()
	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Metrics:   reg,
		HTTP:      metrics.NewHTTP(reg),
	}

	if cfg.Storage.Enabled() {
		store, err := storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		infra.Storage = store
	} else {
		logger.Info("upload storage disabled")
	}

	return infra, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Storage == nil {
		return nil
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
