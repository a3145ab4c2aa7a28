package api

import (
	"github.com/JaimeStill/newsdesk/internal/config"
	"github.com/JaimeStill/newsdesk/internal/infrastructure"
	"github.com/JaimeStill/newsdesk/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination    pagination.Config
	MaxUploadSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Metrics:   infra.Metrics,
			HTTP:      infra.HTTP,
			Storage:   infra.Storage,
		},
		Pagination:    cfg.API.Pagination,
		MaxUploadSize: cfg.API.MaxUploadSizeBytes(),
	}
}
