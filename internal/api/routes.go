package api

import (
	"net/http"

	"github.com/JaimeStill/newsdesk/internal/departments"
	"github.com/JaimeStill/newsdesk/pkg/routes"
)

func apiGroups(domain *Domain, runtime *Runtime) []routes.Group {
	groups := []routes.Group{
		domain.Analysis.Handler(runtime.MaxUploadSize).Routes(),
		departments.NewHandler(domain.Rules).Routes(),
	}
	groups = append(groups, domain.Verification.Handler().Routes()...)

	if runtime.Storage != nil {
		groups = append(groups, newUploadsHandler(runtime.Storage, runtime.Logger).routes())
	}
	return groups
}

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	groups := apiGroups(domain, runtime)
	routes.Register(mux, groups...)
	runtime.Logger.Info("api routes registered", "routes", routes.Patterns(groups...))
}
