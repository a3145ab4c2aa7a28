// Package module mounts independently configured HTTP sub-applications under
// single-level path prefixes.
package module

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/JaimeStill/newsdesk/pkg/middleware"
)

// Module serves an inner router below a path prefix. Requests reach the
// router with the prefix removed, wrapped in the module's own middleware.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.Stack

	once    sync.Once
	handler http.Handler
}

// New creates a Module for a single-level prefix such as "/api".
// It panics when the prefix is empty, relative, or nested.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{prefix: prefix, router: router}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module. Middleware must be registered
// before the module serves its first request.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the router wrapped in the module middleware.
func (m *Module) Handler() http.Handler {
	m.once.Do(func() {
		m.handler = m.middleware.Apply(m.router)
	})
	return m.handler
}

// Serve dispatches req to the module with the prefix stripped from its path.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	m.Handler().ServeHTTP(w, stripPrefix(req, m.prefix))
}

func stripPrefix(req *http.Request, prefix string) *http.Request {
	rest := strings.TrimPrefix(req.URL.Path, prefix)
	if rest == "" {
		rest = "/"
	}

	u := *req.URL
	u.Path = rest
	u.RawPath = ""

	out := new(http.Request)
	*out = *req
	out.URL = &u
	return out
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("module prefix is empty")
	case prefix[0] != '/':
		return fmt.Errorf("module prefix %q must start with /", prefix)
	case strings.Contains(prefix[1:], "/") || len(prefix) == 1:
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
