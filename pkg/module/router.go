package module

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// Router dispatches requests to mounted modules by their first path segment,
// falling back to a native ServeMux for everything else.
type Router struct {
	modules map[string]*Module
	native  *http.ServeMux
}

// NewRouter creates a Router with no modules and an empty native mux.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// HandleNative registers a handler on the native fallback mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers a module for its prefix. Mounting two modules on the same
// prefix panics.
func (r *Router) Mount(m *Module) {
	if _, exists := r.modules[m.prefix]; exists {
		panic(fmt.Sprintf("module already mounted at %s", m.prefix))
	}
	r.modules[m.prefix] = m
}

// Prefixes returns the mounted module prefixes in sorted order.
func (r *Router) Prefixes() []string {
	prefixes := make([]string, 0, len(r.modules))
	for prefix := range r.modules {
		prefixes = append(prefixes, prefix)
	}
	slices.Sort(prefixes)
	return prefixes
}

// ServeHTTP dispatches to the matching module or falls back to the native mux.
// A trailing slash is dropped before matching, except on the root path.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}

	segment, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if m, ok := r.modules["/"+segment]; ok {
		m.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}
