package web

import "net/http"

// Router is a ServeMux that hands unmatched requests to a not-found handler
// instead of the mux's plain-text 404.
type Router struct {
	mux      *http.ServeMux
	notFound http.Handler
}

// NewRouter creates a Router. A nil notFound keeps the ServeMux default.
func NewRouter(notFound http.Handler) *Router {
	return &Router{mux: http.NewServeMux(), notFound: notFound}
}

// Handle registers handler for pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers handler for pattern.
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.mux.Handle(pattern, handler)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.notFound != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.notFound.ServeHTTP(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}
