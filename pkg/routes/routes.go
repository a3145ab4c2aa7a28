// Package routes declares HTTP endpoints as data and registers them on a
// ServeMux using method-qualified patterns.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group organizes routes under a common prefix. Children inherit the prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	walk("", groups, func(pattern string, handler http.HandlerFunc) {
		mux.HandleFunc(pattern, handler)
	})
}

// Patterns returns the ServeMux patterns Register would install, in
// declaration order.
func Patterns(groups ...Group) []string {
	var patterns []string
	walk("", groups, func(pattern string, _ http.HandlerFunc) {
		patterns = append(patterns, pattern)
	})
	return patterns
}

func walk(parent string, groups []Group, visit func(string, http.HandlerFunc)) {
	for _, group := range groups {
		prefix := parent + group.Prefix
		for _, route := range group.Routes {
			visit(route.Method+" "+prefix+route.Pattern, route.Handler)
		}
		walk(prefix, group.Children, visit)
	}
}
