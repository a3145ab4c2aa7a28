package web

import (
	"fmt"
	"io/fs"
	"net/http"
)

// StaticServer serves the files under subdir of fsys at urlPrefix. Embedded
// assets only change with a new build, so responses carry a short public
// cache lifetime.
func StaticServer(fsys fs.FS, subdir, urlPrefix string) http.Handler {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		panic(fmt.Sprintf("static subdirectory %q: %v", subdir, err))
	}
	files := http.StripPrefix(urlPrefix, http.FileServerFS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}
