package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger returns middleware that logs each request's method, URI, status,
// response size, and duration. Server errors log at error level.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			if rec.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(
				r.Context(), level, "request",
				"method", r.Method,
				"uri", r.URL.RequestURI(),
				"status", rec.status,
				"bytes", rec.bytes,
				"addr", r.RemoteAddr,
				"duration", time.Since(start),
			)
		})
	}
}

type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *recorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
