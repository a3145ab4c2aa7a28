package storage

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound    = errors.New("upload not found")
	ErrEmptyKey    = errors.New("upload key is empty")
	ErrInvalidKey  = errors.New("upload key must be relative and free of .. segments")
	ErrUnavailable = errors.New("upload storage is not ready")
)

// MapHTTPStatus maps storage errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyKey), errors.Is(err, ErrInvalidKey):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
