package verification

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates no record exists with the requested id.
var ErrNotFound = errors.New("verification record not found")

// ErrInvalidID indicates the requested id is not an integer.
var ErrInvalidID = errors.New("verification id must be an integer")

// MapHTTPStatus maps verification domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
