package analysis

import (
	"errors"
	"net/http"
)

// EmptyMessage is shown to users when a submission carries no content.
const EmptyMessage = "No news text or image provided."

// Domain errors for analysis operations.
var (
	ErrEmptySubmission = errors.New("no news text or image provided")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
	ErrInvalidForm     = errors.New("invalid submission form")
)

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrEmptySubmission) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidForm) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
