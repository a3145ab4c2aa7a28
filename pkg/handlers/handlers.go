// Package handlers provides the JSON response helpers shared by API handlers.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the JSON shape of every API error. Message carries optional
// user-facing text alongside the machine-oriented error.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// RespondJSON writes data as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes err as an ErrorBody. Server errors are logged at
// error level and client errors at warn.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	RespondErrorMessage(w, logger, status, err, "")
}

// RespondErrorMessage is RespondError with a user-facing message.
func RespondErrorMessage(w http.ResponseWriter, logger *slog.Logger, status int, err error, message string) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, "request failed", "status", status, "error", err)

	RespondJSON(w, status, ErrorBody{Error: err.Error(), Message: message})
}
