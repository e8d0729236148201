package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/bnema/tinyguard/internal/domain/tracker"
)

var (
	errNotFound          = errors.New("not found")
	errMethodNotAllowed  = errors.New("method not allowed")
	errInvalidTabID      = errors.New("tab id must be an integer")
	errInvalidBody       = errors.New("invalid request body")
	errMissingEnabled    = errors.New(`"enabled" is required`)
	errReloadUnavailable = errors.New("catalog reload is not configured")
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// statusFor maps catalog load failures to a status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tracker.ErrInvalidTrackerList), errors.Is(err, tracker.ErrNonStringEntry):
		return http.StatusUnprocessableEntity
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
