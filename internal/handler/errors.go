package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"millage/internal/common"
	"millage/internal/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError sends a JSON error with the given status.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, ErrorResponse{Error: message}, statusCode)
}

func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Get().Error().Err(err).Msg("encode response")
	}
}

// writeServiceError maps service errors onto HTTP statuses. Storage and
// unknown failures are logged and reported without internal detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, common.ErrUnauthorized):
		WriteError(w, "authentication required", http.StatusUnauthorized)
	case errors.Is(err, common.ErrForbidden):
		WriteError(w, "access denied", http.StatusForbidden)
	case errors.Is(err, common.ErrInvalidInput):
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Get().Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
