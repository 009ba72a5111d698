package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mhaugen/awaydays/backend/internal/domain"
)

// errorDetail is the machine-readable error body nested under "error".
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the envelope every non-2xx JSON response uses.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
// Encoding failures at this point can only be logged — the status line has
// already been written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeServiceError maps a service-layer error to an HTTP response:
// ErrNotFound → 404, ErrValidation → 422 with the rule that failed, anything
// else → a generic 500 (the cause is logged, not leaked). The caller supplies
// the not-found message because the handler is the layer that knows what was
// being looked up.
func writeServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", validationMessage(err))
	default:
		slog.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

// writeRequestError reports a bad request rejected before reaching the
// service layer (e.g. missing or malformed body, bad path parameter).
func writeRequestError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// validationMessage extracts the human-readable part from a wrapped
// ErrValidation, e.g.
// "service.FlightService.Create: validation error: days must be at least 1"
// → "days must be at least 1".
func validationMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
