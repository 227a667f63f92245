package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cardbox/cardbox-go/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// writeError classifies err onto the closed taxonomy and writes the
// uniform error response: one kind, one stable message, no internals.
func writeError(w http.ResponseWriter, err error) {
	appErr := apperr.Classify(err)
	if appErr.Kind == apperr.KindInternal {
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, appErr.Kind.Status(), errorResponse(appErr.Message))
}

// decodeJSON decodes the request body into dst with a 1MB cap.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return apperr.Validation("request body too large")
		}
		return apperr.Validation("invalid request body")
	}
	return nil
}
