package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cardbox/cardbox-go/internal/crypto"
)

type contextKey string

const subjectIDKey contextKey = "subjectID"

// authRequiredMessage is the single response body for every gate
// failure. A missing header, a malformed token, and a token signed with
// the wrong key are deliberately indistinguishable to the client.
const authRequiredMessage = "authorization required"

// Auth returns middleware that validates a Bearer token from the
// Authorization header and stores the authenticated subject id in the
// request context. It fails closed: any validation failure rejects the
// request before it reaches downstream handlers.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, authRequiredMessage)
				return
			}

			subjectID, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, authRequiredMessage)
				return
			}

			ctx := context.WithValue(r.Context(), subjectIDKey, subjectID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectIDFromContext extracts the authenticated user id from the
// request context.
func SubjectIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(subjectIDKey).(string)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
