package api

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
)

// TokenAuth creates an HTTP middleware that requires a shared bearer token
// on every request. No sessions: each request is checked independently.
func TokenAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented, err := extractBearerToken(r)
			if err != nil {
				log.Printf("Auth failed: %v", err)
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				log.Printf("Auth failed: token mismatch from %s", r.RemoteAddr)
				http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractBearerToken pulls the token out of the Authorization header
func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errMissingAuth
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errNotBearer
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

var (
	errMissingAuth = &authError{"missing Authorization header"}
	errNotBearer   = &authError{"Authorization header is not a Bearer token"}
	errEmptyToken  = &authError{"empty bearer token"}
)

type authError struct {
	reason string
}

func (e *authError) Error() string {
	return e.reason
}
