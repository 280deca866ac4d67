package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const AuthTokenHeader = "AUTH_TOKEN"

type AuthMiddleware struct {
	logs       *zap.SugaredLogger
	authorizer Authorizer
}

func NewAuthMiddleware(logger *zap.SugaredLogger, authorizer Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		logs:       logger,
		authorizer: authorizer,
	}
}

// RequireToken rejects requests without a valid admin token in AUTH_TOKEN.
func (m *AuthMiddleware) RequireToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(AuthTokenHeader)
		if token == "" {
			m.reject(w, r, "missing auth token", nil)
			return
		}

		if err := m.authorizer.Authorize(token); err != nil {
			m.reject(w, r, "invalid auth token", err)
			return
		}

		next(w, r)
	}
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, r *http.Request, reason string, err error) {
	requestID := RequestIDFrom(r.Context())
	m.logs.Warnw("request unauthorized",
		"reason", reason,
		"error", err,
		"path", r.URL.Path,
		"request_id", requestID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "Unauthorized",
		"error":   reason,
	})
}
