package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"hr-dashboard-api/internal/model"
	"hr-dashboard-api/internal/token"
)

type accessDecoder interface {
	Decode(tokenString string, expected token.Type) (*token.Claims, error)
}

type authFailureCounter interface {
	Inc()
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

// AuthMiddleware is the bearer authorizer: it extracts the bearer
// credential, decodes it as an access token, and exposes the claims to
// downstream handlers. All rejection paths answer an identical generic 401;
// the cause is visible only in logs.
type AuthMiddleware struct {
	decoder  accessDecoder
	failures authFailureCounter
}

func NewAuthMiddleware(decoder accessDecoder, failures authFailureCounter) *AuthMiddleware {
	return &AuthMiddleware{decoder: decoder, failures: failures}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			m.reject(w, "missing bearer header")
			return
		}

		claims, err := m.decoder.Decode(strings.TrimSpace(header[7:]), token.TypeAccess)
		if err != nil {
			slog.Debug("bearer token rejected", "error", err)
			m.reject(w, "token rejected")
			return
		}

		// Authorization trusts the token's role claim; an unknown role in
		// a validly signed token means the enum changed under us and the
		// token must not pass.
		if _, known := model.ParseRole(claims.Role); !known {
			slog.Debug("bearer token carries unknown role", "role", claims.Role)
			m.reject(w, "unknown role")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireCapability gates a route on the capability table. It must run
// after RequireAuth.
func (m *AuthMiddleware) RequireCapability(cap model.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				m.reject(w, "no claims in context")
				return
			}

			role, known := model.ParseRole(claims.Role)
			if !known || !role.Can(cap) {
				writeAuthError(w, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *AuthMiddleware) reject(w http.ResponseWriter, _ string) {
	if m.failures != nil {
		m.failures.Inc()
	}
	writeAuthError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing credentials")
}

func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(*token.Claims)
	return claims, ok
}

func writeAuthError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: message,
		},
	})
}
