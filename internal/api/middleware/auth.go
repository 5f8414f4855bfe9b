package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nvales/watchdex/internal/api/response"
	"github.com/nvales/watchdex/internal/domain"
	"github.com/nvales/watchdex/internal/security"
)

type contextKey string

const principalKey contextKey = "principal"

// PrincipalResolver looks up the user behind a verified token subject
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, subject string) (*domain.User, error)
}

// AuthMiddleware handles bearer-token authentication
type AuthMiddleware struct {
	jwtManager *security.JWTManager
	resolver   PrincipalResolver
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *security.JWTManager, resolver PrincipalResolver) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager, resolver: resolver}
}

// Authenticate verifies the bearer token, resolves the principal and attaches
// it to the request context. Any failure ends the request with 401; the
// handler is never invoked.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			response.Unauthorized(w, "No token provided")
			return
		}

		subject, err := m.jwtManager.ValidateAccessToken(token)
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		user, err := m.resolver.ResolvePrincipal(r.Context(), subject)
		if err != nil || user == nil {
			response.Unauthorized(w, "User not found")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return parts[1]
}

// Principal gets the authenticated user from the request context
func Principal(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(principalKey).(*domain.User)
	return user, ok
}
