package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/transport/problem"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error)
}

type authResolver interface {
	ResolveAuthContext(ctx context.Context, principalID uuid.UUID, role domain.UserRole) (ctxutil.AuthContext, error)
}

// Auth authenticates bearer access tokens and stores the resolved
// AuthContext. Requests without a token pass through anonymously; a token
// that does not validate is rejected with 401. WebSocket upgrades may carry
// the token in the access_token query parameter instead.
func Auth(validator tokenValidator, resolver authResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" && isWebSocketUpgrade(r) {
				token = r.URL.Query().Get("access_token")
			}
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			userID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				problem.Write(w, r, http.StatusUnauthorized, "invalid or expired access token")
				return
			}

			ac, err := resolver.ResolveAuthContext(r.Context(), userID, role)
			if err != nil {
				logger.ErrorContext(r.Context(), "resolve auth context",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()))
				problem.Write(w, r, http.StatusInternalServerError, "internal server error")
				return
			}

			recordIdentity(r.Context(), ac.PrincipalID, ac.TenantID)
			ctx := ctxutil.WithAuth(r.Context(), ac)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.AuthFromCtx(r.Context()); !ok {
				problem.Write(w, r, http.StatusUnauthorized, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole rejects anonymous requests with 401 and principals lacking
// role with 403.
func RequireRole(role domain.UserRole) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ac, ok := ctxutil.AuthFromCtx(r.Context())
			if !ok {
				problem.Write(w, r, http.StatusUnauthorized, "authentication required")
				return
			}
			if !ac.HasRole(role.String()) {
				problem.Write(w, r, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BearerToken returns the token of an "Authorization: Bearer" header, or
// an empty string.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func isWebSocketUpgrade(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}
