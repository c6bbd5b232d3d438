package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/auth"
	"github.com/heartmarshall/karaoke-backend/internal/service/apikey"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// APIKeyHeader is the preferred header for legacy sync credentials.
const APIKeyHeader = "X-API-Key"

type keyVerifier interface {
	Verify(ctx context.Context, candidate string) apikey.VerifyResult
}

// APIKey authenticates legacy sync clients. The key is read from X-API-Key
// or from an "Authorization: Bearer sk_..." header. Failures answer in the
// legacy {error, message} shape.
func APIKey(verifier keyVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			candidate := ExtractAPIKey(r)
			if candidate == "" {
				writeLegacyUnauthorized(w, "missing API key")
				return
			}

			res := verifier.Verify(r.Context(), candidate)
			if !res.Valid {
				writeLegacyUnauthorized(w, "invalid or revoked API key")
				return
			}

			recordIdentity(r.Context(), uuid.Nil, res.TenantID)
			ctx := ctxutil.WithAPIKey(r.Context(), ctxutil.APIKeyPrincipal{
				KeyID:    res.KeyID,
				TenantID: res.TenantID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractAPIKey returns the presented API key or "".
func ExtractAPIKey(r *http.Request) string {
	if k := strings.TrimSpace(r.Header.Get(APIKeyHeader)); k != "" {
		return k
	}
	if token := BearerToken(r); strings.HasPrefix(token, auth.APIKeyPrefix) {
		return token
	}
	return ""
}

func writeLegacyUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"error":   "invalid_api_key",
		"message": message,
	})
}
