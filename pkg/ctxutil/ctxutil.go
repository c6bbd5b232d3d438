package ctxutil

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	requestIDKey ctxKey = "request_id"
	authKey      ctxKey = "auth_context"
	apiKeyKey    ctxKey = "api_key"
)

// AuthContext is the caller identity resolved once per request.
// TenantID is uuid.Nil for principals without a customer profile;
// SingerID is uuid.Nil for principals without a singer profile.
type AuthContext struct {
	PrincipalID uuid.UUID
	TenantID    uuid.UUID
	SingerID    uuid.UUID
	Roles       []string
}

// HasRole reports whether the principal carries role.
func (a AuthContext) HasRole(role string) bool {
	return slices.Contains(a.Roles, role)
}

// APIKeyPrincipal identifies a request authenticated by an API key.
type APIKeyPrincipal struct {
	KeyID    uuid.UUID
	TenantID uuid.UUID
}

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithAuth stores the resolved AuthContext and its principal as the user ID.
func WithAuth(ctx context.Context, ac AuthContext) context.Context {
	ctx = WithUserID(ctx, ac.PrincipalID)
	return context.WithValue(ctx, authKey, ac)
}

// AuthFromCtx returns the AuthContext. ok is false for anonymous requests.
func AuthFromCtx(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(authKey).(AuthContext)
	if !ok || ac.PrincipalID == uuid.Nil {
		return AuthContext{}, false
	}
	return ac, true
}

// TenantIDFromCtx returns the caller's tenant, if any.
func TenantIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	if ac, ok := AuthFromCtx(ctx); ok && ac.TenantID != uuid.Nil {
		return ac.TenantID, true
	}
	if p, ok := APIKeyFromCtx(ctx); ok {
		return p.TenantID, true
	}
	return uuid.Nil, false
}

// SingerIDFromCtx returns the caller's singer profile, if any.
func SingerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	ac, ok := AuthFromCtx(ctx)
	if !ok || ac.SingerID == uuid.Nil {
		return uuid.Nil, false
	}
	return ac.SingerID, true
}

// WithAPIKey stores the API key principal in the context.
func WithAPIKey(ctx context.Context, p APIKeyPrincipal) context.Context {
	return context.WithValue(ctx, apiKeyKey, p)
}

// APIKeyFromCtx extracts the API key principal.
func APIKeyFromCtx(ctx context.Context) (APIKeyPrincipal, bool) {
	p, ok := ctx.Value(apiKeyKey).(APIKeyPrincipal)
	if !ok || p.TenantID == uuid.Nil {
		return APIKeyPrincipal{}, false
	}
	return p, true
}

// ActorFromCtx returns the authenticated user for audit attribution, or nil
// for API key and anonymous callers.
func ActorFromCtx(ctx context.Context) *uuid.UUID {
	id, ok := UserIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &id
}
