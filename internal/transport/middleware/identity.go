package middleware

import (
	"context"

	"github.com/google/uuid"
)

type identityKey struct{}

// identity is filled in by the authentication middleware so that outer
// middleware (the access log) can report who made the request.
type identity struct {
	userID   string
	tenantID string
}

func withIdentity(ctx context.Context, id *identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func recordIdentity(ctx context.Context, userID, tenantID uuid.UUID) {
	id, ok := ctx.Value(identityKey{}).(*identity)
	if !ok {
		return
	}
	if userID != uuid.Nil {
		id.userID = userID.String()
	}
	if tenantID != uuid.Nil {
		id.tenantID = tenantID.String()
	}
}
