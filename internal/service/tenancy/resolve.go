package tenancy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// ErrNoTenant is returned when the caller has no customer profile.
var ErrNoTenant = fmt.Errorf("tenant profile not found: %w", domain.ErrNotFound)

// ResolveTenant maps a principal to the tenant it owns.
func (g *Guard) ResolveTenant(ctx context.Context, principalID uuid.UUID) (uuid.UUID, error) {
	t, err := g.tenants.GetByOwner(ctx, principalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, ErrNoTenant
		}
		return uuid.Nil, fmt.Errorf("resolve tenant: %w", err)
	}
	return t.ID, nil
}

// ResolveAuthContext builds the per-request identity. A principal without a
// profile of its kind gets a nil id for it; tenant-scoped calls then fail
// with ErrNoTenant.
func (g *Guard) ResolveAuthContext(ctx context.Context, principalID uuid.UUID, role domain.UserRole) (ctxutil.AuthContext, error) {
	ac := ctxutil.AuthContext{
		PrincipalID: principalID,
		Roles:       []string{role.String()},
	}

	switch role {
	case domain.UserRoleCustomer:
		tenantID, err := g.ResolveTenant(ctx, principalID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return ctxutil.AuthContext{}, err
		}
		if tenantID == uuid.Nil {
			g.log.WarnContext(ctx, "customer without tenant profile",
				slog.String("user_id", principalID.String()))
		}
		ac.TenantID = tenantID
	case domain.UserRoleSinger:
		profile, err := g.singers.GetByUser(ctx, principalID)
		switch {
		case err == nil:
			ac.SingerID = profile.ID
		case !errors.Is(err, domain.ErrNotFound):
			return ctxutil.AuthContext{}, fmt.Errorf("resolve singer profile: %w", err)
		}
	}

	return ac, nil
}

// TenantFromCtx returns the caller's tenant or ErrNoTenant.
func TenantFromCtx(ctx context.Context) (uuid.UUID, error) {
	tenantID, ok := ctxutil.TenantIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, ErrNoTenant
	}
	return tenantID, nil
}
