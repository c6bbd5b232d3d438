// Package tenant implements tenant (customer profile) persistence and the
// per-tenant legacy id counter.
package tenant

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Repo provides tenant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tenant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	createSQL = `
INSERT INTO tenants (id, owner_user_id, business_name, created_at)
VALUES ($1, $2, $3, now())
RETURNING id, owner_user_id, business_name, created_at`

	getByOwnerSQL = `
SELECT id, owner_user_id, business_name, created_at
FROM tenants WHERE owner_user_id = $1`

	// nextLegacyIDSQL is a single atomic upsert-increment; concurrent callers
	// serialize on the counter row and never observe the same value.
	nextLegacyIDSQL = `
INSERT INTO tenant_counters (tenant_id, value) VALUES ($1, 1)
ON CONFLICT (tenant_id) DO UPDATE SET value = tenant_counters.value + 1
RETURNING value`
)

// Create inserts a tenant owned by t.OwnerUserID.
func (r *Repo) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	var out domain.Tenant
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL, t.ID, t.OwnerUserID, t.BusinessName).
		Scan(&out.ID, &out.OwnerUserID, &out.BusinessName, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "tenant", t.ID)
	}
	return &out, nil
}

// GetByOwner returns the tenant owned by the given user.
// Returns domain.ErrNotFound when the user has no customer profile.
func (r *Repo) GetByOwner(ctx context.Context, userID uuid.UUID) (*domain.Tenant, error) {
	var out domain.Tenant
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByOwnerSQL, userID).
		Scan(&out.ID, &out.OwnerUserID, &out.BusinessName, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "tenant of user", userID)
	}
	return &out, nil
}

// NextLegacyID returns the next value of the tenant's legacy serial. Venues
// and systems draw from the same counter.
func (r *Repo) NextLegacyID(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var v int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, nextLegacyIDSQL, tenantID).Scan(&v); err != nil {
		return 0, postgres.MapError(err, "tenant counter", tenantID)
	}
	return v, nil
}
