// Package apikey implements API key metadata persistence using PostgreSQL.
package apikey

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Repo provides API key persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new API key repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type keyRow struct {
	ID          uuid.UUID  `db:"id"`
	TenantID    uuid.UUID  `db:"tenant_id"`
	Description string     `db:"description"`
	KeyHash     string     `db:"key_hash"`
	KeyPrefix   string     `db:"key_prefix"`
	Status      string     `db:"status"`
	ExpiresAt   *time.Time `db:"expires_at"`
	LastUsedAt  *time.Time `db:"last_used_at"`
	RevokedAt   *time.Time `db:"revoked_at"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (r keyRow) toDomain() domain.APIKey {
	return domain.APIKey{
		ID:          r.ID,
		TenantID:    r.TenantID,
		Description: r.Description,
		KeyHash:     r.KeyHash,
		KeyPrefix:   r.KeyPrefix,
		Status:      domain.APIKeyStatus(r.Status),
		ExpiresAt:   r.ExpiresAt,
		LastUsedAt:  r.LastUsedAt,
		RevokedAt:   r.RevokedAt,
		CreatedAt:   r.CreatedAt,
	}
}

const keyColumns = `id, tenant_id, description, key_hash, key_prefix, status, expires_at, last_used_at, revoked_at, created_at`

const (
	createSQL = `
INSERT INTO api_keys (id, tenant_id, description, key_hash, key_prefix, status, expires_at, created_at)
VALUES ($1, $2, $3, $4, $5, 'active', $6, now())
RETURNING ` + keyColumns

	getByIDSQL   = `SELECT ` + keyColumns + ` FROM api_keys WHERE id = $1`
	getByHashSQL = `SELECT ` + keyColumns + ` FROM api_keys WHERE key_hash = $1`

	listByTenantSQL = `SELECT ` + keyColumns + ` FROM api_keys WHERE tenant_id = $1 ORDER BY created_at DESC, id DESC`

	// revokeSQL is terminal and idempotent: the first revocation time sticks.
	revokeSQL = `
UPDATE api_keys SET status = 'revoked', revoked_at = COALESCE(revoked_at, $2)
WHERE id = $1
RETURNING ` + keyColumns

	touchSQL = `UPDATE api_keys SET last_used_at = $2 WHERE id = $1`
)

// Create inserts an active key record.
func (r *Repo) Create(ctx context.Context, k *domain.APIKey) (*domain.APIKey, error) {
	var row keyRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		k.ID, k.TenantID, k.Description, k.KeyHash, k.KeyPrefix, k.ExpiresAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "api_key", k.ID)
	}
	created := row.toDomain()
	return &created, nil
}

// GetByID returns a key by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.APIKey, error) {
	var row keyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "api_key", id)
	}
	k := row.toDomain()
	return &k, nil
}

// GetByHash returns the key with the given SHA-256 digest.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.APIKey, error) {
	var row keyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByHashSQL, hash); err != nil {
		return nil, postgres.MapError(err, "api_key", uuid.Nil)
	}
	k := row.toDomain()
	return &k, nil
}

// ListByTenant returns every key of a tenant, newest first.
func (r *Repo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.APIKey, error) {
	var rows []keyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByTenantSQL, tenantID); err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	keys := make([]domain.APIKey, len(rows))
	for i, row := range rows {
		keys[i] = row.toDomain()
	}
	return keys, nil
}

// Revoke marks a key revoked. Revoking twice keeps the first revoked_at.
func (r *Repo) Revoke(ctx context.Context, id uuid.UUID, at time.Time) (*domain.APIKey, error) {
	var row keyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, revokeSQL, id, at); err != nil {
		return nil, postgres.MapError(err, "api_key", id)
	}
	k := row.toDomain()
	return &k, nil
}

// TouchLastUsed records a successful verification time.
func (r *Repo) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, touchSQL, id, at); err != nil {
		return postgres.MapError(err, "api_key", id)
	}
	return nil
}
