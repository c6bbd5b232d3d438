// Package system implements the karaoke System repository using PostgreSQL.
package system

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Repo provides system persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new system repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const systemColumns = `s.id, s.tenant_id, s.name, s.openkj_system_id, s.created_at, s.updated_at,
    (SELECT count(*) FROM songs WHERE songs.system_id = s.id) AS song_count`

const (
	getByIDSQL       = `SELECT ` + systemColumns + ` FROM systems s WHERE s.id = $1`
	getByLegacyIDSQL = `SELECT ` + systemColumns + ` FROM systems s WHERE s.tenant_id = $1 AND s.openkj_system_id = $2`

	createSQL = `
INSERT INTO systems (id, tenant_id, name, openkj_system_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING id, tenant_id, name, openkj_system_id, created_at, updated_at, 0`

	renameSQL = `
UPDATE systems s SET name = $2, updated_at = now()
WHERE s.id = $1
RETURNING ` + systemColumns

	deleteSQL = `DELETE FROM systems WHERE id = $1`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a system with its current song count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.System, error) {
	s, err := scanSystem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "system", id)
	}
	return s, nil
}

// GetByLegacyID returns the tenant's system carrying the given legacy id.
func (r *Repo) GetByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.System, error) {
	s, err := scanSystem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByLegacyIDSQL, tenantID, legacyID))
	if err != nil {
		return nil, postgres.MapError(err, "system", uuid.Nil)
	}
	return s, nil
}

// List returns a page of the tenant's systems with song counts, plus the total.
func (r *Repo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]domain.System, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM systems WHERE tenant_id = $1`, tenantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count systems: %w", err)
	}

	query, args, err := postgres.Builder().
		Select(systemColumns).
		From("systems s").
		Where(squirrel.Eq{"s.tenant_id": tenantID}).
		OrderBy("s.name ASC", "s.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list systems query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list systems: %w", err)
	}
	defer rows.Close()

	systems := make([]domain.System, 0, limit)
	for rows.Next() {
		s, err := scanSystem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan system: %w", err)
		}
		systems = append(systems, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list systems: %w", err)
	}

	return systems, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a system.
func (r *Repo) Create(ctx context.Context, s *domain.System) (*domain.System, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL, s.ID, s.TenantID, s.Name, s.LegacyID)
	created, err := scanSystem(row)
	if err != nil {
		return nil, postgres.MapError(err, "system", s.ID)
	}
	return created, nil
}

// Rename changes the display name of a system.
func (r *Repo) Rename(ctx context.Context, id uuid.UUID, name string) (*domain.System, error) {
	s, err := scanSystem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, renameSQL, id, name))
	if err != nil {
		return nil, postgres.MapError(err, "system", id)
	}
	return s, nil
}

// Delete removes a system. The songs foreign key restricts deletion of a
// system that still has catalog entries; that surfaces as domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		if postgres.ConstraintName(err) != "" {
			return fmt.Errorf("system %s: %w", id, domain.NewConflictError("songCount", "system still has songs"))
		}
		return postgres.MapError(err, "system", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "system", id)
	}
	return nil
}

func scanSystem(row pgx.Row) (*domain.System, error) {
	var s domain.System
	if err := row.Scan(&s.ID, &s.TenantID, &s.Name, &s.LegacyID, &s.CreatedAt, &s.UpdatedAt, &s.SongCount); err != nil {
		return nil, err
	}
	return &s, nil
}
