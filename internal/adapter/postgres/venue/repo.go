// Package venue implements the Venue repository using PostgreSQL.
package venue

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Repo provides venue persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new venue repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const venueColumns = `id, tenant_id, name, url_name, openkj_venue_id, accepting_requests, address, created_at, updated_at`

const (
	getByIDSQL       = `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	getByURLNameSQL  = `SELECT ` + venueColumns + ` FROM venues WHERE url_name = $1`
	getByLegacyIDSQL = `SELECT ` + venueColumns + ` FROM venues WHERE tenant_id = $1 AND openkj_venue_id = $2`

	createSQL = `
INSERT INTO venues (id, tenant_id, name, url_name, openkj_venue_id, accepting_requests, address, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING ` + venueColumns

	updateSQL = `
UPDATE venues
SET name = $2, url_name = $3, accepting_requests = $4, address = $5, updated_at = now()
WHERE id = $1
RETURNING ` + venueColumns

	deleteSQL = `DELETE FROM venues WHERE id = $1`
)

// URLNameConstraint is the unique constraint guarding venue slugs.
const URLNameConstraint = "venues_url_name_key"

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a venue by primary key regardless of tenant.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error) {
	v, err := scanVenue(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "venue", id)
	}
	return v, nil
}

// GetByURLName returns a venue by its public slug.
func (r *Repo) GetByURLName(ctx context.Context, urlName string) (*domain.Venue, error) {
	v, err := scanVenue(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByURLNameSQL, urlName))
	if err != nil {
		return nil, postgres.MapError(err, "venue", uuid.Nil)
	}
	return v, nil
}

// GetByLegacyID returns the tenant's venue carrying the given legacy id.
func (r *Repo) GetByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.Venue, error) {
	v, err := scanVenue(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByLegacyIDSQL, tenantID, legacyID))
	if err != nil {
		return nil, postgres.MapError(err, "venue", uuid.Nil)
	}
	return v, nil
}

// List returns a page of the tenant's venues ordered by name, plus the total.
// Returns an empty slice (not nil) when the tenant has no venues.
func (r *Repo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]domain.Venue, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM venues WHERE tenant_id = $1`, tenantID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count venues: %w", err)
	}

	query, args, err := postgres.Builder().
		Select(venueColumns).
		From("venues").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list venues query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0, limit)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list venues: %w", err)
	}

	return venues, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a venue. A taken slug yields a domain.ConflictError on
// urlName; other collisions yield domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL,
		v.ID, v.TenantID, v.Name, v.URLName, v.LegacyID, v.AcceptingRequests, v.Address,
	)
	created, err := scanVenue(row)
	if err != nil {
		return nil, mapWriteError(err, v.ID)
	}
	return created, nil
}

// Update writes the mutable venue fields.
func (r *Repo) Update(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL,
		v.ID, v.Name, v.URLName, v.AcceptingRequests, v.Address,
	)
	updated, err := scanVenue(row)
	if err != nil {
		return nil, mapWriteError(err, v.ID)
	}
	return updated, nil
}

// Delete removes a venue; its requests and history cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "venue", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "venue", id)
	}
	return nil
}

func mapWriteError(err error, id uuid.UUID) error {
	if postgres.ConstraintName(err) == URLNameConstraint {
		return fmt.Errorf("venue %s: %w", id, domain.NewConflictError("urlName", "already taken"))
	}
	return postgres.MapError(err, "venue", id)
}

func scanVenue(row pgx.Row) (*domain.Venue, error) {
	var v domain.Venue
	err := row.Scan(&v.ID, &v.TenantID, &v.Name, &v.URLName, &v.LegacyID, &v.AcceptingRequests, &v.Address, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
