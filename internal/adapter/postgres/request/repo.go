// Package request implements the song Request repository using PostgreSQL.
package request

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Repo provides request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type requestRow struct {
	ID              uuid.UUID  `db:"id"`
	VenueID         uuid.UUID  `db:"venue_id"`
	SingerProfileID *uuid.UUID `db:"singer_profile_id"`
	SubmitterUserID *uuid.UUID `db:"submitter_user_id"`
	SingerName      *string    `db:"singer_name"`
	Artist          string     `db:"artist"`
	Title           string     `db:"title"`
	KeyChange       int        `db:"key_change"`
	Notes           *string    `db:"notes"`
	Processed       bool       `db:"processed"`
	ProcessedAt     *time.Time `db:"processed_at"`
	RequestedAt     time.Time  `db:"requested_at"`
}

func (r requestRow) toDomain() domain.Request {
	return domain.Request{
		ID:              r.ID,
		VenueID:         r.VenueID,
		SingerProfileID: r.SingerProfileID,
		SubmitterUserID: r.SubmitterUserID,
		SingerName:      r.SingerName,
		Artist:          r.Artist,
		Title:           r.Title,
		KeyChange:       r.KeyChange,
		Notes:           r.Notes,
		Processed:       r.Processed,
		ProcessedAt:     r.ProcessedAt,
		RequestedAt:     r.RequestedAt,
	}
}

const requestColumns = `id, venue_id, singer_profile_id, submitter_user_id, singer_name, artist, title,
    key_change, notes, processed, processed_at, requested_at`

const (
	createSQL = `
INSERT INTO requests (id, venue_id, singer_profile_id, submitter_user_id, singer_name, artist, title, key_change, notes, processed, processed_at, requested_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, false, NULL, now())
RETURNING ` + requestColumns

	getByIDSQL = `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	deleteSQL = `DELETE FROM requests WHERE id = $1`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error) {
	var row requestRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "request", id)
	}
	req := row.toDomain()
	return &req, nil
}

// ListByVenue returns a page of a venue's requests in arrival order, oldest
// first, optionally filtered by processed state, plus the total.
func (r *Repo) ListByVenue(ctx context.Context, venueID uuid.UUID, processed *bool, limit, offset int) ([]domain.Request, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.Eq{"venue_id": venueID}
	if processed != nil {
		where["processed"] = *processed
	}

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("requests").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count requests query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}

	query, args, err := postgres.Builder().
		Select(requestColumns).
		From("requests").
		Where(where).
		OrderBy("requested_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list requests query: %w", err)
	}

	var rows []requestRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}

	out := make([]domain.Request, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a pending request.
func (r *Repo) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	var row requestRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		req.ID, req.VenueID, req.SingerProfileID, req.SubmitterUserID, req.SingerName,
		req.Artist, req.Title, req.KeyChange, req.Notes,
	)
	if err != nil {
		return nil, postgres.MapError(err, "request", req.ID)
	}
	created := row.toDomain()
	return &created, nil
}

// Patch updates only the fields present in p, in a single statement. The
// processed_at stamp is derived from the stored flag, so a repeated value
// keeps the existing stamp and concurrent patches of different fields do
// not overwrite each other.
func (r *Repo) Patch(ctx context.Context, id uuid.UUID, p domain.RequestPatch) (*domain.Request, error) {
	set := map[string]any{}
	if p.Processed != nil {
		set["processed_at"] = squirrel.Expr(
			"CASE WHEN processed = ? THEN processed_at WHEN ? THEN ?::timestamptz ELSE NULL END",
			*p.Processed, *p.Processed, p.Now,
		)
		set["processed"] = *p.Processed
	}
	if p.SetNotes {
		set["notes"] = p.Notes
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	query, args, err := postgres.Builder().
		Update("requests").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + requestColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build patch request query: %w", err)
	}

	var row requestRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "request", id)
	}
	updated := row.toDomain()
	return &updated, nil
}

// Delete hard-deletes a request.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "request", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "request", id)
	}
	return nil
}
