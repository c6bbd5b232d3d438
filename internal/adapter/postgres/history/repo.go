// Package history implements the append-only singer history repository.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Repo provides singer history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type entryRow struct {
	ID              uuid.UUID `db:"id"`
	SingerProfileID uuid.UUID `db:"singer_profile_id"`
	VenueID         uuid.UUID `db:"venue_id"`
	Artist          string    `db:"artist"`
	Title           string    `db:"title"`
	KeyChange       int       `db:"key_change"`
	SongFingerprint string    `db:"song_fingerprint"`
	RequestedAt     time.Time `db:"requested_at"`
}

const createSQL = `
INSERT INTO singer_history (id, singer_profile_id, venue_id, artist, title, key_change, song_fingerprint, requested_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// Create appends a history entry.
func (r *Repo) Create(ctx context.Context, e *domain.SingerHistoryEntry) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		e.ID, e.SingerProfileID, e.VenueID, e.Artist, e.Title, e.KeyChange, e.SongFingerprint, e.RequestedAt,
	)
	if err != nil {
		return postgres.MapError(err, "singer_history", e.ID)
	}
	return nil
}

// List returns a page of a singer's history, newest first, optionally
// restricted to one venue, plus the total.
func (r *Repo) List(ctx context.Context, singerID uuid.UUID, venueID *uuid.UUID, limit, offset int) ([]domain.SingerHistoryEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.Eq{"singer_profile_id": singerID}
	if venueID != nil {
		where["venue_id"] = *venueID
	}

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("singer_history").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count history query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count history: %w", err)
	}

	query, args, err := postgres.Builder().
		Select("id", "singer_profile_id", "venue_id", "artist", "title", "key_change", "song_fingerprint", "requested_at").
		From("singer_history").
		Where(where).
		OrderBy("requested_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list history query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list history: %w", err)
	}

	out := make([]domain.SingerHistoryEntry, len(rows))
	for i, row := range rows {
		out[i] = domain.SingerHistoryEntry(row)
	}
	return out, total, nil
}
