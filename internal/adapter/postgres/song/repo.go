// Package song implements the catalog (Song) repository using PostgreSQL.
package song

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new song repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type songRow struct {
	ID                 uuid.UUID `db:"id"`
	TenantID           uuid.UUID `db:"tenant_id"`
	SystemID           uuid.UUID `db:"system_id"`
	Artist             string    `db:"artist"`
	Title              string    `db:"title"`
	Combined           string    `db:"combined"`
	NormalizedCombined string    `db:"normalized_combined"`
	CreatedAt          time.Time `db:"created_at"`
}

func (r songRow) toDomain() domain.Song {
	return domain.Song{
		ID:                 r.ID,
		TenantID:           r.TenantID,
		SystemID:           r.SystemID,
		Artist:             r.Artist,
		Title:              r.Title,
		Combined:           r.Combined,
		NormalizedCombined: r.NormalizedCombined,
		CreatedAt:          r.CreatedAt,
	}
}

var songColumns = []string{"id", "tenant_id", "system_id", "artist", "title", "combined", "normalized_combined", "created_at"}

const (
	createSQL = `
INSERT INTO songs (id, tenant_id, system_id, artist, title, combined, normalized_combined, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING id, tenant_id, system_id, artist, title, combined, normalized_combined, created_at`

	// insertBatchSQL inserts parallel arrays and reports the normalized keys
	// that were actually written; conflicting keys are silently skipped.
	insertBatchSQL = `
INSERT INTO songs (id, tenant_id, system_id, artist, title, combined, normalized_combined, created_at)
SELECT u.id, $1, $2, u.artist, u.title, u.combined, u.normalized_combined, now()
FROM unnest($3::uuid[], $4::text[], $5::text[], $6::text[], $7::text[])
    AS u(id, artist, title, combined, normalized_combined)
ON CONFLICT (system_id, normalized_combined) DO NOTHING
RETURNING normalized_combined`

	exportSQL = `
SELECT artist, title FROM songs
WHERE system_id = $1
ORDER BY artist ASC, title ASC, id ASC`

	deleteSQL         = `DELETE FROM songs WHERE id = $1`
	deleteBySystemSQL = `DELETE FROM songs WHERE system_id = $1`
	getByIDSQL        = `SELECT id, tenant_id, system_id, artist, title, combined, normalized_combined, created_at FROM songs WHERE id = $1`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a catalog entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error) {
	var row songRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "song", id)
	}
	s := row.toDomain()
	return &s, nil
}

// Search returns a page of matching songs ordered by artist then title,
// plus the total match count. An empty Query matches everything.
func (r *Repo) Search(ctx context.Context, f domain.SongFilter) ([]domain.Song, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	where := squirrel.And{squirrel.Eq{"tenant_id": f.TenantID}}
	if f.SystemID != nil {
		where = append(where, squirrel.Eq{"system_id": *f.SystemID})
	}
	if f.Query != "" {
		pattern := "%" + escapeLike(f.Query) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"artist": pattern},
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"combined": pattern},
		})
	}

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("songs").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count songs query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count songs: %w", err)
	}

	query, args, err := postgres.Builder().
		Select(songColumns...).
		From("songs").
		Where(where).
		OrderBy("artist ASC", "title ASC", "id ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build search songs query: %w", err)
	}

	var rows []songRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("search songs: %w", err)
	}

	songs := make([]domain.Song, len(rows))
	for i, row := range rows {
		songs[i] = row.toDomain()
	}
	return songs, total, nil
}

// ExportAll returns every artist/title pair of a system ordered by artist then title.
func (r *Repo) ExportAll(ctx context.Context, systemID uuid.UUID) ([]domain.SongItem, error) {
	var rows []struct {
		Artist string `db:"artist"`
		Title  string `db:"title"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, exportSQL, systemID); err != nil {
		return nil, fmt.Errorf("export songs: %w", err)
	}

	items := make([]domain.SongItem, len(rows))
	for i, row := range rows {
		items[i] = domain.SongItem{Artist: row.Artist, Title: row.Title}
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts one song. A normalized duplicate yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s *domain.Song) (*domain.Song, error) {
	var row songRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, createSQL,
		s.ID, s.TenantID, s.SystemID, s.Artist, s.Title, s.Combined, s.NormalizedCombined,
	)
	if err != nil {
		return nil, postgres.MapError(err, "song", s.ID)
	}
	created := row.toDomain()
	return &created, nil
}

// InsertBatch inserts songs of a single system in one statement, skipping
// normalized keys that already exist. It returns the set of keys written.
func (r *Repo) InsertBatch(ctx context.Context, tenantID, systemID uuid.UUID, songs []domain.Song) (map[string]struct{}, error) {
	inserted := make(map[string]struct{}, len(songs))
	if len(songs) == 0 {
		return inserted, nil
	}

	ids := make([]uuid.UUID, len(songs))
	artists := make([]string, len(songs))
	titles := make([]string, len(songs))
	combined := make([]string, len(songs))
	normalized := make([]string, len(songs))
	for i, s := range songs {
		ids[i] = s.ID
		artists[i] = s.Artist
		titles[i] = s.Title
		combined[i] = s.Combined
		normalized[i] = s.NormalizedCombined
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, insertBatchSQL,
		tenantID, systemID, ids, artists, titles, combined, normalized,
	)
	if err != nil {
		return nil, postgres.MapError(err, "songs of system", systemID)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan inserted song: %w", err)
		}
		inserted[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "songs of system", systemID)
	}
	return inserted, nil
}

// Delete removes one song.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "song", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "song", id)
	}
	return nil
}

// DeleteBySystem removes every song of a system and returns how many were deleted.
func (r *Repo) DeleteBySystem(ctx context.Context, systemID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteBySystemSQL, systemID)
	if err != nil {
		return 0, postgres.MapError(err, "songs of system", systemID)
	}
	return tag.RowsAffected(), nil
}

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
