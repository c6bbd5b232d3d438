// Package singer implements singer profile persistence.
package singer

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Repo provides singer profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new singer profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	createSQL = `
INSERT INTO singer_profiles (id, user_id, display_name, created_at)
VALUES ($1, $2, $3, now())
RETURNING id, user_id, display_name, created_at`

	getByUserSQL = `
SELECT id, user_id, display_name, created_at
FROM singer_profiles WHERE user_id = $1`
)

// Create inserts a singer profile.
func (r *Repo) Create(ctx context.Context, p *domain.SingerProfile) (*domain.SingerProfile, error) {
	var out domain.SingerProfile
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, createSQL, p.ID, p.UserID, p.DisplayName).
		Scan(&out.ID, &out.UserID, &out.DisplayName, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "singer_profile", p.ID)
	}
	return &out, nil
}

// GetByUser returns the singer profile of a user.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.SingerProfile, error) {
	var out domain.SingerProfile
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByUserSQL, userID).
		Scan(&out.ID, &out.UserID, &out.DisplayName, &out.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "singer_profile of user", userID)
	}
	return &out, nil
}
