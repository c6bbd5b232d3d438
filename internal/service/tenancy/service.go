// Package tenancy resolves the caller's tenant and enforces that every
// tenant-scoped resource touched by a request belongs to that tenant.
package tenancy

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

type tenantRepo interface {
	GetByOwner(ctx context.Context, userID uuid.UUID) (*domain.Tenant, error)
}

type singerRepo interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.SingerProfile, error)
}

type venueRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error)
	GetByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.Venue, error)
}

type systemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.System, error)
	GetByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.System, error)
}

type songRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Song, error)
}

type apiKeyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.APIKey, error)
}

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
}

// Guard is the single place where tenant isolation is decided.
type Guard struct {
	log      *slog.Logger
	tenants  tenantRepo
	singers  singerRepo
	venues   venueRepo
	systems  systemRepo
	songs    songRepo
	apiKeys  apiKeyRepo
	requests requestRepo
}

// NewGuard creates a new ownership guard.
func NewGuard(
	logger *slog.Logger,
	tenants tenantRepo,
	singers singerRepo,
	venues venueRepo,
	systems systemRepo,
	songs songRepo,
	apiKeys apiKeyRepo,
	requests requestRepo,
) *Guard {
	return &Guard{
		log:      logger.With("service", "tenancy"),
		tenants:  tenants,
		singers:  singers,
		venues:   venues,
		systems:  systems,
		songs:    songs,
		apiKeys:  apiKeys,
		requests: requests,
	}
}
