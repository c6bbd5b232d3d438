// Package catalog implements the per-system song catalog: search, single
// adds, best-effort bulk import, export and wipes.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/config"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

type songRepo interface {
	Search(ctx context.Context, f domain.SongFilter) ([]domain.Song, int, error)
	ExportAll(ctx context.Context, systemID uuid.UUID) ([]domain.SongItem, error)
	Create(ctx context.Context, s *domain.Song) (*domain.Song, error)
	InsertBatch(ctx context.Context, tenantID, systemID uuid.UUID, songs []domain.Song) (map[string]struct{}, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySystem(ctx context.Context, systemID uuid.UUID) (int64, error)
}

type ownershipGuard interface {
	System(ctx context.Context, tenantID, systemID uuid.UUID) (*domain.System, error)
	SystemByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.System, error)
	Song(ctx context.Context, tenantID, songID uuid.UUID) (*domain.Song, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog operations scoped to the caller's tenant.
type Service struct {
	log   *slog.Logger
	songs songRepo
	guard ownershipGuard
	audit auditLogger
	tx    txManager
	cfg   config.CatalogConfig
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	songs songRepo,
	guard ownershipGuard,
	audit auditLogger,
	tx txManager,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		log:   log.With("service", "catalog"),
		songs: songs,
		guard: guard,
		audit: audit,
		tx:    tx,
		cfg:   cfg,
	}
}

// resolveSystem loads an owned system by primary key or legacy id.
func (s *Service) resolveSystem(ctx context.Context, tenantID uuid.UUID, ref domain.SystemRef) (*domain.System, error) {
	if ref.IsLegacy() {
		return s.guard.SystemByLegacyID(ctx, tenantID, ref.LegacyID)
	}
	return s.guard.System(ctx, tenantID, ref.ID)
}
