// Package system manages karaoke systems, the containers of song catalogs.
package system

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

type systemRepo interface {
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]domain.System, int, error)
	Create(ctx context.Context, s *domain.System) (*domain.System, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*domain.System, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type legacyCounter interface {
	NextLegacyID(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type ownershipGuard interface {
	System(ctx context.Context, tenantID, systemID uuid.UUID) (*domain.System, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides system management operations.
type Service struct {
	log     *slog.Logger
	systems systemRepo
	counter legacyCounter
	guard   ownershipGuard
	audit   auditLogger
	tx      txManager
}

// NewService creates a new system service.
func NewService(
	log *slog.Logger,
	systems systemRepo,
	counter legacyCounter,
	guard ownershipGuard,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:     log.With("service", "system"),
		systems: systems,
		counter: counter,
		guard:   guard,
		audit:   audit,
		tx:      tx,
	}
}
