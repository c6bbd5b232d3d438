// Package venue manages a tenant's venues and their public snapshot.
package venue

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

type venueRepo interface {
	GetByURLName(ctx context.Context, urlName string) (*domain.Venue, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]domain.Venue, int, error)
	Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type legacyCounter interface {
	NextLegacyID(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type ownershipGuard interface {
	Venue(ctx context.Context, tenantID, venueID uuid.UUID) (*domain.Venue, error)
	VenueByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.Venue, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides venue management operations.
type Service struct {
	log     *slog.Logger
	venues  venueRepo
	counter legacyCounter
	guard   ownershipGuard
	audit   auditLogger
	tx      txManager
}

// NewService creates a new venue service.
func NewService(
	log *slog.Logger,
	venues venueRepo,
	counter legacyCounter,
	guard ownershipGuard,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:     log.With("service", "venue"),
		venues:  venues,
		counter: counter,
		guard:   guard,
		audit:   audit,
		tx:      tx,
	}
}
