// Package apikey manages the machine credentials used by legacy karaoke
// host software.
package apikey

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/auth"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const touchTimeout = 5 * time.Second

type keyRepo interface {
	Create(ctx context.Context, k *domain.APIKey) (*domain.APIKey, error)
	GetByHash(ctx context.Context, hash string) (*domain.APIKey, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.APIKey, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) (*domain.APIKey, error)
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}

type ownershipGuard interface {
	APIKey(ctx context.Context, tenantID, keyID uuid.UUID) (*domain.APIKey, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the API key registry.
type Service struct {
	log      *slog.Logger
	keys     keyRepo
	guard    ownershipGuard
	audit    auditLogger
	tx       txManager
	generate func() (auth.GeneratedAPIKey, error)
	now      func() time.Time

	touches sync.WaitGroup
}

// NewService creates a new API key service.
func NewService(
	logger *slog.Logger,
	keys keyRepo,
	guard ownershipGuard,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "apikey"),
		keys:     keys,
		guard:    guard,
		audit:    audit,
		tx:       tx,
		generate: auth.GenerateAPIKey,
		now:      time.Now,
	}
}

// Wait blocks until every pending last-used update has finished.
func (s *Service) Wait() {
	s.touches.Wait()
}
