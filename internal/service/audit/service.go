// Package audit exposes the tenant's audit trail for reading.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type auditRepo interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// Service reads audit records.
type Service struct {
	log   *slog.Logger
	audit auditRepo
}

// NewService creates a new audit service.
func NewService(log *slog.Logger, audit auditRepo) *Service {
	return &Service{
		log:   log.With("service", "audit"),
		audit: audit,
	}
}

// Recent returns the newest audit records of the caller's tenant.
// A zero limit selects the default.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 || limit > maxLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", maxLimit))
	}

	records, err := s.audit.ListByTenant(ctx, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	return records, nil
}
