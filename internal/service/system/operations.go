package system

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

const maxNameLength = 200

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewValidationError("name", "required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", domain.NewValidationError("name", "max 200 characters")
	}
	return name, nil
}

// Create registers a system for the caller's tenant.
func (s *Service) Create(ctx context.Context, name string) (*domain.System, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	name, err = validateName(name)
	if err != nil {
		return nil, err
	}

	var created *domain.System
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		legacyID, err := s.counter.NextLegacyID(txCtx, tenantID)
		if err != nil {
			return fmt.Errorf("next legacy id: %w", err)
		}

		sys, err := s.systems.Create(txCtx, &domain.System{
			ID:       uuid.New(),
			TenantID: tenantID,
			Name:     name,
			LegacyID: legacyID,
		})
		if err != nil {
			return fmt.Errorf("create system: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:    tenantID,
			ActorUserID: ctxutil.ActorFromCtx(ctx),
			EntityType:  domain.EntityTypeSystem,
			EntityID:    sys.ID,
			Action:      domain.AuditActionCreate,
			Changes:     map[string]any{"name": sys.Name, "legacyId": sys.LegacyID},
		}); err != nil {
			return fmt.Errorf("audit create: %w", err)
		}

		created = sys
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "system created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("system_id", created.ID.String()),
		slog.Int64("legacy_id", created.LegacyID))

	return created, nil
}

// Get returns one of the caller's systems with its song count.
func (s *Service) Get(ctx context.Context, systemID uuid.UUID) (*domain.System, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.guard.System(ctx, tenantID, systemID)
}

// List returns a page of the caller's systems with song counts.
func (s *Service) List(ctx context.Context, page domain.PageParams) ([]domain.System, int, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	if errs := page.Validate(); len(errs) > 0 {
		return nil, 0, domain.NewValidationErrors(errs)
	}

	systems, total, err := s.systems.List(ctx, tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list systems: %w", err)
	}
	return systems, total, nil
}

// Rename changes a system's display name.
func (s *Service) Rename(ctx context.Context, systemID uuid.UUID, name string) (*domain.System, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	name, err = validateName(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.System(ctx, tenantID, systemID); err != nil {
		return nil, err
	}

	sys, err := s.systems.Rename(ctx, systemID, name)
	if err != nil {
		return nil, fmt.Errorf("rename system: %w", err)
	}
	return sys, nil
}

// Delete removes an empty system. A system that still has songs yields a
// conflict on songCount; the catalog has to be wiped first.
func (s *Service) Delete(ctx context.Context, systemID uuid.UUID) error {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	sys, err := s.guard.System(ctx, tenantID, systemID)
	if err != nil {
		return err
	}
	if sys.SongCount > 0 {
		return domain.NewConflictError("songCount", fmt.Sprintf("system still has %d songs", sys.SongCount))
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.systems.Delete(txCtx, systemID); err != nil {
			return fmt.Errorf("delete system: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:    tenantID,
			ActorUserID: ctxutil.ActorFromCtx(ctx),
			EntityType:  domain.EntityTypeSystem,
			EntityID:    systemID,
			Action:      domain.AuditActionDelete,
			Changes:     map[string]any{"name": sys.Name},
		}); err != nil {
			return fmt.Errorf("audit delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "system deleted",
		slog.String("tenant_id", tenantID.String()),
		slog.String("system_id", systemID.String()))
	return nil
}
