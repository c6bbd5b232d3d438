package venue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// Create registers a venue for the caller's tenant. The legacy id is drawn
// from the tenant counter in the same transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Venue, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	accepting := true
	if input.AcceptingRequests != nil {
		accepting = *input.AcceptingRequests
	}

	var created *domain.Venue
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		legacyID, err := s.counter.NextLegacyID(txCtx, tenantID)
		if err != nil {
			return fmt.Errorf("next legacy id: %w", err)
		}

		v, err := s.venues.Create(txCtx, &domain.Venue{
			ID:                uuid.New(),
			TenantID:          tenantID,
			Name:              strings.TrimSpace(input.Name),
			URLName:           normalizeSlug(input.URLName),
			LegacyID:          legacyID,
			AcceptingRequests: accepting,
			Address:           trimOrNil(input.Address),
		})
		if err != nil {
			return fmt.Errorf("create venue: %w", err)
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:    tenantID,
			ActorUserID: ctxutil.ActorFromCtx(ctx),
			EntityType:  domain.EntityTypeVenue,
			EntityID:    v.ID,
			Action:      domain.AuditActionCreate,
			Changes:     map[string]any{"name": v.Name, "urlName": v.URLName},
		}); err != nil {
			return fmt.Errorf("audit create: %w", err)
		}

		created = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "venue created",
		slog.String("tenant_id", tenantID.String()),
		slog.String("venue_id", created.ID.String()),
		slog.String("url_name", created.URLName))

	return created, nil
}
