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

// Update applies a partial update to one of the caller's venues.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Venue, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.guard.Venue(ctx, tenantID, input.VenueID)
	if err != nil {
		return nil, err
	}

	next := *current
	changes := map[string]any{}
	if input.Name != nil {
		next.Name = strings.TrimSpace(*input.Name)
		changes["name"] = next.Name
	}
	if input.URLName != nil {
		next.URLName = normalizeSlug(*input.URLName)
		changes["urlName"] = next.URLName
	}
	if input.AcceptingRequests != nil {
		next.AcceptingRequests = *input.AcceptingRequests
		changes["acceptingRequests"] = next.AcceptingRequests
	}
	if input.Address != nil {
		next.Address = trimOrNil(input.Address)
		changes["address"] = next.Address
	}
	if len(changes) == 0 {
		return current, nil
	}

	var updated *domain.Venue
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		v, err := s.venues.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update venue: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:    tenantID,
			ActorUserID: ctxutil.ActorFromCtx(ctx),
			EntityType:  domain.EntityTypeVenue,
			EntityID:    v.ID,
			Action:      domain.AuditActionUpdate,
			Changes:     changes,
		}); err != nil {
			return fmt.Errorf("audit update: %w", err)
		}
		updated = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "venue updated",
		slog.String("venue_id", updated.ID.String()),
		slog.Int("fields", len(changes)))

	return updated, nil
}

// Delete removes one of the caller's venues together with its requests.
func (s *Service) Delete(ctx context.Context, venueID uuid.UUID) error {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	v, err := s.guard.Venue(ctx, tenantID, venueID)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.venues.Delete(txCtx, venueID); err != nil {
			return fmt.Errorf("delete venue: %w", err)
		}
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:    tenantID,
			ActorUserID: ctxutil.ActorFromCtx(ctx),
			EntityType:  domain.EntityTypeVenue,
			EntityID:    venueID,
			Action:      domain.AuditActionDelete,
			Changes:     map[string]any{"name": v.Name, "urlName": v.URLName},
		}); err != nil {
			return fmt.Errorf("audit delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "venue deleted",
		slog.String("tenant_id", tenantID.String()),
		slog.String("venue_id", venueID.String()))
	return nil
}
