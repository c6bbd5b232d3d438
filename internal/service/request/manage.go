package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/metrics"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
)

// ListForVenue returns a page of a venue's queue in arrival order.
func (s *Service) ListForVenue(ctx context.Context, venueID uuid.UUID, input ListInput) ([]domain.Request, int, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	if errs := (domain.PageParams{Limit: input.Limit, Offset: input.Offset}).Validate(); len(errs) > 0 {
		return nil, 0, domain.NewValidationErrors(errs)
	}
	if _, err := s.guard.Venue(ctx, tenantID, venueID); err != nil {
		return nil, 0, err
	}

	reqs, total, err := s.requests.ListByVenue(ctx, venueID, input.Processed, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	return reqs, total, nil
}

// Update applies processed and notes changes. Only submitted fields are
// written. Marking a request processed stamps processedAt, unmarking clears
// it, and repeating the current value keeps the existing stamp.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Request, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	req, err := s.guard.Request(ctx, tenantID, input.VenueID, input.RequestID)
	if err != nil {
		return nil, err
	}

	patch := domain.RequestPatch{
		Processed: input.Processed,
		SetNotes:  input.Notes != nil,
		Notes:     trimOrNil(input.Notes),
		Now:       s.now().UTC().Truncate(time.Microsecond),
	}
	if patch.Empty() {
		return req, nil
	}

	updated, err := s.requests.Patch(ctx, req.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update request: %w", err)
	}

	if input.Processed != nil && *input.Processed && updated.ProcessedAt != nil && updated.ProcessedAt.Equal(patch.Now) {
		metrics.RequestsProcessedTotal.Inc()
	}
	s.publish(domain.RequestUpdated, *updated)

	s.log.InfoContext(ctx, "request updated",
		slog.String("venue_id", updated.VenueID.String()),
		slog.String("request_id", updated.ID.String()),
		slog.Bool("processed", updated.Processed))

	return updated, nil
}

// Delete hard-deletes a request.
func (s *Service) Delete(ctx context.Context, venueID, requestID uuid.UUID) error {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return err
	}

	req, err := s.guard.Request(ctx, tenantID, venueID, requestID)
	if err != nil {
		return err
	}
	if err := s.requests.Delete(ctx, requestID); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	s.publish(domain.RequestDeleted, *req)
	return nil
}
