package venue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
)

// Get returns one of the caller's venues.
func (s *Service) Get(ctx context.Context, venueID uuid.UUID) (*domain.Venue, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.guard.Venue(ctx, tenantID, venueID)
}

// GetByLegacyID resolves one of the caller's venues by its legacy id.
func (s *Service) GetByLegacyID(ctx context.Context, legacyID int64) (*domain.Venue, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return s.guard.VenueByLegacyID(ctx, tenantID, legacyID)
}

// List returns a page of the caller's venues and the total count.
func (s *Service) List(ctx context.Context, page domain.PageParams) ([]domain.Venue, int, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	if errs := page.Validate(); len(errs) > 0 {
		return nil, 0, domain.NewValidationErrors(errs)
	}

	venues, total, err := s.venues.List(ctx, tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues: %w", err)
	}
	return venues, total, nil
}

// GetPublic returns the venue snapshot singers see. No authentication is
// required.
func (s *Service) GetPublic(ctx context.Context, urlName string) (*domain.Venue, error) {
	slug := normalizeSlug(urlName)
	if !domain.IsValidSlug(slug) {
		return nil, fmt.Errorf("venue %q: %w", slug, domain.ErrNotFound)
	}
	return s.venues.GetByURLName(ctx, slug)
}
