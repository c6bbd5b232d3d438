package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/tenancy"
)

// Search returns a page of the tenant's songs ordered by artist then title,
// plus the total number of matches.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.Song, int, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}
	if err := input.Validate(s.cfg.SearchMinQuery); err != nil {
		return nil, 0, err
	}

	filter := domain.SongFilter{
		TenantID: tenantID,
		Query:    strings.TrimSpace(input.Query),
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
	if input.System != nil {
		sys, err := s.resolveSystem(ctx, tenantID, *input.System)
		if err != nil {
			return nil, 0, err
		}
		filter.SystemID = &sys.ID
	}

	songs, total, err := s.songs.Search(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("search songs: %w", err)
	}
	return songs, total, nil
}

// ExportAll returns every artist/title pair of an owned system.
func (s *Service) ExportAll(ctx context.Context, systemID uuid.UUID) ([]domain.SongItem, error) {
	tenantID, err := tenancy.TenantFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.guard.System(ctx, tenantID, systemID); err != nil {
		return nil, err
	}

	items, err := s.songs.ExportAll(ctx, systemID)
	if err != nil {
		return nil, fmt.Errorf("export catalog: %w", err)
	}
	return items, nil
}
