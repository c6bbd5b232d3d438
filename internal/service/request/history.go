package request

import (
	"context"
	"fmt"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// ErrNoSinger is returned when the caller has no singer profile.
var ErrNoSinger = fmt.Errorf("singer profile not found: %w", domain.ErrNotFound)

// SingerHistory returns the caller's request history, newest first.
func (s *Service) SingerHistory(ctx context.Context, input HistoryInput) ([]domain.SingerHistoryEntry, int, error) {
	singerID, ok := ctxutil.SingerIDFromCtx(ctx)
	if !ok {
		return nil, 0, ErrNoSinger
	}
	if errs := (domain.PageParams{Limit: input.Limit, Offset: input.Offset}).Validate(); len(errs) > 0 {
		return nil, 0, domain.NewValidationErrors(errs)
	}

	entries, total, err := s.history.List(ctx, singerID, input.VenueID, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list history: %w", err)
	}
	return entries, total, nil
}
