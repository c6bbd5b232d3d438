package request

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/metrics"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// Create submits a request to a venue. Guests may submit; an authenticated
// singer additionally gets a history entry written in the same transaction.
// A venue that is not accepting requests yields domain.ErrForbidden.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Request, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	venue, err := s.venues.GetByID(ctx, input.VenueID)
	if err != nil {
		return nil, err
	}
	if !venue.AcceptingRequests {
		return nil, fmt.Errorf("venue %s is not accepting requests: %w", venue.ID, domain.ErrForbidden)
	}

	req := &domain.Request{
		ID:         uuid.New(),
		VenueID:    venue.ID,
		SingerName: trimOrNil(input.SingerName),
		Artist:     strings.TrimSpace(input.Artist),
		Title:      strings.TrimSpace(input.Title),
		KeyChange:  input.KeyChange,
		Notes:      trimOrNil(input.Notes),
	}
	if singerID, ok := ctxutil.SingerIDFromCtx(ctx); ok {
		req.SingerProfileID = &singerID
	}
	req.SubmitterUserID = ctxutil.ActorFromCtx(ctx)

	var created *domain.Request
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.requests.Create(txCtx, req)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if c.SingerProfileID != nil {
			if err := s.history.Create(txCtx, &domain.SingerHistoryEntry{
				ID:              uuid.New(),
				SingerProfileID: *c.SingerProfileID,
				VenueID:         c.VenueID,
				Artist:          c.Artist,
				Title:           c.Title,
				KeyChange:       c.KeyChange,
				SongFingerprint: domain.SongFingerprint(c.Artist, c.Title),
			}); err != nil {
				return fmt.Errorf("append history: %w", err)
			}
		}

		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RequestsCreatedTotal.Inc()
	s.publish(domain.RequestCreated, *created)

	s.log.InfoContext(ctx, "request created",
		slog.String("venue_id", created.VenueID.String()),
		slog.String("request_id", created.ID.String()),
		slog.Bool("guest", created.SingerProfileID == nil))

	return created, nil
}
