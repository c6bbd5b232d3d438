// Package request implements the song request lifecycle at a venue and the
// singer history it feeds.
package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

type requestRepo interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID, processed *bool, limit, offset int) ([]domain.Request, int, error)
	Patch(ctx context.Context, id uuid.UUID, p domain.RequestPatch) (*domain.Request, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type venueRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Venue, error)
}

type historyRepo interface {
	Create(ctx context.Context, e *domain.SingerHistoryEntry) error
	List(ctx context.Context, singerID uuid.UUID, venueID *uuid.UUID, limit, offset int) ([]domain.SingerHistoryEntry, int, error)
}

type ownershipGuard interface {
	Venue(ctx context.Context, tenantID, venueID uuid.UUID) (*domain.Venue, error)
	Request(ctx context.Context, tenantID, venueID, requestID uuid.UUID) (*domain.Request, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher fans request events out to live subscribers of a venue. Publish
// must not block.
type Publisher interface {
	Publish(venueID uuid.UUID, event domain.RequestEvent)
}

// Service manages song requests.
type Service struct {
	log       *slog.Logger
	requests  requestRepo
	venues    venueRepo
	history   historyRepo
	guard     ownershipGuard
	tx        txManager
	publisher Publisher
	now       func() time.Time
}

// NewService creates a new request service.
func NewService(
	log *slog.Logger,
	requests requestRepo,
	venues venueRepo,
	history historyRepo,
	guard ownershipGuard,
	tx txManager,
	publisher Publisher,
) *Service {
	return &Service{
		log:       log.With("service", "request"),
		requests:  requests,
		venues:    venues,
		history:   history,
		guard:     guard,
		tx:        tx,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *Service) publish(eventType domain.RequestEventType, req domain.Request) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(req.VenueID, domain.RequestEvent{
		Type:    eventType,
		VenueID: req.VenueID,
		Request: req,
	})
}
