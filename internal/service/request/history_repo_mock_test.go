package request

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	CreateFunc func(ctx context.Context, e *domain.SingerHistoryEntry) error
	ListFunc   func(ctx context.Context, singerID uuid.UUID, venueID *uuid.UUID, limit int, offset int) ([]domain.SingerHistoryEntry, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.SingerHistoryEntry
		}
		List []struct {
			Ctx      context.Context
			SingerID uuid.UUID
			VenueID  *uuid.UUID
			Limit    int
			Offset   int
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *historyRepoMock) Create(ctx context.Context, e *domain.SingerHistoryEntry) error {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.SingerHistoryEntry
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *historyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.SingerHistoryEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *historyRepoMock) List(ctx context.Context, singerID uuid.UUID, venueID *uuid.UUID, limit int, offset int) ([]domain.SingerHistoryEntry, int, error) {
	if mock.ListFunc == nil {
		panic("historyRepoMock.ListFunc: method is nil but historyRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SingerID uuid.UUID
		VenueID  *uuid.UUID
		Limit    int
		Offset   int
	}{Ctx: ctx, SingerID: singerID, VenueID: venueID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, singerID, venueID, limit, offset)
}

func (mock *historyRepoMock) ListCalls() []struct {
	Ctx      context.Context
	SingerID uuid.UUID
	VenueID  *uuid.UUID
	Limit    int
	Offset   int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
