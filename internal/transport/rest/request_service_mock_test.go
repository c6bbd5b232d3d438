package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/request"
)

var _ requestService = &requestServiceMock{}

type requestServiceMock struct {
	CreateFunc        func(ctx context.Context, input request.CreateInput) (*domain.Request, error)
	DeleteFunc        func(ctx context.Context, venueID uuid.UUID, requestID uuid.UUID) error
	ListForVenueFunc  func(ctx context.Context, venueID uuid.UUID, input request.ListInput) ([]domain.Request, int, error)
	SingerHistoryFunc func(ctx context.Context, input request.HistoryInput) ([]domain.SingerHistoryEntry, int, error)
	UpdateFunc        func(ctx context.Context, input request.UpdateInput) (*domain.Request, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input request.CreateInput
		}
		Delete []struct {
			Ctx       context.Context
			VenueID   uuid.UUID
			RequestID uuid.UUID
		}
		ListForVenue []struct {
			Ctx     context.Context
			VenueID uuid.UUID
			Input   request.ListInput
		}
		SingerHistory []struct {
			Ctx   context.Context
			Input request.HistoryInput
		}
		Update []struct {
			Ctx   context.Context
			Input request.UpdateInput
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockListForVenue  sync.RWMutex
	lockSingerHistory sync.RWMutex
	lockUpdate        sync.RWMutex
}

func (mock *requestServiceMock) Create(ctx context.Context, input request.CreateInput) (*domain.Request, error) {
	if mock.CreateFunc == nil {
		panic("requestServiceMock.CreateFunc: method is nil but requestService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input request.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *requestServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input request.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *requestServiceMock) Delete(ctx context.Context, venueID uuid.UUID, requestID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("requestServiceMock.DeleteFunc: method is nil but requestService.Delete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		VenueID   uuid.UUID
		RequestID uuid.UUID
	}{Ctx: ctx, VenueID: venueID, RequestID: requestID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, venueID, requestID)
}

func (mock *requestServiceMock) DeleteCalls() []struct {
	Ctx       context.Context
	VenueID   uuid.UUID
	RequestID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *requestServiceMock) ListForVenue(ctx context.Context, venueID uuid.UUID, input request.ListInput) ([]domain.Request, int, error) {
	if mock.ListForVenueFunc == nil {
		panic("requestServiceMock.ListForVenueFunc: method is nil but requestService.ListForVenue was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		VenueID uuid.UUID
		Input   request.ListInput
	}{Ctx: ctx, VenueID: venueID, Input: input}
	mock.lockListForVenue.Lock()
	mock.calls.ListForVenue = append(mock.calls.ListForVenue, callInfo)
	mock.lockListForVenue.Unlock()
	return mock.ListForVenueFunc(ctx, venueID, input)
}

func (mock *requestServiceMock) ListForVenueCalls() []struct {
	Ctx     context.Context
	VenueID uuid.UUID
	Input   request.ListInput
} {
	mock.lockListForVenue.RLock()
	calls := mock.calls.ListForVenue
	mock.lockListForVenue.RUnlock()
	return calls
}

func (mock *requestServiceMock) SingerHistory(ctx context.Context, input request.HistoryInput) ([]domain.SingerHistoryEntry, int, error) {
	if mock.SingerHistoryFunc == nil {
		panic("requestServiceMock.SingerHistoryFunc: method is nil but requestService.SingerHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input request.HistoryInput
	}{Ctx: ctx, Input: input}
	mock.lockSingerHistory.Lock()
	mock.calls.SingerHistory = append(mock.calls.SingerHistory, callInfo)
	mock.lockSingerHistory.Unlock()
	return mock.SingerHistoryFunc(ctx, input)
}

func (mock *requestServiceMock) SingerHistoryCalls() []struct {
	Ctx   context.Context
	Input request.HistoryInput
} {
	mock.lockSingerHistory.RLock()
	calls := mock.calls.SingerHistory
	mock.lockSingerHistory.RUnlock()
	return calls
}

func (mock *requestServiceMock) Update(ctx context.Context, input request.UpdateInput) (*domain.Request, error) {
	if mock.UpdateFunc == nil {
		panic("requestServiceMock.UpdateFunc: method is nil but requestService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input request.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *requestServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input request.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
