package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ legacyVenues = &legacyVenuesMock{}

type legacyVenuesMock struct {
	GetByLegacyIDFunc func(ctx context.Context, legacyID int64) (*domain.Venue, error)

	calls struct {
		GetByLegacyID []struct {
			Ctx      context.Context
			LegacyID int64
		}
	}
	lockGetByLegacyID sync.RWMutex
}

func (mock *legacyVenuesMock) GetByLegacyID(ctx context.Context, legacyID int64) (*domain.Venue, error) {
	if mock.GetByLegacyIDFunc == nil {
		panic("legacyVenuesMock.GetByLegacyIDFunc: method is nil but legacyVenues.GetByLegacyID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LegacyID int64
	}{Ctx: ctx, LegacyID: legacyID}
	mock.lockGetByLegacyID.Lock()
	mock.calls.GetByLegacyID = append(mock.calls.GetByLegacyID, callInfo)
	mock.lockGetByLegacyID.Unlock()
	return mock.GetByLegacyIDFunc(ctx, legacyID)
}

func (mock *legacyVenuesMock) GetByLegacyIDCalls() []struct {
	Ctx      context.Context
	LegacyID int64
} {
	mock.lockGetByLegacyID.RLock()
	calls := mock.calls.GetByLegacyID
	mock.lockGetByLegacyID.RUnlock()
	return calls
}
