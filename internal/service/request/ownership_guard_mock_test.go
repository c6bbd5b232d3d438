package request

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ ownershipGuard = &ownershipGuardMock{}

type ownershipGuardMock struct {
	RequestFunc func(ctx context.Context, tenantID uuid.UUID, venueID uuid.UUID, requestID uuid.UUID) (*domain.Request, error)
	VenueFunc   func(ctx context.Context, tenantID uuid.UUID, venueID uuid.UUID) (*domain.Venue, error)

	calls struct {
		Request []struct {
			Ctx       context.Context
			TenantID  uuid.UUID
			VenueID   uuid.UUID
			RequestID uuid.UUID
		}
		Venue []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			VenueID  uuid.UUID
		}
	}
	lockRequest sync.RWMutex
	lockVenue   sync.RWMutex
}

func (mock *ownershipGuardMock) Request(ctx context.Context, tenantID uuid.UUID, venueID uuid.UUID, requestID uuid.UUID) (*domain.Request, error) {
	if mock.RequestFunc == nil {
		panic("ownershipGuardMock.RequestFunc: method is nil but ownershipGuard.Request was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TenantID  uuid.UUID
		VenueID   uuid.UUID
		RequestID uuid.UUID
	}{Ctx: ctx, TenantID: tenantID, VenueID: venueID, RequestID: requestID}
	mock.lockRequest.Lock()
	mock.calls.Request = append(mock.calls.Request, callInfo)
	mock.lockRequest.Unlock()
	return mock.RequestFunc(ctx, tenantID, venueID, requestID)
}

func (mock *ownershipGuardMock) RequestCalls() []struct {
	Ctx       context.Context
	TenantID  uuid.UUID
	VenueID   uuid.UUID
	RequestID uuid.UUID
} {
	mock.lockRequest.RLock()
	calls := mock.calls.Request
	mock.lockRequest.RUnlock()
	return calls
}

func (mock *ownershipGuardMock) Venue(ctx context.Context, tenantID uuid.UUID, venueID uuid.UUID) (*domain.Venue, error) {
	if mock.VenueFunc == nil {
		panic("ownershipGuardMock.VenueFunc: method is nil but ownershipGuard.Venue was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		VenueID  uuid.UUID
	}{Ctx: ctx, TenantID: tenantID, VenueID: venueID}
	mock.lockVenue.Lock()
	mock.calls.Venue = append(mock.calls.Venue, callInfo)
	mock.lockVenue.Unlock()
	return mock.VenueFunc(ctx, tenantID, venueID)
}

func (mock *ownershipGuardMock) VenueCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	VenueID  uuid.UUID
} {
	mock.lockVenue.RLock()
	calls := mock.calls.Venue
	mock.lockVenue.RUnlock()
	return calls
}
