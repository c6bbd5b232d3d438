package venue

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ ownershipGuard = &ownershipGuardMock{}

type ownershipGuardMock struct {
	VenueFunc           func(ctx context.Context, tenantID uuid.UUID, venueID uuid.UUID) (*domain.Venue, error)
	VenueByLegacyIDFunc func(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.Venue, error)

	calls struct {
		Venue []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			VenueID  uuid.UUID
		}
		VenueByLegacyID []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			LegacyID int64
		}
	}
	lockVenue           sync.RWMutex
	lockVenueByLegacyID sync.RWMutex
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

func (mock *ownershipGuardMock) VenueByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.Venue, error) {
	if mock.VenueByLegacyIDFunc == nil {
		panic("ownershipGuardMock.VenueByLegacyIDFunc: method is nil but ownershipGuard.VenueByLegacyID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		LegacyID int64
	}{Ctx: ctx, TenantID: tenantID, LegacyID: legacyID}
	mock.lockVenueByLegacyID.Lock()
	mock.calls.VenueByLegacyID = append(mock.calls.VenueByLegacyID, callInfo)
	mock.lockVenueByLegacyID.Unlock()
	return mock.VenueByLegacyIDFunc(ctx, tenantID, legacyID)
}

func (mock *ownershipGuardMock) VenueByLegacyIDCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	LegacyID int64
} {
	mock.lockVenueByLegacyID.RLock()
	calls := mock.calls.VenueByLegacyID
	mock.lockVenueByLegacyID.RUnlock()
	return calls
}
