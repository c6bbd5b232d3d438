package system

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ ownershipGuard = &ownershipGuardMock{}

type ownershipGuardMock struct {
	SystemFunc func(ctx context.Context, tenantID uuid.UUID, systemID uuid.UUID) (*domain.System, error)

	calls struct {
		System []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			SystemID uuid.UUID
		}
	}
	lockSystem sync.RWMutex
}

func (mock *ownershipGuardMock) System(ctx context.Context, tenantID uuid.UUID, systemID uuid.UUID) (*domain.System, error) {
	if mock.SystemFunc == nil {
		panic("ownershipGuardMock.SystemFunc: method is nil but ownershipGuard.System was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		SystemID uuid.UUID
	}{Ctx: ctx, TenantID: tenantID, SystemID: systemID}
	mock.lockSystem.Lock()
	mock.calls.System = append(mock.calls.System, callInfo)
	mock.lockSystem.Unlock()
	return mock.SystemFunc(ctx, tenantID, systemID)
}

func (mock *ownershipGuardMock) SystemCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	SystemID uuid.UUID
} {
	mock.lockSystem.RLock()
	calls := mock.calls.System
	mock.lockSystem.RUnlock()
	return calls
}
