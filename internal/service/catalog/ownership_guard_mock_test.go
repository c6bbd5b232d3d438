package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ ownershipGuard = &ownershipGuardMock{}

type ownershipGuardMock struct {
	SongFunc             func(ctx context.Context, tenantID uuid.UUID, songID uuid.UUID) (*domain.Song, error)
	SystemFunc           func(ctx context.Context, tenantID uuid.UUID, systemID uuid.UUID) (*domain.System, error)
	SystemByLegacyIDFunc func(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.System, error)

	calls struct {
		Song []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			SongID   uuid.UUID
		}
		System []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			SystemID uuid.UUID
		}
		SystemByLegacyID []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			LegacyID int64
		}
	}
	lockSong             sync.RWMutex
	lockSystem           sync.RWMutex
	lockSystemByLegacyID sync.RWMutex
}

func (mock *ownershipGuardMock) Song(ctx context.Context, tenantID uuid.UUID, songID uuid.UUID) (*domain.Song, error) {
	if mock.SongFunc == nil {
		panic("ownershipGuardMock.SongFunc: method is nil but ownershipGuard.Song was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		SongID   uuid.UUID
	}{Ctx: ctx, TenantID: tenantID, SongID: songID}
	mock.lockSong.Lock()
	mock.calls.Song = append(mock.calls.Song, callInfo)
	mock.lockSong.Unlock()
	return mock.SongFunc(ctx, tenantID, songID)
}

func (mock *ownershipGuardMock) SongCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	SongID   uuid.UUID
} {
	mock.lockSong.RLock()
	calls := mock.calls.Song
	mock.lockSong.RUnlock()
	return calls
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

func (mock *ownershipGuardMock) SystemByLegacyID(ctx context.Context, tenantID uuid.UUID, legacyID int64) (*domain.System, error) {
	if mock.SystemByLegacyIDFunc == nil {
		panic("ownershipGuardMock.SystemByLegacyIDFunc: method is nil but ownershipGuard.SystemByLegacyID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		LegacyID int64
	}{Ctx: ctx, TenantID: tenantID, LegacyID: legacyID}
	mock.lockSystemByLegacyID.Lock()
	mock.calls.SystemByLegacyID = append(mock.calls.SystemByLegacyID, callInfo)
	mock.lockSystemByLegacyID.Unlock()
	return mock.SystemByLegacyIDFunc(ctx, tenantID, legacyID)
}

func (mock *ownershipGuardMock) SystemByLegacyIDCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	LegacyID int64
} {
	mock.lockSystemByLegacyID.RLock()
	calls := mock.calls.SystemByLegacyID
	mock.lockSystemByLegacyID.RUnlock()
	return calls
}
