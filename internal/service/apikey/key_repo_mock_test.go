package apikey

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ keyRepo = &keyRepoMock{}

type keyRepoMock struct {
	CreateFunc        func(ctx context.Context, k *domain.APIKey) (*domain.APIKey, error)
	GetByHashFunc     func(ctx context.Context, hash string) (*domain.APIKey, error)
	ListByTenantFunc  func(ctx context.Context, tenantID uuid.UUID) ([]domain.APIKey, error)
	RevokeFunc        func(ctx context.Context, id uuid.UUID, at time.Time) (*domain.APIKey, error)
	TouchLastUsedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error

	calls struct {
		Create []struct {
			Ctx context.Context
			K   *domain.APIKey
		}
		GetByHash []struct {
			Ctx  context.Context
			Hash string
		}
		ListByTenant []struct {
			Ctx      context.Context
			TenantID uuid.UUID
		}
		Revoke []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		TouchLastUsed []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
	}
	lockCreate        sync.RWMutex
	lockGetByHash     sync.RWMutex
	lockListByTenant  sync.RWMutex
	lockRevoke        sync.RWMutex
	lockTouchLastUsed sync.RWMutex
}

func (mock *keyRepoMock) Create(ctx context.Context, k *domain.APIKey) (*domain.APIKey, error) {
	if mock.CreateFunc == nil {
		panic("keyRepoMock.CreateFunc: method is nil but keyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		K   *domain.APIKey
	}{Ctx: ctx, K: k}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, k)
}

func (mock *keyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	K   *domain.APIKey
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *keyRepoMock) GetByHash(ctx context.Context, hash string) (*domain.APIKey, error) {
	if mock.GetByHashFunc == nil {
		panic("keyRepoMock.GetByHashFunc: method is nil but keyRepo.GetByHash was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Hash string
	}{Ctx: ctx, Hash: hash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, hash)
}

func (mock *keyRepoMock) GetByHashCalls() []struct {
	Ctx  context.Context
	Hash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *keyRepoMock) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.APIKey, error) {
	if mock.ListByTenantFunc == nil {
		panic("keyRepoMock.ListByTenantFunc: method is nil but keyRepo.ListByTenant was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
	}{Ctx: ctx, TenantID: tenantID}
	mock.lockListByTenant.Lock()
	mock.calls.ListByTenant = append(mock.calls.ListByTenant, callInfo)
	mock.lockListByTenant.Unlock()
	return mock.ListByTenantFunc(ctx, tenantID)
}

func (mock *keyRepoMock) ListByTenantCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
} {
	mock.lockListByTenant.RLock()
	calls := mock.calls.ListByTenant
	mock.lockListByTenant.RUnlock()
	return calls
}

func (mock *keyRepoMock) Revoke(ctx context.Context, id uuid.UUID, at time.Time) (*domain.APIKey, error) {
	if mock.RevokeFunc == nil {
		panic("keyRepoMock.RevokeFunc: method is nil but keyRepo.Revoke was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, id, at)
}

func (mock *keyRepoMock) RevokeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}

func (mock *keyRepoMock) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLastUsedFunc == nil {
		panic("keyRepoMock.TouchLastUsedFunc: method is nil but keyRepo.TouchLastUsed was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{Ctx: ctx, ID: id, At: at}
	mock.lockTouchLastUsed.Lock()
	mock.calls.TouchLastUsed = append(mock.calls.TouchLastUsed, callInfo)
	mock.lockTouchLastUsed.Unlock()
	return mock.TouchLastUsedFunc(ctx, id, at)
}

func (mock *keyRepoMock) TouchLastUsedCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	mock.lockTouchLastUsed.RLock()
	calls := mock.calls.TouchLastUsed
	mock.lockTouchLastUsed.RUnlock()
	return calls
}
