package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ tenantRepo = &tenantRepoMock{}

type tenantRepoMock struct {
	CreateFunc func(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Tenant
		}
	}
	lockCreate sync.RWMutex
}

func (mock *tenantRepoMock) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	if mock.CreateFunc == nil {
		panic("tenantRepoMock.CreateFunc: method is nil but tenantRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Tenant
	}{Ctx: ctx, T: t}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tenantRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Tenant
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
