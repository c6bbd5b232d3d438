package tenancy

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ apiKeyRepo = &apiKeyRepoMock{}

type apiKeyRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.APIKey, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *apiKeyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.APIKey, error) {
	if mock.GetByIDFunc == nil {
		panic("apiKeyRepoMock.GetByIDFunc: method is nil but apiKeyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *apiKeyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
