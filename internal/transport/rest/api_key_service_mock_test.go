package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/apikey"
)

var _ apiKeyService = &apiKeyServiceMock{}

type apiKeyServiceMock struct {
	CreateFunc func(ctx context.Context, input apikey.CreateInput) (*apikey.Created, error)
	ListFunc   func(ctx context.Context) ([]domain.APIKey, error)
	RevokeFunc func(ctx context.Context, keyID uuid.UUID) (*domain.APIKey, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input apikey.CreateInput
		}
		List []struct {
			Ctx context.Context
		}
		Revoke []struct {
			Ctx   context.Context
			KeyID uuid.UUID
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
	lockRevoke sync.RWMutex
}

func (mock *apiKeyServiceMock) Create(ctx context.Context, input apikey.CreateInput) (*apikey.Created, error) {
	if mock.CreateFunc == nil {
		panic("apiKeyServiceMock.CreateFunc: method is nil but apiKeyService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input apikey.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *apiKeyServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input apikey.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *apiKeyServiceMock) List(ctx context.Context) ([]domain.APIKey, error) {
	if mock.ListFunc == nil {
		panic("apiKeyServiceMock.ListFunc: method is nil but apiKeyService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *apiKeyServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *apiKeyServiceMock) Revoke(ctx context.Context, keyID uuid.UUID) (*domain.APIKey, error) {
	if mock.RevokeFunc == nil {
		panic("apiKeyServiceMock.RevokeFunc: method is nil but apiKeyService.Revoke was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		KeyID uuid.UUID
	}{Ctx: ctx, KeyID: keyID}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, keyID)
}

func (mock *apiKeyServiceMock) RevokeCalls() []struct {
	Ctx   context.Context
	KeyID uuid.UUID
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}
