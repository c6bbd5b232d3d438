package tenancy

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ singerRepo = &singerRepoMock{}

type singerRepoMock struct {
	GetByUserFunc func(ctx context.Context, userID uuid.UUID) (*domain.SingerProfile, error)

	calls struct {
		GetByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetByUser sync.RWMutex
}

func (mock *singerRepoMock) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.SingerProfile, error) {
	if mock.GetByUserFunc == nil {
		panic("singerRepoMock.GetByUserFunc: method is nil but singerRepo.GetByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByUser.Lock()
	mock.calls.GetByUser = append(mock.calls.GetByUser, callInfo)
	mock.lockGetByUser.Unlock()
	return mock.GetByUserFunc(ctx, userID)
}

func (mock *singerRepoMock) GetByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetByUser.RLock()
	calls := mock.calls.GetByUser
	mock.lockGetByUser.RUnlock()
	return calls
}
