package venue

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ venueRepo = &venueRepoMock{}

type venueRepoMock struct {
	CreateFunc       func(ctx context.Context, v *domain.Venue) (*domain.Venue, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	GetByURLNameFunc func(ctx context.Context, urlName string) (*domain.Venue, error)
	ListFunc         func(ctx context.Context, tenantID uuid.UUID, limit int, offset int) ([]domain.Venue, int, error)
	UpdateFunc       func(ctx context.Context, v *domain.Venue) (*domain.Venue, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			V   *domain.Venue
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByURLName []struct {
			Ctx     context.Context
			UrlName string
		}
		List []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Limit    int
			Offset   int
		}
		Update []struct {
			Ctx context.Context
			V   *domain.Venue
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockGetByURLName sync.RWMutex
	lockList         sync.RWMutex
	lockUpdate       sync.RWMutex
}

func (mock *venueRepoMock) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	if mock.CreateFunc == nil {
		panic("venueRepoMock.CreateFunc: method is nil but venueRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Venue
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *venueRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   *domain.Venue
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *venueRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("venueRepoMock.DeleteFunc: method is nil but venueRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *venueRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *venueRepoMock) GetByURLName(ctx context.Context, urlName string) (*domain.Venue, error) {
	if mock.GetByURLNameFunc == nil {
		panic("venueRepoMock.GetByURLNameFunc: method is nil but venueRepo.GetByURLName was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UrlName string
	}{Ctx: ctx, UrlName: urlName}
	mock.lockGetByURLName.Lock()
	mock.calls.GetByURLName = append(mock.calls.GetByURLName, callInfo)
	mock.lockGetByURLName.Unlock()
	return mock.GetByURLNameFunc(ctx, urlName)
}

func (mock *venueRepoMock) GetByURLNameCalls() []struct {
	Ctx     context.Context
	UrlName string
} {
	mock.lockGetByURLName.RLock()
	calls := mock.calls.GetByURLName
	mock.lockGetByURLName.RUnlock()
	return calls
}

func (mock *venueRepoMock) List(ctx context.Context, tenantID uuid.UUID, limit int, offset int) ([]domain.Venue, int, error) {
	if mock.ListFunc == nil {
		panic("venueRepoMock.ListFunc: method is nil but venueRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Limit    int
		Offset   int
	}{Ctx: ctx, TenantID: tenantID, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, tenantID, limit, offset)
}

func (mock *venueRepoMock) ListCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Limit    int
	Offset   int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *venueRepoMock) Update(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	if mock.UpdateFunc == nil {
		panic("venueRepoMock.UpdateFunc: method is nil but venueRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Venue
	}{Ctx: ctx, V: v}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, v)
}

func (mock *venueRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	V   *domain.Venue
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
