package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ songRepo = &songRepoMock{}

type songRepoMock struct {
	CreateFunc         func(ctx context.Context, s *domain.Song) (*domain.Song, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	DeleteBySystemFunc func(ctx context.Context, systemID uuid.UUID) (int64, error)
	ExportAllFunc      func(ctx context.Context, systemID uuid.UUID) ([]domain.SongItem, error)
	InsertBatchFunc    func(ctx context.Context, tenantID uuid.UUID, systemID uuid.UUID, songs []domain.Song) (map[string]struct{}, error)
	SearchFunc         func(ctx context.Context, f domain.SongFilter) ([]domain.Song, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Song
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteBySystem []struct {
			Ctx      context.Context
			SystemID uuid.UUID
		}
		ExportAll []struct {
			Ctx      context.Context
			SystemID uuid.UUID
		}
		InsertBatch []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			SystemID uuid.UUID
			Songs    []domain.Song
		}
		Search []struct {
			Ctx context.Context
			F   domain.SongFilter
		}
	}
	lockCreate         sync.RWMutex
	lockDelete         sync.RWMutex
	lockDeleteBySystem sync.RWMutex
	lockExportAll      sync.RWMutex
	lockInsertBatch    sync.RWMutex
	lockSearch         sync.RWMutex
}

func (mock *songRepoMock) Create(ctx context.Context, s *domain.Song) (*domain.Song, error) {
	if mock.CreateFunc == nil {
		panic("songRepoMock.CreateFunc: method is nil but songRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Song
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *songRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Song
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *songRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("songRepoMock.DeleteFunc: method is nil but songRepo.Delete was just called")
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

func (mock *songRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *songRepoMock) DeleteBySystem(ctx context.Context, systemID uuid.UUID) (int64, error) {
	if mock.DeleteBySystemFunc == nil {
		panic("songRepoMock.DeleteBySystemFunc: method is nil but songRepo.DeleteBySystem was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SystemID uuid.UUID
	}{Ctx: ctx, SystemID: systemID}
	mock.lockDeleteBySystem.Lock()
	mock.calls.DeleteBySystem = append(mock.calls.DeleteBySystem, callInfo)
	mock.lockDeleteBySystem.Unlock()
	return mock.DeleteBySystemFunc(ctx, systemID)
}

func (mock *songRepoMock) DeleteBySystemCalls() []struct {
	Ctx      context.Context
	SystemID uuid.UUID
} {
	mock.lockDeleteBySystem.RLock()
	calls := mock.calls.DeleteBySystem
	mock.lockDeleteBySystem.RUnlock()
	return calls
}

func (mock *songRepoMock) ExportAll(ctx context.Context, systemID uuid.UUID) ([]domain.SongItem, error) {
	if mock.ExportAllFunc == nil {
		panic("songRepoMock.ExportAllFunc: method is nil but songRepo.ExportAll was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SystemID uuid.UUID
	}{Ctx: ctx, SystemID: systemID}
	mock.lockExportAll.Lock()
	mock.calls.ExportAll = append(mock.calls.ExportAll, callInfo)
	mock.lockExportAll.Unlock()
	return mock.ExportAllFunc(ctx, systemID)
}

func (mock *songRepoMock) ExportAllCalls() []struct {
	Ctx      context.Context
	SystemID uuid.UUID
} {
	mock.lockExportAll.RLock()
	calls := mock.calls.ExportAll
	mock.lockExportAll.RUnlock()
	return calls
}

func (mock *songRepoMock) InsertBatch(ctx context.Context, tenantID uuid.UUID, systemID uuid.UUID, songs []domain.Song) (map[string]struct{}, error) {
	if mock.InsertBatchFunc == nil {
		panic("songRepoMock.InsertBatchFunc: method is nil but songRepo.InsertBatch was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		SystemID uuid.UUID
		Songs    []domain.Song
	}{Ctx: ctx, TenantID: tenantID, SystemID: systemID, Songs: songs}
	mock.lockInsertBatch.Lock()
	mock.calls.InsertBatch = append(mock.calls.InsertBatch, callInfo)
	mock.lockInsertBatch.Unlock()
	return mock.InsertBatchFunc(ctx, tenantID, systemID, songs)
}

func (mock *songRepoMock) InsertBatchCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	SystemID uuid.UUID
	Songs    []domain.Song
} {
	mock.lockInsertBatch.RLock()
	calls := mock.calls.InsertBatch
	mock.lockInsertBatch.RUnlock()
	return calls
}

func (mock *songRepoMock) Search(ctx context.Context, f domain.SongFilter) ([]domain.Song, int, error) {
	if mock.SearchFunc == nil {
		panic("songRepoMock.SearchFunc: method is nil but songRepo.Search was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.SongFilter
	}{Ctx: ctx, F: f}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, f)
}

func (mock *songRepoMock) SearchCalls() []struct {
	Ctx context.Context
	F   domain.SongFilter
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
