package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	BulkImportFunc         func(ctx context.Context, input catalog.BulkImportInput) (*domain.ImportResult, error)
	CreateSongFunc         func(ctx context.Context, input catalog.CreateSongInput) (*domain.Song, error)
	DeleteAllForSystemFunc func(ctx context.Context, systemID uuid.UUID) (int64, error)
	DeleteOneFunc          func(ctx context.Context, songID uuid.UUID) error
	ExportAllFunc          func(ctx context.Context, systemID uuid.UUID) ([]domain.SongItem, error)
	SearchFunc             func(ctx context.Context, input catalog.SearchInput) ([]domain.Song, int, error)

	calls struct {
		BulkImport []struct {
			Ctx   context.Context
			Input catalog.BulkImportInput
		}
		CreateSong []struct {
			Ctx   context.Context
			Input catalog.CreateSongInput
		}
		DeleteAllForSystem []struct {
			Ctx      context.Context
			SystemID uuid.UUID
		}
		DeleteOne []struct {
			Ctx    context.Context
			SongID uuid.UUID
		}
		ExportAll []struct {
			Ctx      context.Context
			SystemID uuid.UUID
		}
		Search []struct {
			Ctx   context.Context
			Input catalog.SearchInput
		}
	}
	lockBulkImport         sync.RWMutex
	lockCreateSong         sync.RWMutex
	lockDeleteAllForSystem sync.RWMutex
	lockDeleteOne          sync.RWMutex
	lockExportAll          sync.RWMutex
	lockSearch             sync.RWMutex
}

func (mock *catalogServiceMock) BulkImport(ctx context.Context, input catalog.BulkImportInput) (*domain.ImportResult, error) {
	if mock.BulkImportFunc == nil {
		panic("catalogServiceMock.BulkImportFunc: method is nil but catalogService.BulkImport was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.BulkImportInput
	}{Ctx: ctx, Input: input}
	mock.lockBulkImport.Lock()
	mock.calls.BulkImport = append(mock.calls.BulkImport, callInfo)
	mock.lockBulkImport.Unlock()
	return mock.BulkImportFunc(ctx, input)
}

func (mock *catalogServiceMock) BulkImportCalls() []struct {
	Ctx   context.Context
	Input catalog.BulkImportInput
} {
	mock.lockBulkImport.RLock()
	calls := mock.calls.BulkImport
	mock.lockBulkImport.RUnlock()
	return calls
}

func (mock *catalogServiceMock) CreateSong(ctx context.Context, input catalog.CreateSongInput) (*domain.Song, error) {
	if mock.CreateSongFunc == nil {
		panic("catalogServiceMock.CreateSongFunc: method is nil but catalogService.CreateSong was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.CreateSongInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateSong.Lock()
	mock.calls.CreateSong = append(mock.calls.CreateSong, callInfo)
	mock.lockCreateSong.Unlock()
	return mock.CreateSongFunc(ctx, input)
}

func (mock *catalogServiceMock) CreateSongCalls() []struct {
	Ctx   context.Context
	Input catalog.CreateSongInput
} {
	mock.lockCreateSong.RLock()
	calls := mock.calls.CreateSong
	mock.lockCreateSong.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteAllForSystem(ctx context.Context, systemID uuid.UUID) (int64, error) {
	if mock.DeleteAllForSystemFunc == nil {
		panic("catalogServiceMock.DeleteAllForSystemFunc: method is nil but catalogService.DeleteAllForSystem was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		SystemID uuid.UUID
	}{Ctx: ctx, SystemID: systemID}
	mock.lockDeleteAllForSystem.Lock()
	mock.calls.DeleteAllForSystem = append(mock.calls.DeleteAllForSystem, callInfo)
	mock.lockDeleteAllForSystem.Unlock()
	return mock.DeleteAllForSystemFunc(ctx, systemID)
}

func (mock *catalogServiceMock) DeleteAllForSystemCalls() []struct {
	Ctx      context.Context
	SystemID uuid.UUID
} {
	mock.lockDeleteAllForSystem.RLock()
	calls := mock.calls.DeleteAllForSystem
	mock.lockDeleteAllForSystem.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteOne(ctx context.Context, songID uuid.UUID) error {
	if mock.DeleteOneFunc == nil {
		panic("catalogServiceMock.DeleteOneFunc: method is nil but catalogService.DeleteOne was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		SongID uuid.UUID
	}{Ctx: ctx, SongID: songID}
	mock.lockDeleteOne.Lock()
	mock.calls.DeleteOne = append(mock.calls.DeleteOne, callInfo)
	mock.lockDeleteOne.Unlock()
	return mock.DeleteOneFunc(ctx, songID)
}

func (mock *catalogServiceMock) DeleteOneCalls() []struct {
	Ctx    context.Context
	SongID uuid.UUID
} {
	mock.lockDeleteOne.RLock()
	calls := mock.calls.DeleteOne
	mock.lockDeleteOne.RUnlock()
	return calls
}

func (mock *catalogServiceMock) ExportAll(ctx context.Context, systemID uuid.UUID) ([]domain.SongItem, error) {
	if mock.ExportAllFunc == nil {
		panic("catalogServiceMock.ExportAllFunc: method is nil but catalogService.ExportAll was just called")
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

func (mock *catalogServiceMock) ExportAllCalls() []struct {
	Ctx      context.Context
	SystemID uuid.UUID
} {
	mock.lockExportAll.RLock()
	calls := mock.calls.ExportAll
	mock.lockExportAll.RUnlock()
	return calls
}

func (mock *catalogServiceMock) Search(ctx context.Context, input catalog.SearchInput) ([]domain.Song, int, error) {
	if mock.SearchFunc == nil {
		panic("catalogServiceMock.SearchFunc: method is nil but catalogService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *catalogServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input catalog.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
