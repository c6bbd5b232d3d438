package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	ListByTenantFunc func(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		ListByTenant []struct {
			Ctx      context.Context
			TenantID uuid.UUID
			Limit    int
		}
	}
	lockListByTenant sync.RWMutex
}

func (mock *auditRepoMock) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.ListByTenantFunc == nil {
		panic("auditRepoMock.ListByTenantFunc: method is nil but auditRepo.ListByTenant was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TenantID uuid.UUID
		Limit    int
	}{Ctx: ctx, TenantID: tenantID, Limit: limit}
	mock.lockListByTenant.Lock()
	mock.calls.ListByTenant = append(mock.calls.ListByTenant, callInfo)
	mock.lockListByTenant.Unlock()
	return mock.ListByTenantFunc(ctx, tenantID, limit)
}

func (mock *auditRepoMock) ListByTenantCalls() []struct {
	Ctx      context.Context
	TenantID uuid.UUID
	Limit    int
} {
	mock.lockListByTenant.RLock()
	calls := mock.calls.ListByTenant
	mock.lockListByTenant.RUnlock()
	return calls
}
