// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for tenant audit records.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/karaoke-backend/internal/adapter/postgres"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	createSQL = `
INSERT INTO audit_log (id, tenant_id, actor_user_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	listByTenantSQL = `
SELECT id, tenant_id, actor_user_id, entity_type, entity_id, action, changes, created_at
FROM audit_log
WHERE tenant_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2`
)

type recordRow struct {
	ID          uuid.UUID  `db:"id"`
	TenantID    uuid.UUID  `db:"tenant_id"`
	ActorUserID *uuid.UUID `db:"actor_user_id"`
	EntityType  string     `db:"entity_type"`
	EntityID    uuid.UUID  `db:"entity_id"`
	Action      string     `db:"action"`
	Changes     []byte     `db:"changes"`
	CreatedAt   time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an audit record. ID and CreatedAt are filled when zero.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, createSQL,
		record.ID, record.TenantID, record.ActorUserID, string(record.EntityType), record.EntityID,
		string(record.Action), changesJSON, record.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByTenant returns the tenant's most recent audit records, newest first.
func (r *Repo) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listByTenantSQL, tenantID, limit); err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		var changes map[string]any
		if len(row.Changes) > 0 {
			if err := json.Unmarshal(row.Changes, &changes); err != nil {
				return nil, fmt.Errorf("audit_record %s unmarshal changes: %w", row.ID, err)
			}
		}
		records[i] = domain.AuditRecord{
			ID:          row.ID,
			TenantID:    row.TenantID,
			ActorUserID: row.ActorUserID,
			EntityType:  domain.EntityType(row.EntityType),
			EntityID:    row.EntityID,
			Action:      domain.AuditAction(row.Action),
			Changes:     changes,
			CreatedAt:   row.CreatedAt,
		}
	}
	return records, nil
}
