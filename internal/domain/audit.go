package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an append-only log entry of a tenant-scoped mutation.
type AuditRecord struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	ActorUserID *uuid.UUID
	EntityType  EntityType
	EntityID    uuid.UUID
	Action      AuditAction
	Changes     map[string]any
	CreatedAt   time.Time
}
