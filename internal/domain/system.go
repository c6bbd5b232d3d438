package domain

import (
	"time"

	"github.com/google/uuid"
)

// System is a karaoke host installation owning one song catalog.
type System struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	LegacyID  int64
	SongCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SystemRef addresses a system either by primary key or by its per-tenant
// legacy id. Exactly one is expected to be set.
type SystemRef struct {
	ID       uuid.UUID
	LegacyID int64
}

// IsLegacy reports whether the reference uses the legacy id.
func (r SystemRef) IsLegacy() bool {
	return r.ID == uuid.Nil && r.LegacyID > 0
}
