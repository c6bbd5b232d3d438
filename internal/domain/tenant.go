package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a customer profile: the owning account boundary for venues,
// systems, catalogs and API keys.
type Tenant struct {
	ID           uuid.UUID
	OwnerUserID  uuid.UUID
	BusinessName string
	CreatedAt    time.Time
}

// SingerProfile is the public identity a singer submits requests under.
type SingerProfile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	DisplayName string
	CreatedAt   time.Time
}
