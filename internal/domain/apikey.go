package domain

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is the stored metadata of a machine credential. The plaintext is
// never stored; only its SHA-256 digest and a display prefix.
type APIKey struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Description string
	KeyHash     string
	KeyPrefix   string
	Status      APIKeyStatus
	ExpiresAt   *time.Time
	LastUsedAt  *time.Time
	RevokedAt   *time.Time
	CreatedAt   time.Time
}

// Usable reports whether the key may authenticate at now.
func (k *APIKey) Usable(now time.Time) bool {
	if k.Status != APIKeyStatusActive {
		return false
	}
	return k.ExpiresAt == nil || k.ExpiresAt.After(now)
}
