package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Venue is a physical location taking song requests.
type Venue struct {
	ID                uuid.UUID
	TenantID          uuid.UUID
	Name              string
	URLName           string
	LegacyID          int64
	AcceptingRequests bool
	Address           *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidSlug reports whether s is a lowercase url-safe venue slug of 3..64 chars.
func IsValidSlug(s string) bool {
	return len(s) >= 3 && len(s) <= 64 && slugPattern.MatchString(s)
}
