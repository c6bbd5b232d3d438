package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxSongFieldLength bounds artist and title.
const MaxSongFieldLength = 255

// Song is one catalog entry of a system.
type Song struct {
	ID                 uuid.UUID
	TenantID           uuid.UUID
	SystemID           uuid.UUID
	Artist             string
	Title              string
	Combined           string
	NormalizedCombined string
	CreatedAt          time.Time
}

// NewSong builds a catalog entry with derived combined and normalized forms.
func NewSong(tenantID, systemID uuid.UUID, artist, title string) Song {
	return Song{
		ID:                 uuid.New(),
		TenantID:           tenantID,
		SystemID:           systemID,
		Artist:             artist,
		Title:              title,
		Combined:           CombinedTitle(artist, title),
		NormalizedCombined: NormalizeCombined(artist, title),
	}
}

// SongItem is an artist/title pair as imported or exported.
type SongItem struct {
	Artist string
	Title  string
}

// ImportResult summarizes a best-effort bulk import.
type ImportResult struct {
	Submitted int
	Imported  int
	Skipped   int
	Errors    int
}

// SongFilter narrows a catalog search. TenantID is always applied; an empty
// Query matches everything.
type SongFilter struct {
	TenantID uuid.UUID
	SystemID *uuid.UUID
	Query    string
	Limit    int
	Offset   int
}
