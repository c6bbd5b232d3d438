package domain

import (
	"time"

	"github.com/google/uuid"
)

// Key change bounds in semitones.
const (
	MinKeyChange = -12
	MaxKeyChange = 12
)

// Request is a singer's song request at a venue.
//
// Processed and ProcessedAt move together: ProcessedAt is set iff Processed.
type Request struct {
	ID              uuid.UUID
	VenueID         uuid.UUID
	SingerProfileID *uuid.UUID
	SubmitterUserID *uuid.UUID
	SingerName      *string
	Artist          string
	Title           string
	KeyChange       int
	Notes           *string
	Processed       bool
	ProcessedAt     *time.Time
	RequestedAt     time.Time
}

// RequestPatch carries only the request fields a caller submitted. A nil
// Processed leaves the flag and its stamp alone; Notes is written only when
// SetNotes is true, and a nil Notes then clears them. Now is the stamp used
// for a false to true transition.
type RequestPatch struct {
	Processed *bool
	SetNotes  bool
	Notes     *string
	Now       time.Time
}

// Empty reports whether the patch changes nothing.
func (p RequestPatch) Empty() bool {
	return p.Processed == nil && !p.SetNotes
}

// RequestEvent is a live feed notification for a venue.
type RequestEvent struct {
	Type    RequestEventType
	VenueID uuid.UUID
	Request Request
}

// SingerHistoryEntry is an append-only record of a request made by a singer.
type SingerHistoryEntry struct {
	ID              uuid.UUID
	SingerProfileID uuid.UUID
	VenueID         uuid.UUID
	Artist          string
	Title           string
	KeyChange       int
	SongFingerprint string
	RequestedAt     time.Time
}
