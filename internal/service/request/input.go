package request

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const (
	maxNotesLength      = 500
	maxSingerNameLength = 100
)

// CreateInput is a song request submission. Singer and submitter are taken
// from the caller's identity, never from the payload.
type CreateInput struct {
	VenueID    uuid.UUID
	SingerName *string
	Artist     string
	Title      string
	KeyChange  int
	Notes      *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.VenueID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "venueId", Message: "required"})
	}
	errs = append(errs, validateText("artist", i.Artist, domain.MaxSongFieldLength, true)...)
	errs = append(errs, validateText("title", i.Title, domain.MaxSongFieldLength, true)...)
	if i.KeyChange < domain.MinKeyChange || i.KeyChange > domain.MaxKeyChange {
		errs = append(errs, domain.FieldError{Field: "keyChange", Message: "must be between -12 and 12"})
	}
	if i.Notes != nil {
		errs = append(errs, validateText("notes", *i.Notes, maxNotesLength, false)...)
	}
	if i.SingerName != nil {
		errs = append(errs, validateText("singerName", *i.SingerName, maxSingerNameLength, false)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput filters a venue's queue.
type ListInput struct {
	Processed *bool
	Limit     int
	Offset    int
}

// UpdateInput changes a request's processed flag and/or notes. Nil fields
// are left as they are.
type UpdateInput struct {
	VenueID   uuid.UUID
	RequestID uuid.UUID
	Processed *bool
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.Notes != nil {
		errs = append(errs, validateText("notes", *i.Notes, maxNotesLength, false)...)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// HistoryInput pages through the caller's singer history.
type HistoryInput struct {
	VenueID *uuid.UUID
	Limit   int
	Offset  int
}

func validateText(field, value string, maxLen int, required bool) []domain.FieldError {
	v := strings.TrimSpace(value)
	if required && v == "" {
		return []domain.FieldError{{Field: field, Message: "required"}}
	}
	if utf8.RuneCountInString(v) > maxLen {
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}

// trimOrNil returns nil for absent or blank values.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
