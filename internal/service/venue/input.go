package venue

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const (
	maxNameLength    = 200
	maxAddressLength = 500
)

// CreateInput holds the parameters for creating a venue.
type CreateInput struct {
	Name              string
	URLName           string
	AcceptingRequests *bool
	Address           *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	errs = validateSlug(errs, i.URLName)
	errs = validateAddress(errs, i.Address)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial venue update. Nil fields are left unchanged.
type UpdateInput struct {
	VenueID           uuid.UUID
	Name              *string
	URLName           *string
	AcceptingRequests *bool
	Address           *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.VenueID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "venueId", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.URLName != nil {
		errs = validateSlug(errs, *i.URLName)
	}
	errs = validateAddress(errs, i.Address)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validateSlug(errs []domain.FieldError, slug string) []domain.FieldError {
	if !domain.IsValidSlug(normalizeSlug(slug)) {
		return append(errs, domain.FieldError{Field: "urlName", Message: "3-64 lowercase letters, digits and single hyphens"})
	}
	return errs
}

func validateAddress(errs []domain.FieldError, addr *string) []domain.FieldError {
	if addr != nil && utf8.RuneCountInString(*addr) > maxAddressLength {
		return append(errs, domain.FieldError{Field: "address", Message: "max 500 characters"})
	}
	return errs
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
