package apikey

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const maxDescriptionLength = 255

// CreateInput holds parameters for issuing a key.
type CreateInput struct {
	Description string
	ExpiresAt   *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	desc := strings.TrimSpace(i.Description)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if utf8.RuneCountInString(desc) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 255 characters"})
	}
	if i.ExpiresAt != nil && !i.ExpiresAt.After(now) {
		errs = append(errs, domain.FieldError{Field: "expiresAt", Message: "must be in the future"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Created is the result of issuing a key. Plaintext is shown exactly once.
type Created struct {
	Key       *domain.APIKey
	Plaintext string
}
