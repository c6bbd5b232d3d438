// Package problem writes RFC 7807 problem details.
package problem

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/pkg/ctxutil"
)

// ContentType is the media type of problem responses.
const ContentType = "application/problem+json"

// Details is the problem body.
type Details struct {
	Type          string       `json:"type"`
	Title         string       `json:"title"`
	Status        int          `json:"status"`
	Detail        string       `json:"detail,omitempty"`
	Errors        []FieldError `json:"errors,omitempty"`
	CorrelationID string       `json:"correlationId,omitempty"`
}

// FieldError is one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Write sends a problem response. The request id, when present, is echoed as
// the correlation id.
func Write(w http.ResponseWriter, r *http.Request, status int, detail string, fields ...domain.FieldError) {
	body := Details{
		Type:          "about:blank",
		Title:         http.StatusText(status),
		Status:        status,
		Detail:        detail,
		CorrelationID: ctxutil.RequestIDFromCtx(r.Context()),
	}
	for _, f := range fields {
		body.Errors = append(body.Errors, FieldError{Field: f.Field, Message: f.Message})
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}
