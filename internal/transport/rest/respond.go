package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/karaoke-backend/internal/config"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const (
	// maxBodyBytes bounds ordinary JSON request bodies.
	maxBodyBytes = 1 << 20

	// maxImportItemBytes is the worst-case encoding of one import entry:
	// both fields at MaxSongFieldLength runes, every rune \u-escaped.
	maxImportItemBytes = 2*domain.MaxSongFieldLength*6 + 64

	// maxImportBodyBytes admits a payload at the configurable item ceiling.
	maxImportBodyBytes = config.MaxImportItems*maxImportItemBytes + 1024
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads the request body into dst and runs struct validation.
// Malformed bodies and failed validation both surface as ValidationError.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return decodeJSONLimit(w, r, dst, maxBodyBytes)
}

// decodeJSONLimit is decodeJSON with a caller-chosen body size cap.
func decodeJSONLimit(w http.ResponseWriter, r *http.Request, dst any, limit int64) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", "request body too large")
		}
		return domain.NewValidationError("body", "unreadable request body")
	}
	if len(raw) == 0 {
		return domain.NewValidationError("body", "request body is empty")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return validateStruct(dst)
}
