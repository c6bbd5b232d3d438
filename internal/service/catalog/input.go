package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

// SearchInput narrows a catalog search. A nil System searches every system
// of the tenant.
type SearchInput struct {
	System *domain.SystemRef
	Query  string
	Limit  int
	Offset int
}

// Validate checks the query length and page window.
func (i SearchInput) Validate(minQuery int) error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.Query)
	if q != "" && utf8.RuneCountInString(q) < minQuery {
		errs = append(errs, domain.FieldError{Field: "q", Message: fmt.Sprintf("must be at least %d characters", minQuery)})
	}
	errs = append(errs, domain.PageParams{Limit: i.Limit, Offset: i.Offset}.Validate()...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateSongInput adds one song to a system.
type CreateSongInput struct {
	SystemID uuid.UUID
	Artist   string
	Title    string
}

// BulkImportInput is a best-effort catalog import into one system.
type BulkImportInput struct {
	System domain.SystemRef
	Songs  []domain.SongItem
}

// cleanItem trims an artist/title pair and returns the normalized key, or a
// field error when the pair cannot be stored.
func cleanItem(item domain.SongItem) (domain.SongItem, string, *domain.FieldError) {
	artist := strings.TrimSpace(item.Artist)
	title := strings.TrimSpace(item.Title)

	switch {
	case artist == "":
		return item, "", &domain.FieldError{Field: "artist", Message: "required"}
	case title == "":
		return item, "", &domain.FieldError{Field: "title", Message: "required"}
	case utf8.RuneCountInString(artist) > domain.MaxSongFieldLength:
		return item, "", &domain.FieldError{Field: "artist", Message: "max 255 characters"}
	case utf8.RuneCountInString(title) > domain.MaxSongFieldLength:
		return item, "", &domain.FieldError{Field: "title", Message: "max 255 characters"}
	}

	key := domain.NormalizeCombined(artist, title)
	if key == "" {
		return item, "", &domain.FieldError{Field: "title", Message: "has no searchable characters"}
	}
	return domain.SongItem{Artist: artist, Title: title}, key, nil
}
