package rest

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

const cursorPrefix = "o:"

// pageInfo is the pagination block of every list response.
type pageInfo struct {
	Total      int     `json:"total"`
	Limit      int     `json:"limit"`
	Offset     int     `json:"offset"`
	HasMore    bool    `json:"hasMore"`
	NextCursor *string `json:"nextCursor"`
}

type listResponse[T any] struct {
	Items []T      `json:"items"`
	Page  pageInfo `json:"page"`
}

// parsePage reads limit, offset and cursor. A cursor overrides offset.
func parsePage(r *http.Request) (domain.PageParams, error) {
	return parsePageDefault(r, domain.DefaultPageLimit)
}

func parsePageDefault(r *http.Request, defaultLimit int) (domain.PageParams, error) {
	q := r.URL.Query()
	page := domain.PageParams{Limit: defaultLimit}
	var errs []domain.FieldError

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		page.Limit = n
	}

	if raw := q.Get("cursor"); raw != "" {
		off, ok := decodeCursor(raw)
		if !ok {
			errs = append(errs, domain.FieldError{Field: "cursor", Message: "invalid cursor"})
		}
		page.Offset = off
	} else if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		page.Offset = n
	}

	if len(errs) == 0 {
		errs = page.Validate()
	}
	if len(errs) > 0 {
		return page, domain.NewValidationErrors(errs)
	}
	return page, nil
}

func newPageInfo(page domain.PageParams, count, total int) pageInfo {
	info := pageInfo{
		Total:   total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: count == page.Limit,
	}
	if info.HasMore {
		c := encodeCursor(page.Offset + page.Limit)
		info.NextCursor = &c
	}
	return info
}

func encodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

func decodeCursor(cursor string) (int, bool) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(cursor, "="))
	if err != nil {
		return 0, false
	}
	s, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseBool reads an optional boolean query parameter.
func parseBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be true or false")
	}
	return &v, nil
}
