package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/catalog"
)

type catalogService interface {
	Search(ctx context.Context, input catalog.SearchInput) ([]domain.Song, int, error)
	ExportAll(ctx context.Context, systemID uuid.UUID) ([]domain.SongItem, error)
	CreateSong(ctx context.Context, input catalog.CreateSongInput) (*domain.Song, error)
	BulkImport(ctx context.Context, input catalog.BulkImportInput) (*domain.ImportResult, error)
	DeleteOne(ctx context.Context, songID uuid.UUID) error
	DeleteAllForSystem(ctx context.Context, systemID uuid.UUID) (int64, error)
}

// SongHandler serves catalog endpoints.
type SongHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewSongHandler creates a SongHandler.
func NewSongHandler(svc catalogService, logger *slog.Logger) *SongHandler {
	return &SongHandler{svc: svc, log: logger.With("handler", "song")}
}

type importItem struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

// importRequest keeps each entry raw so a malformed element is counted as
// an import error instead of failing the whole request.
type importRequest struct {
	Songs []json.RawMessage `json:"songs"`
}

type importResponse struct {
	SystemID  string `json:"systemId"`
	Submitted int    `json:"submitted"`
	Imported  int    `json:"imported"`
	Skipped   int    `json:"skipped"`
	Errors    int    `json:"errors"`
}

type exportResponse struct {
	SystemID string       `json:"systemId"`
	Songs    []importItem `json:"songs"`
}

type wipeResponse struct {
	Deleted int64 `json:"deleted"`
}

// SearchInSystem handles GET /systems/{systemId}/songs.
func (h *SongHandler) SearchInSystem(w http.ResponseWriter, r *http.Request) {
	systemID, err := uuidParam(r, "systemId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.search(w, r, &systemID)
}

// Search handles GET /songs with an optional systemId filter.
func (h *SongHandler) Search(w http.ResponseWriter, r *http.Request) {
	systemID, err := optionalUUIDQuery(r, "systemId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.search(w, r, systemID)
}

func (h *SongHandler) search(w http.ResponseWriter, r *http.Request, systemID *uuid.UUID) {
	page, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := catalog.SearchInput{
		Query:  r.URL.Query().Get("q"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if systemID != nil {
		input.System = &domain.SystemRef{ID: *systemID}
	}

	songs, total, err := h.svc.Search(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[songResponse]{
		Items: mapSlice(songs, toSongResponse),
		Page:  newPageInfo(page, len(songs), total),
	})
}

// Create handles POST /systems/{systemId}/songs.
func (h *SongHandler) Create(w http.ResponseWriter, r *http.Request) {
	systemID, err := uuidParam(r, "systemId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req songItem
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	song, err := h.svc.CreateSong(r.Context(), catalog.CreateSongInput{
		SystemID: systemID,
		Artist:   req.Artist,
		Title:    req.Title,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSongResponse(song))
}

// Import handles POST /systems/{systemId}/songs/import.
func (h *SongHandler) Import(w http.ResponseWriter, r *http.Request) {
	systemID, err := uuidParam(r, "systemId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req importRequest
	if err := decodeJSONLimit(w, r, &req, maxImportBodyBytes); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.BulkImport(r.Context(), catalog.BulkImportInput{
		System: domain.SystemRef{ID: systemID},
		Songs:  toSongItems(req.Songs),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		SystemID:  systemID.String(),
		Submitted: result.Submitted,
		Imported:  result.Imported,
		Skipped:   result.Skipped,
		Errors:    result.Errors,
	})
}

// Export handles GET /systems/{systemId}/songs/export.
func (h *SongHandler) Export(w http.ResponseWriter, r *http.Request) {
	systemID, err := uuidParam(r, "systemId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.ExportAll(r.Context(), systemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	songs := make([]importItem, len(items))
	for i, it := range items {
		songs[i] = importItem{Artist: it.Artist, Title: it.Title}
	}
	writeJSON(w, http.StatusOK, exportResponse{SystemID: systemID.String(), Songs: songs})
}

// Wipe handles DELETE /systems/{systemId}/songs.
func (h *SongHandler) Wipe(w http.ResponseWriter, r *http.Request) {
	systemID, err := uuidParam(r, "systemId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	n, err := h.svc.DeleteAllForSystem(r.Context(), systemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, wipeResponse{Deleted: n})
}

// Delete handles DELETE /songs/{songId}.
func (h *SongHandler) Delete(w http.ResponseWriter, r *http.Request) {
	songID, err := uuidParam(r, "songId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteOne(r.Context(), songID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// toSongItems decodes import entries one by one. An entry that is not an
// {artist,title} object of strings becomes an empty item, which the import
// rejects and counts under errors.
func toSongItems(in []json.RawMessage) []domain.SongItem {
	out := make([]domain.SongItem, len(in))
	for i, raw := range in {
		var it importItem
		if err := json.Unmarshal(raw, &it); err != nil {
			continue
		}
		out[i] = domain.SongItem{Artist: it.Artist, Title: it.Title}
	}
	return out
}
