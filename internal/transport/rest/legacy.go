package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/catalog"
	"github.com/heartmarshall/karaoke-backend/internal/service/request"
)

type legacyCatalog interface {
	Search(ctx context.Context, input catalog.SearchInput) ([]domain.Song, int, error)
	BulkImport(ctx context.Context, input catalog.BulkImportInput) (*domain.ImportResult, error)
}

type legacyVenues interface {
	GetByLegacyID(ctx context.Context, legacyID int64) (*domain.Venue, error)
}

type legacyRequests interface {
	ListForVenue(ctx context.Context, venueID uuid.UUID, input request.ListInput) ([]domain.Request, int, error)
	Update(ctx context.Context, input request.UpdateInput) (*domain.Request, error)
}

// LegacyHandler serves the sync protocol used by existing karaoke host
// software. Payloads use snake_case keys and errors are {error, message}.
type LegacyHandler struct {
	catalog  legacyCatalog
	venues   legacyVenues
	requests legacyRequests
	log      *slog.Logger
}

// NewLegacyHandler creates a LegacyHandler.
func NewLegacyHandler(cat legacyCatalog, venues legacyVenues, requests legacyRequests, logger *slog.Logger) *LegacyHandler {
	return &LegacyHandler{
		catalog:  cat,
		venues:   venues,
		requests: requests,
		log:      logger.With("handler", "legacy"),
	}
}

type legacyError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type legacySong struct {
	SongID   string `json:"song_id"`
	Artist   string `json:"artist"`
	Title    string `json:"title"`
	Combined string `json:"combined"`
}

type legacySongsResponse struct {
	SystemID int64        `json:"system_id"`
	Total    int          `json:"total"`
	Songs    []legacySong `json:"songs"`
}

type legacySyncRequest struct {
	Songs []json.RawMessage `json:"songs"`
}

type legacySyncResponse struct {
	SystemID       int64 `json:"system_id"`
	TotalSubmitted int   `json:"total_submitted"`
	Imported       int   `json:"imported"`
	Skipped        int   `json:"skipped"`
	Errors         int   `json:"errors"`
}

type legacyVenue struct {
	VenueID           int64   `json:"venue_id"`
	Name              string  `json:"name"`
	URLName           string  `json:"url_name"`
	AcceptingRequests bool    `json:"accepting_requests"`
	Address           *string `json:"address"`
}

type legacyRequest struct {
	RequestID   string     `json:"request_id"`
	VenueID     int64      `json:"venue_id"`
	SingerName  *string    `json:"singer_name"`
	Artist      string     `json:"artist"`
	Title       string     `json:"title"`
	KeyChange   int        `json:"key_change"`
	Notes       *string    `json:"notes"`
	Processed   bool       `json:"processed"`
	ProcessedAt *time.Time `json:"processed_at"`
	RequestedAt time.Time  `json:"requested_at"`
}

type legacyRequestsResponse struct {
	VenueID  int64           `json:"venue_id"`
	Total    int             `json:"total"`
	Requests []legacyRequest `json:"requests"`
}

// ListSongs handles GET /systems/{legacySystemId}/songs.
func (h *LegacyHandler) ListSongs(w http.ResponseWriter, r *http.Request) {
	legacyID, err := legacyIDParam(r, "legacySystemId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := parsePageDefault(r, domain.MaxPageLimit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	songs, total, err := h.catalog.Search(r.Context(), catalog.SearchInput{
		System: &domain.SystemRef{LegacyID: legacyID},
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := legacySongsResponse{SystemID: legacyID, Total: total, Songs: make([]legacySong, len(songs))}
	for i, s := range songs {
		resp.Songs[i] = legacySong{SongID: s.ID.String(), Artist: s.Artist, Title: s.Title, Combined: s.Combined}
	}
	writeJSON(w, http.StatusOK, resp)
}

// SyncSongs handles POST /systems/{legacySystemId}/songs/sync.
func (h *LegacyHandler) SyncSongs(w http.ResponseWriter, r *http.Request) {
	legacyID, err := legacyIDParam(r, "legacySystemId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req legacySyncRequest
	if err := decodeJSONLimit(w, r, &req, maxImportBodyBytes); err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.catalog.BulkImport(r.Context(), catalog.BulkImportInput{
		System: domain.SystemRef{LegacyID: legacyID},
		Songs:  toSongItems(req.Songs),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, legacySyncResponse{
		SystemID:       legacyID,
		TotalSubmitted: result.Submitted,
		Imported:       result.Imported,
		Skipped:        result.Skipped,
		Errors:         result.Errors,
	})
}

// GetVenue handles GET /venues/{legacyVenueId}.
func (h *LegacyHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	v, ok := h.venue(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, legacyVenue{
		VenueID:           v.LegacyID,
		Name:              v.Name,
		URLName:           v.URLName,
		AcceptingRequests: v.AcceptingRequests,
		Address:           v.Address,
	})
}

// ListRequests handles GET /venues/{legacyVenueId}/requests.
func (h *LegacyHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	v, ok := h.venue(w, r)
	if !ok {
		return
	}
	processed, err := parseBool(r, "processed")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := parsePageDefault(r, domain.MaxPageLimit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	reqs, total, err := h.requests.ListForVenue(r.Context(), v.ID, request.ListInput{
		Processed: processed,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := legacyRequestsResponse{VenueID: v.LegacyID, Total: total, Requests: make([]legacyRequest, len(reqs))}
	for i := range reqs {
		resp.Requests[i] = toLegacyRequest(&reqs[i], v.LegacyID)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ProcessRequest handles POST /venues/{legacyVenueId}/requests/{requestId}/process.
func (h *LegacyHandler) ProcessRequest(w http.ResponseWriter, r *http.Request) {
	v, ok := h.venue(w, r)
	if !ok {
		return
	}
	requestID, err := uuidParam(r, "requestId")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	processed := true
	updated, err := h.requests.Update(r.Context(), request.UpdateInput{
		VenueID:   v.ID,
		RequestID: requestID,
		Processed: &processed,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLegacyRequest(updated, v.LegacyID))
}

func (h *LegacyHandler) venue(w http.ResponseWriter, r *http.Request) (*domain.Venue, bool) {
	legacyID, err := legacyIDParam(r, "legacyVenueId")
	if err != nil {
		h.writeError(w, r, err)
		return nil, false
	}
	v, err := h.venues.GetByLegacyID(r.Context(), legacyID)
	if err != nil {
		h.writeError(w, r, err)
		return nil, false
	}
	return v, true
}

func (h *LegacyHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		msg := "invalid request"
		if len(validationErr.Errors) > 0 {
			fe := validationErr.Errors[0]
			msg = fe.Field + ": " + fe.Message
		}
		writeJSON(w, http.StatusBadRequest, legacyError{Error: "validation_error", Message: msg})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, legacyError{Error: "validation_error", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, legacyError{Error: "invalid_api_key", Message: "API key is missing, invalid or revoked"})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, legacyError{Error: "forbidden", Message: forbiddenDetail(err)})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, legacyError{Error: "not_found", Message: "resource not found"})
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, legacyError{Error: "conflict", Message: err.Error()})
	default:
		h.log.ErrorContext(r.Context(), "unhandled legacy error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, legacyError{Error: "internal_error", Message: "internal server error"})
	}
}

func toLegacyRequest(req *domain.Request, legacyVenueID int64) legacyRequest {
	return legacyRequest{
		RequestID:   req.ID.String(),
		VenueID:     legacyVenueID,
		SingerName:  req.SingerName,
		Artist:      req.Artist,
		Title:       req.Title,
		KeyChange:   req.KeyChange,
		Notes:       req.Notes,
		Processed:   req.Processed,
		ProcessedAt: req.ProcessedAt,
		RequestedAt: req.RequestedAt,
	}
}
