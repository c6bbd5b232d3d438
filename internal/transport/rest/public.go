package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/request"
)

type publicVenueService interface {
	GetPublic(ctx context.Context, urlName string) (*domain.Venue, error)
}

type requestCreator interface {
	Create(ctx context.Context, input request.CreateInput) (*domain.Request, error)
}

// PublicHandler serves the singer-facing venue pages. Authentication is
// optional: signed-in singers get the request recorded in their history.
type PublicHandler struct {
	venues   publicVenueService
	requests requestCreator
	log      *slog.Logger
}

// NewPublicHandler creates a PublicHandler.
func NewPublicHandler(venues publicVenueService, requests requestCreator, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{venues: venues, requests: requests, log: logger.With("handler", "public")}
}

type createRequestRequest struct {
	SingerName *string `json:"singerName" validate:"omitempty,max=100"`
	Artist     string  `json:"artist" validate:"required,max=255"`
	Title      string  `json:"title" validate:"required,max=255"`
	KeyChange  int     `json:"keyChange" validate:"gte=-12,lte=12"`
	Notes      *string `json:"notes" validate:"omitempty,max=500"`
}

// GetVenue handles GET /public/venues/{urlName}.
func (h *PublicHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	v, err := h.venues.GetPublic(r.Context(), chi.URLParam(r, "urlName"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, publicVenueResponse{
		Name:              v.Name,
		URLName:           v.URLName,
		AcceptingRequests: v.AcceptingRequests,
		Address:           v.Address,
	})
}

// CreateRequest handles POST /public/venues/{urlName}/requests.
func (h *PublicHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	v, err := h.venues.GetPublic(r.Context(), chi.URLParam(r, "urlName"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createRequestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.requests.Create(r.Context(), request.CreateInput{
		VenueID:    v.ID,
		SingerName: req.SingerName,
		Artist:     req.Artist,
		Title:      req.Title,
		KeyChange:  req.KeyChange,
		Notes:      req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRequestResponse(created))
}
