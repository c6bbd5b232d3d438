package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/venue"
)

type venueService interface {
	Create(ctx context.Context, input venue.CreateInput) (*domain.Venue, error)
	Get(ctx context.Context, venueID uuid.UUID) (*domain.Venue, error)
	List(ctx context.Context, page domain.PageParams) ([]domain.Venue, int, error)
	Update(ctx context.Context, input venue.UpdateInput) (*domain.Venue, error)
	Delete(ctx context.Context, venueID uuid.UUID) error
}

// VenueHandler serves the customer's venue endpoints.
type VenueHandler struct {
	svc venueService
	log *slog.Logger
}

// NewVenueHandler creates a VenueHandler.
func NewVenueHandler(svc venueService, logger *slog.Logger) *VenueHandler {
	return &VenueHandler{svc: svc, log: logger.With("handler", "venue")}
}

type createVenueRequest struct {
	Name              string  `json:"name" validate:"required,max=200"`
	URLName           string  `json:"urlName" validate:"required"`
	AcceptingRequests *bool   `json:"acceptingRequests"`
	Address           *string `json:"address" validate:"omitempty,max=500"`
}

type updateVenueRequest struct {
	Name              *string `json:"name" validate:"omitempty,max=200"`
	URLName           *string `json:"urlName"`
	AcceptingRequests *bool   `json:"acceptingRequests"`
	Address           *string `json:"address" validate:"omitempty,max=500"`
}

// List handles GET /venues.
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	venues, total, err := h.svc.List(r.Context(), page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[venueResponse]{
		Items: mapSlice(venues, toVenueResponse),
		Page:  newPageInfo(page, len(venues), total),
	})
}

// Create handles POST /venues.
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createVenueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.svc.Create(r.Context(), venue.CreateInput{
		Name:              req.Name,
		URLName:           req.URLName,
		AcceptingRequests: req.AcceptingRequests,
		Address:           req.Address,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVenueResponse(v))
}

// Get handles GET /venues/{venueId}.
func (h *VenueHandler) Get(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuidParam(r, "venueId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.svc.Get(r.Context(), venueID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toVenueResponse(v))
}

// Update handles PATCH /venues/{venueId}.
func (h *VenueHandler) Update(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuidParam(r, "venueId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateVenueRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.svc.Update(r.Context(), venue.UpdateInput{
		VenueID:           venueID,
		Name:              req.Name,
		URLName:           req.URLName,
		AcceptingRequests: req.AcceptingRequests,
		Address:           req.Address,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toVenueResponse(v))
}

// Delete handles DELETE /venues/{venueId}.
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuidParam(r, "venueId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), venueID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
