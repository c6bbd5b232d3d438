package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/request"
)

type requestService interface {
	Create(ctx context.Context, input request.CreateInput) (*domain.Request, error)
	ListForVenue(ctx context.Context, venueID uuid.UUID, input request.ListInput) ([]domain.Request, int, error)
	Update(ctx context.Context, input request.UpdateInput) (*domain.Request, error)
	Delete(ctx context.Context, venueID, requestID uuid.UUID) error
	SingerHistory(ctx context.Context, input request.HistoryInput) ([]domain.SingerHistoryEntry, int, error)
}

// RequestHandler serves a venue's request queue to its operator.
type RequestHandler struct {
	svc requestService
	log *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc requestService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, log: logger.With("handler", "request")}
}

type updateRequestRequest struct {
	Processed *bool   `json:"processed"`
	Notes     *string `json:"notes" validate:"omitempty,max=500"`
}

// List handles GET /venues/{venueId}/requests.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuidParam(r, "venueId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	page, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	processed, err := parseBool(r, "processed")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	reqs, total, err := h.svc.ListForVenue(r.Context(), venueID, request.ListInput{
		Processed: processed,
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[requestResponse]{
		Items: mapSlice(reqs, toRequestResponse),
		Page:  newPageInfo(page, len(reqs), total),
	})
}

// Update handles PATCH /venues/{venueId}/requests/{requestId}.
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuidParam(r, "venueId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	requestID, err := uuidParam(r, "requestId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateRequestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), request.UpdateInput{
		VenueID:   venueID,
		RequestID: requestID,
		Processed: req.Processed,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRequestResponse(updated))
}

// Delete handles DELETE /venues/{venueId}/requests/{requestId}.
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuidParam(r, "venueId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	requestID, err := uuidParam(r, "requestId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), venueID, requestID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /singer/history.
func (h *RequestHandler) History(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	venueID, err := optionalUUIDQuery(r, "venueId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, total, err := h.svc.SingerHistory(r.Context(), request.HistoryInput{
		VenueID: venueID,
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[historyResponse]{
		Items: mapSlice(entries, toHistoryResponse),
		Page:  newPageInfo(page, len(entries), total),
	})
}
