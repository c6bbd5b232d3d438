package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

type systemService interface {
	Create(ctx context.Context, name string) (*domain.System, error)
	Get(ctx context.Context, systemID uuid.UUID) (*domain.System, error)
	List(ctx context.Context, page domain.PageParams) ([]domain.System, int, error)
	Rename(ctx context.Context, systemID uuid.UUID, name string) (*domain.System, error)
	Delete(ctx context.Context, systemID uuid.UUID) error
}

// SystemHandler serves the customer's karaoke system endpoints.
type SystemHandler struct {
	svc systemService
	log *slog.Logger
}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler(svc systemService, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{svc: svc, log: logger.With("handler", "system")}
}

type systemNameRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// List handles GET /systems.
func (h *SystemHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	systems, total, err := h.svc.List(r.Context(), page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[systemResponse]{
		Items: mapSlice(systems, toSystemResponse),
		Page:  newPageInfo(page, len(systems), total),
	})
}

// Create handles POST /systems.
func (h *SystemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req systemNameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sys, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSystemResponse(sys))
}

// Get handles GET /systems/{systemId}.
func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	systemID, err := uuidParam(r, "systemId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sys, err := h.svc.Get(r.Context(), systemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSystemResponse(sys))
}

// Rename handles PATCH /systems/{systemId}.
func (h *SystemHandler) Rename(w http.ResponseWriter, r *http.Request) {
	systemID, err := uuidParam(r, "systemId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req systemNameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sys, err := h.svc.Rename(r.Context(), systemID, req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSystemResponse(sys))
}

// Delete handles DELETE /systems/{systemId}. Systems with songs are refused
// with a conflict on songCount.
func (h *SystemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	systemID, err := uuidParam(r, "systemId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), systemID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
