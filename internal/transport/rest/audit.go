package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
)

type auditService interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditRecord, error)
}

// AuditHandler serves the tenant's audit trail.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

type auditListResponse struct {
	Items []auditResponse `json:"items"`
}

// List handles GET /audit-log.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	records, err := h.svc.Recent(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, auditListResponse{Items: mapSlice(records, toAuditResponse)})
}
