package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/service/apikey"
)

type apiKeyService interface {
	Create(ctx context.Context, input apikey.CreateInput) (*apikey.Created, error)
	List(ctx context.Context) ([]domain.APIKey, error)
	Revoke(ctx context.Context, keyID uuid.UUID) (*domain.APIKey, error)
}

// APIKeyHandler serves API key management for customers.
type APIKeyHandler struct {
	svc apiKeyService
	log *slog.Logger
}

// NewAPIKeyHandler creates an APIKeyHandler.
func NewAPIKeyHandler(svc apiKeyService, logger *slog.Logger) *APIKeyHandler {
	return &APIKeyHandler{svc: svc, log: logger.With("handler", "apikey")}
}

type createAPIKeyRequest struct {
	Description string     `json:"description" validate:"required,max=255"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

// createdAPIKeyResponse carries the plaintext key. It is returned once and
// never again.
type createdAPIKeyResponse struct {
	apiKeyResponse
	Key string `json:"key"`
}

type apiKeyListResponse struct {
	Items []apiKeyResponse `json:"items"`
}

// List handles GET /api-keys.
func (h *APIKeyHandler) List(w http.ResponseWriter, r *http.Request) {
	keys, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apiKeyListResponse{Items: mapSlice(keys, toAPIKeyResponse)})
}

// Create handles POST /api-keys.
func (h *APIKeyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAPIKeyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), apikey.CreateInput{
		Description: req.Description,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdAPIKeyResponse{
		apiKeyResponse: toAPIKeyResponse(created.Key),
		Key:            created.Plaintext,
	})
}

// Revoke handles DELETE /api-keys/{keyId}.
func (h *APIKeyHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	keyID, err := uuidParam(r, "keyId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	key, err := h.svc.Revoke(r.Context(), keyID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAPIKeyResponse(key))
}
