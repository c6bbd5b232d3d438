package ws

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/heartmarshall/karaoke-backend/internal/config"
	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/transport/problem"
)

type venueLookup interface {
	Get(ctx context.Context, venueID uuid.UUID) (*domain.Venue, error)
}

// Handler upgrades GET /venues/{venueId}/live after checking that the
// caller owns the venue.
type Handler struct {
	hub      *Hub
	venues   venueLookup
	upgrader websocket.Upgrader
	buffer   int
	log      *slog.Logger
}

// NewHandler creates a live feed handler.
func NewHandler(hub *Hub, venues venueLookup, cfg config.PushConfig, logger *slog.Logger) *Handler {
	origins := cfg.Origins()
	buffer := cfg.SendBuffer
	if buffer < 1 {
		buffer = 1
	}

	return &Handler{
		hub:    hub,
		venues: venues,
		buffer: buffer,
		log:    logger.With("handler", "ws"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
			HandshakeTimeout: 10 * time.Second,
			CheckOrigin:      originChecker(origins),
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	venueID, err := uuid.Parse(chi.URLParam(r, "venueId"))
	if err != nil {
		problem.Write(w, r, http.StatusNotFound, "resource not found")
		return
	}

	if _, err := h.venues.Get(r.Context(), venueID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.Write(w, r, http.StatusNotFound, "resource not found")
		case errors.Is(err, domain.ErrUnauthorized):
			problem.Write(w, r, http.StatusUnauthorized, "authentication required")
		default:
			h.log.ErrorContext(r.Context(), "live feed venue lookup", slog.String("error", err.Error()))
			problem.Write(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := newClient(venueID, conn, h.buffer, h.log)
	h.hub.Subscribe(venueID, client)
	h.log.InfoContext(r.Context(), "live feed connected", slog.String("venue_id", venueID.String()))

	go client.writePump()
	go client.readPump(h.hub)
}

// originChecker allows any origin for "*", and otherwise only the listed
// origins. Requests without an Origin header come from non-browser clients
// and are accepted.
func originChecker(allowed []string) func(r *http.Request) bool {
	if slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || slices.Contains(allowed, origin)
	}
}
