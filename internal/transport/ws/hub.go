// Package ws delivers live request events to venue operators over
// WebSocket connections.
package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/heartmarshall/karaoke-backend/internal/domain"
	"github.com/heartmarshall/karaoke-backend/internal/metrics"
)

// Sink receives encoded events for one subscriber. Send must not block: it
// reports false when the message could not be queued.
type Sink interface {
	Send(msg []byte) bool
	Close()
}

// Hub is an in-memory, venue-scoped pub/sub. Events are not persisted;
// subscribers that fall behind lose messages instead of slowing publishers.
type Hub struct {
	log    *slog.Logger
	mu     sync.RWMutex
	venues map[uuid.UUID]map[Sink]struct{}
	count  int
	closed bool
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		log:    logger.With("component", "ws_hub"),
		venues: make(map[uuid.UUID]map[Sink]struct{}),
	}
}

// Message is the wire form of a live event.
type Message struct {
	Type    string         `json:"type"`
	VenueID string         `json:"venueId"`
	Request requestPayload `json:"request"`
	SentAt  time.Time      `json:"sentAt"`
}

type requestPayload struct {
	ID          string     `json:"id"`
	SingerName  *string    `json:"singerName"`
	Artist      string     `json:"artist"`
	Title       string     `json:"title"`
	KeyChange   int        `json:"keyChange"`
	Notes       *string    `json:"notes"`
	Processed   bool       `json:"processed"`
	ProcessedAt *time.Time `json:"processedAt"`
	RequestedAt time.Time  `json:"requestedAt"`
}

// Subscribe adds sink to venueID's feed. After Close the sink is closed
// immediately.
func (h *Hub) Subscribe(venueID uuid.UUID, sink Sink) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		sink.Close()
		return
	}
	subs, ok := h.venues[venueID]
	if !ok {
		subs = make(map[Sink]struct{})
		h.venues[venueID] = subs
	}
	if _, dup := subs[sink]; !dup {
		subs[sink] = struct{}{}
		h.count++
		metrics.WSSubscribers.Inc()
	}
	h.mu.Unlock()

	h.log.Debug("subscriber added", slog.String("venue_id", venueID.String()))
}

// Unsubscribe removes sink from venueID's feed. Unknown sinks are ignored.
func (h *Hub) Unsubscribe(venueID uuid.UUID, sink Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.venues[venueID]
	if !ok {
		return
	}
	if _, ok := subs[sink]; !ok {
		return
	}
	delete(subs, sink)
	h.count--
	metrics.WSSubscribers.Dec()
	if len(subs) == 0 {
		delete(h.venues, venueID)
	}
}

// Publish delivers event to every subscriber of venueID. It never blocks on
// a subscriber.
func (h *Hub) Publish(venueID uuid.UUID, event domain.RequestEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subs := h.venues[venueID]
	if len(subs) == 0 {
		return
	}

	msg, err := json.Marshal(newMessage(event))
	if err != nil {
		h.log.Error("encode event", slog.String("error", err.Error()))
		return
	}

	for sink := range subs {
		if !sink.Send(msg) {
			metrics.WSDroppedMessagesTotal.Inc()
			h.log.Warn("subscriber too slow, event dropped",
				slog.String("venue_id", venueID.String()),
				slog.String("type", string(event.Type)))
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

// Close disconnects every subscriber and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for venueID, subs := range h.venues {
		for sink := range subs {
			sink.Close()
		}
		delete(h.venues, venueID)
	}
	metrics.WSSubscribers.Sub(float64(h.count))
	h.count = 0
}

func newMessage(event domain.RequestEvent) Message {
	r := event.Request
	return Message{
		Type:    string(event.Type),
		VenueID: event.VenueID.String(),
		Request: requestPayload{
			ID:          r.ID.String(),
			SingerName:  r.SingerName,
			Artist:      r.Artist,
			Title:       r.Title,
			KeyChange:   r.KeyChange,
			Notes:       r.Notes,
			Processed:   r.Processed,
			ProcessedAt: r.ProcessedAt,
			RequestedAt: r.RequestedAt,
		},
		SentAt: time.Now().UTC(),
	}
}
