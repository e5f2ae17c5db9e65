package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/notify"
	"seat-reservation/internal/usecase"

	"go.uber.org/zap"
)

const streamKeepAlive = 25 * time.Second

// StreamHandler serves Server-Sent Event streams. Each client gets a full
// collection snapshot on connect and a fresh one whenever a write path
// signals the topic. Clients never receive deltas.
type StreamHandler struct {
	hub      *notify.Hub
	events   usecase.EventService
	bookings usecase.BookingService
	log      *zap.Logger
}

func NewStreamHandler(hub *notify.Hub, events usecase.EventService, bookings usecase.BookingService, log *zap.Logger) *StreamHandler {
	return &StreamHandler{
		hub:      hub,
		events:   events,
		bookings: bookings,
		log:      log.With(zap.String("handler", "stream")),
	}
}

// Events handles GET /api/events/stream (public)
func (h *StreamHandler) Events(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, notify.TopicEvents, func(ctx context.Context) (any, error) {
		return h.events.GetEvents(ctx)
	})
}

// Bookings handles GET /api/admin/bookings/stream (admin only)
func (h *StreamHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, notify.TopicBookings, func(ctx context.Context) (any, error) {
		return h.bookings.GetBookings(ctx, request.BookingFilter{})
	})
}

func (h *StreamHandler) serve(w http.ResponseWriter, r *http.Request, topic notify.Topic, snapshot func(ctx context.Context) (any, error)) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	signals, unsubscribe := h.hub.Subscribe(topic)
	defer unsubscribe()

	h.log.Debug("Stream opened", zap.String("topic", string(topic)))

	if !h.push(r.Context(), w, flusher, snapshot) {
		return
	}

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.log.Debug("Stream closed", zap.String("topic", string(topic)))
			return

		case <-signals:
			if !h.push(r.Context(), w, flusher, snapshot) {
				return
			}

		case <-keepAlive.C:
			// comment line keeps proxies from closing the idle connection
			if _, err := w.Write([]byte(": keep-alive\n\n")); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *StreamHandler) push(ctx context.Context, w http.ResponseWriter, flusher http.Flusher, snapshot func(ctx context.Context) (any, error)) bool {
	data, err := snapshot(ctx)
	if err != nil {
		h.log.Warn("Failed to load stream snapshot", zap.Error(err))
		return true
	}

	payload, err := json.Marshal(data)
	if err != nil {
		h.log.Error("Failed to encode stream snapshot", zap.Error(err))
		return true
	}

	if _, err := w.Write([]byte("data: ")); err != nil {
		return false
	}
	if _, err := w.Write(payload); err != nil {
		return false
	}
	if _, err := w.Write([]byte("\n\n")); err != nil {
		return false
	}

	flusher.Flush()
	return true
}
