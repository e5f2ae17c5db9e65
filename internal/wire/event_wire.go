package wire

import (
	"seat-reservation/internal/adaptor"
	"seat-reservation/internal/data/repository"
	"seat-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(
	r chi.Router,
	eventHandler *adaptor.EventHandler,
	streamHandler *adaptor.StreamHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/events - List all events for the booking page
	r.Get("/api/events", eventHandler.GetEvents)

	// GET /api/events/stream - Live event list over SSE
	r.Get("/api/events/stream", streamHandler.Events)

	// GET /api/events/{id} - Event details
	r.Get("/api/events/{id}", eventHandler.GetEventByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/admin/events - Create event
		r.Post("/api/admin/events", eventHandler.CreateEvent)

		// PUT /api/admin/events/{id} - Update event
		r.Put("/api/admin/events/{id}", eventHandler.UpdateEvent)

		// DELETE /api/admin/events/{id} - Delete event and its bookings
		r.Delete("/api/admin/events/{id}", eventHandler.DeleteEvent)
	})
}
