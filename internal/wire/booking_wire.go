package wire

import (
	"seat-reservation/internal/adaptor"
	"seat-reservation/internal/data/repository"
	"seat-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	streamHandler *adaptor.StreamHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Reserve a seat (no account needed)
	r.Post("/api/bookings", bookingHandler.Reserve)

	// GET /api/events/{id}/seats - Occupied-seat map for the seat grid
	r.Get("/api/events/{id}/seats", bookingHandler.GetSeatMap)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/admin/bookings - List bookings, filterable by event and status
		r.Get("/api/admin/bookings", bookingHandler.GetBookings)

		// GET /api/admin/bookings/stream - Live booking list over SSE
		r.Get("/api/admin/bookings/stream", streamHandler.Bookings)

		// PUT /api/admin/bookings/{id}/cancel - Cancel a booking, freeing its seat
		r.Put("/api/admin/bookings/{id}/cancel", bookingHandler.Cancel)

		// DELETE /api/admin/bookings/{id} - Remove a booking record entirely
		r.Delete("/api/admin/bookings/{id}", bookingHandler.Delete)
	})
}
