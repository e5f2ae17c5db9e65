package wire

import (
	"seat-reservation/internal/adaptor"
	"seat-reservation/internal/data/repository"
	"seat-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/admin/stats - Booking statistics, optionally per event
		r.Get("/api/admin/stats", reportHandler.GetStats)

		// GET /api/admin/bookings/export - Download bookings as CSV
		r.Get("/api/admin/bookings/export", reportHandler.ExportCSV)
	})
}
