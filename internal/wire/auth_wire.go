package wire

import (
	"seat-reservation/internal/adaptor"
	"seat-reservation/internal/data/repository"
	"seat-reservation/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/admin/login - Exchange credentials for a session token
	r.Post("/api/admin/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/admin/logout - Revoke the current session
		r.Post("/api/admin/logout", authHandler.Logout)

		// GET /api/admin/session - Describe the current session
		r.Get("/api/admin/session", authHandler.GetSession)
	})
}
