package wire

import (
	"net/http"

	"seat-reservation/internal/adaptor"
	"seat-reservation/internal/data/cache"
	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/notify"
	"seat-reservation/internal/usecase"
	"seat-reservation/pkg/middleware"
	"seat-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	hub *notify.Hub,
	feed notify.Notifier,
	seats *cache.SeatCache,
	queuePub usecase.QueuePublisher,
	logger *zap.Logger,
) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, config, seats, feed, queuePub, logger)
	stream := adaptor.NewStreamHandler(hub, service.Event, service.Booking, logger)
	handler := adaptor.NewHandler(service, stream, logger)

	// Setup router
	router := setupRouter(handler, repo, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireEvent(r, handler.Event, handler.Stream, repo, logger)
	wireBooking(r, handler.Booking, handler.Stream, repo, logger)
	wireReport(r, handler.Report, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
