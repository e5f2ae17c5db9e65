package usecase

import (
	"seat-reservation/internal/data/cache"
	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/notify"
	"seat-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Event   EventService
	Booking BookingService
	Report  ReportService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	seats *cache.SeatCache,
	feed notify.Notifier,
	queuePub QueuePublisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Event:   NewEventService(repo, seats, feed, log),
		Booking: NewBookingService(repo, seats, feed, queuePub, log),
		Report:  NewReportService(repo, log),
	}
}
