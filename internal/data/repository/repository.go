package repository

import (
	"seat-reservation/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Event   EventRepository
	Booking BookingRepository
	Admin   AdminRepository
	Session SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Event:   NewEventRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Admin:   NewAdminRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
