package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a customer's claim on one seat of one event. A booking is
// never seat-reassigned; the only mutation is flipping status to cancelled.
// Cancelled bookings are kept for audit and reporting.
type Booking struct {
	Base
	EventID    uuid.UUID     `db:"event_id"`
	SeatNumber int           `db:"seat_number"`
	FullName   string        `db:"full_name"`
	Email      string        `db:"email"`
	Phone      string        `db:"phone"`
	Price      float64       `db:"price"`
	Status     BookingStatus `db:"status"`
}
