// Package queue publishes booking lifecycle events to RabbitMQ for
// downstream consumers (notifications, analytics). Publishing is best
// effort: failures are logged and never fail the originating request.
package queue

type BookingConfirmedEvent struct {
	BookingID  string  `json:"booking_id"`
	EventID    string  `json:"event_id"`
	EventName  string  `json:"event_name"`
	SeatNumber int     `json:"seat_number"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Price      float64 `json:"price"`
	BookedAt   string  `json:"booked_at"`
}

type BookingCancelledEvent struct {
	BookingID   string `json:"booking_id"`
	EventID     string `json:"event_id"`
	SeatNumber  int    `json:"seat_number"`
	CancelledAt string `json:"cancelled_at"`
}
