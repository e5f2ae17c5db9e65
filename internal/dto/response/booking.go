package response

import (
	"time"

	"seat-reservation/internal/data/entity"
)

type BookingResponse struct {
	ID         string               `json:"id"`
	EventID    string               `json:"event_id"`
	SeatNumber int                  `json:"seat_number"`
	FullName   string               `json:"full_name"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone"`
	Price      float64              `json:"price"`
	Status     entity.BookingStatus `json:"status"`
	CreatedAt  time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:         booking.ID.String(),
		EventID:    booking.EventID.String(),
		SeatNumber: booking.SeatNumber,
		FullName:   booking.FullName,
		Email:      booking.Email,
		Phone:      booking.Phone,
		Price:      booking.Price,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}
}
