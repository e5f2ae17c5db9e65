package request

import "seat-reservation/internal/data/entity"

type CreateBookingRequest struct {
	EventID    string `json:"event_id" validate:"required,uuid4"`
	SeatNumber int    `json:"seat_number" validate:"required,min=1,max=100"`
	FullName   string `json:"full_name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,phone"`
}

type BookingFilter struct {
	EventID string `json:"event_id"`
	Status  string `json:"status" validate:"omitempty,oneof=confirmed cancelled"`
}

func (f BookingFilter) StatusValue() *entity.BookingStatus {
	if f.Status == "" {
		return nil
	}
	status := entity.BookingStatus(f.Status)
	return &status
}
