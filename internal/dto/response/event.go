package response

import (
	"time"

	"seat-reservation/internal/data/entity"
)

type EventResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Price     float64   `json:"price"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type SeatMapResponse struct {
	EventID       string `json:"event_id"`
	Capacity      int    `json:"capacity"`
	OccupiedSeats []int  `json:"occupied_seats"`
	Available     int    `json:"available"`
}

func EventToResponse(event *entity.Event) EventResponse {
	return EventResponse{
		ID:        event.ID.String(),
		Name:      event.Name,
		Date:      event.Date,
		Price:     event.Price,
		Capacity:  entity.SeatCapacity,
		CreatedAt: event.CreatedAt,
	}
}
