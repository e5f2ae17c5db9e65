package request

type EventRequest struct {
	Name string `json:"name" validate:"required,min=2,max=200"`
	// Accepts RFC 3339 or the datetime-local form "2006-01-02T15:04".
	Date  string  `json:"date" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

type EventUpdateRequest struct {
	Name  *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Date  *string  `json:"date,omitempty"`
	Price *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}
