package entity

import "time"

// SeatCapacity is the fixed number of seats every event offers. Seats are
// numbered 1 through SeatCapacity.
const SeatCapacity = 100

type Event struct {
	Base
	Name  string    `db:"name"`
	Date  time.Time `db:"date"`
	Price float64   `db:"price"`
}
