// Package repository implements PostgreSQL persistence for events, bookings,
// admins and sessions. Sentinel errors declared here let higher layers
// distinguish failure classes without string matching: handlers translate
// ErrSeatTaken into HTTP 409 and ErrNotFound into HTTP 404.
package repository

import "errors"

// ErrSeatTaken is returned when a reserve transaction finds (or races into)
// an existing confirmed booking for the same event and seat.
var ErrSeatTaken = errors.New("seat already booked")

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")
