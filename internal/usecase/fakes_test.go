package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"seat-reservation/internal/data/entity"
	"seat-reservation/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. The booking fake enforces the one-confirmed-
// booking-per-seat rule under a mutex, which is the contract the real
// transaction provides.

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[uuid.UUID]*entity.Event

	findByIDCalls int
}

func newFakeEventRepo(events ...*entity.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[uuid.UUID]*entity.Event)}
	for _, event := range events {
		r.events[event.ID] = event
	}
	return r
}

func (r *fakeEventRepo) Create(_ context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findByIDCalls++
	return r.events[id], nil
}

func (r *fakeEventRepo) FindAll(_ context.Context) ([]*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]*entity.Event, 0, len(r.events))
	for _, event := range r.events {
		events = append(events, event)
	}
	return events, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return fmt.Errorf("event %s: %w", event.ID.String(), repository.ErrNotFound)
	}
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return fmt.Errorf("event %s: %w", id.String(), repository.ErrNotFound)
	}
	delete(r.events, id)
	return nil
}

type seatKey struct {
	eventID uuid.UUID
	seat    int
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking
	seats    map[seatKey]uuid.UUID

	events *fakeEventRepo

	reserveCalls int
}

func newFakeBookingRepo(events *fakeEventRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*entity.Booking),
		seats:    make(map[seatKey]uuid.UUID),
		events:   events,
	}
}

func (r *fakeBookingRepo) ReserveSeat(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reserveCalls++

	if r.events != nil {
		r.events.mu.Lock()
		_, ok := r.events.events[booking.EventID]
		r.events.mu.Unlock()
		if !ok {
			return fmt.Errorf("event %s: %w", booking.EventID.String(), repository.ErrNotFound)
		}
	}

	key := seatKey{eventID: booking.EventID, seat: booking.SeatNumber}
	if _, taken := r.seats[key]; taken {
		return fmt.Errorf("seat %d: %w", booking.SeatNumber, repository.ErrSeatTaken)
	}

	booking.Status = entity.BookingStatusConfirmed
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.bookings[booking.ID] = booking
	r.seats[key] = booking.ID
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[id], nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var bookings []*entity.Booking
	for _, booking := range r.bookings {
		if filter.EventID != nil && booking.EventID != *filter.EventID {
			continue
		}
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (r *fakeBookingRepo) OccupiedSeats(_ context.Context, eventID uuid.UUID) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var seats []int
	for key := range r.seats {
		if key.eventID == eventID {
			seats = append(seats, key.seat)
		}
	}
	return seats, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id.String(), repository.ErrNotFound)
	}
	if status == entity.BookingStatusCancelled && booking.Status == entity.BookingStatusConfirmed {
		delete(r.seats, seatKey{eventID: booking.EventID, seat: booking.SeatNumber})
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id.String(), repository.ErrNotFound)
	}
	if booking.Status == entity.BookingStatusConfirmed {
		delete(r.seats, seatKey{eventID: booking.EventID, seat: booking.SeatNumber})
	}
	delete(r.bookings, id)
	return nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[uuid.UUID]*entity.Admin
}

func newFakeAdminRepo(admins ...*entity.Admin) *fakeAdminRepo {
	r := &fakeAdminRepo{admins: make(map[uuid.UUID]*entity.Admin)}
	for _, admin := range admins {
		r.admins[admin.ID] = admin
	}
	return r
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	r.admins[admin.ID] = admin
	return nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.admins[id], nil
}

func (r *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*entity.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.admins)), nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session.CreatedAt = time.Now()
	r.sessions[session.Token.String()] = session
	return nil
}

func (r *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[token]
	if !ok || session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	return session, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[token]; ok && session.RevokedAt == nil {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}
