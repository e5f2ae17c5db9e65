package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seat-reservation/internal/data/cache"
	"seat-reservation/internal/data/entity"
	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/dto/response"
	"seat-reservation/internal/notify"
	"seat-reservation/internal/queue"
	"seat-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QueuePublisher publishes booking lifecycle events. A nil value disables
// publishing.
type QueuePublisher interface {
	PublishBookingConfirmed(ctx context.Context, event queue.BookingConfirmedEvent) error
	PublishBookingCancelled(ctx context.Context, event queue.BookingCancelledEvent) error
}

// BookingService owns the seat-reservation invariant: for a given event at
// most one confirmed booking may exist per seat number. Reserve is the only
// way a booking comes into existence, and the check-then-insert it performs
// runs inside one store transaction so concurrent callers cannot both pass
// the availability check.
type BookingService interface {
	Reserve(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	GetBookings(ctx context.Context, filter request.BookingFilter) ([]response.BookingResponse, error)
	GetSeatMap(ctx context.Context, eventID string) (*response.SeatMapResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo  *repository.Repository
	seats *cache.SeatCache
	feed  notify.Notifier
	queue QueuePublisher
	log   *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	seats *cache.SeatCache,
	feed notify.Notifier,
	queuePub QueuePublisher,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:  repo,
		seats: seats,
		feed:  feed,
		queue: queuePub,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) Reserve(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Reject bad input locally; nothing reaches the store on failure.
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id %s", ErrValidation, req.EventID)
	}

	event, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event %s: %w", req.EventID, err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", req.EventID, repository.ErrNotFound)
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID: uuid.New(),
		},
		EventID:    eventID,
		SeatNumber: req.SeatNumber,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Price:      event.Price,
	}

	// The repository runs the atomic check-then-insert; the first
	// transaction to commit wins the seat.
	if err := s.repo.Booking.ReserveSeat(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			s.log.Info("Seat conflict",
				zap.String("event_id", req.EventID),
				zap.Int("seat_number", req.SeatNumber),
			)
		}
		return nil, err
	}

	s.seats.Invalidate(ctx, eventID)
	s.feed.Notify(ctx, notify.TopicBookings)
	s.publishConfirmed(booking, event)

	s.log.Info("Booking confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("event_id", req.EventID),
		zap.Int("seat_number", req.SeatNumber),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// Cancel flips the booking to cancelled and frees its seat. The document is
// kept for audit and reporting. Cancelling an already-cancelled booking is a
// no-op success.
func (s *bookingService) Cancel(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking id %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, repository.ErrNotFound)
	}

	if booking.Status == entity.BookingStatusCancelled {
		s.log.Debug("Booking already cancelled", zap.String("booking_id", bookingID))
		return nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		return err
	}

	s.seats.Invalidate(ctx, booking.EventID)
	s.feed.Notify(ctx, notify.TopicBookings)
	s.publishCancelled(booking)

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("event_id", booking.EventID.String()),
		zap.Int("seat_number", booking.SeatNumber),
	)

	return nil
}

func (s *bookingService) GetBookings(ctx context.Context, filter request.BookingFilter) ([]response.BookingResponse, error) {
	if errs := utils.ValidateStruct(filter); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	repoFilter := repository.BookingFilter{Status: filter.StatusValue()}
	if filter.EventID != "" {
		eventID, err := uuid.Parse(filter.EventID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid event id %s", ErrValidation, filter.EventID)
		}
		repoFilter.EventID = &eventID
	}

	bookings, err := s.repo.Booking.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	return responses, nil
}

// GetSeatMap serves the occupied-seat view for the booking page. The Redis
// copy is eventually consistent; Reserve never consults it.
func (s *bookingService) GetSeatMap(ctx context.Context, eventID string) (*response.SeatMapResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id %s", ErrValidation, eventID)
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load event %s: %w", eventID, err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", eventID, repository.ErrNotFound)
	}

	occupied, ok := s.seats.GetOccupied(ctx, id)
	if !ok {
		occupied, err = s.repo.Booking.OccupiedSeats(ctx, id)
		if err != nil {
			return nil, err
		}
		s.seats.SetOccupied(ctx, id, occupied)
	}

	if occupied == nil {
		occupied = []int{}
	}

	return &response.SeatMapResponse{
		EventID:       eventID,
		Capacity:      entity.SeatCapacity,
		OccupiedSeats: occupied,
		Available:     entity.SeatCapacity - len(occupied),
	}, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking id %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, repository.ErrNotFound)
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		return err
	}

	s.seats.Invalidate(ctx, booking.EventID)
	s.feed.Notify(ctx, notify.TopicBookings)

	return nil
}

// ==================== QUEUE EVENTS ====================

func (s *bookingService) publishConfirmed(booking *entity.Booking, event *entity.Event) {
	if s.queue == nil {
		return
	}

	msg := queue.BookingConfirmedEvent{
		BookingID:  booking.ID.String(),
		EventID:    booking.EventID.String(),
		EventName:  event.Name,
		SeatNumber: booking.SeatNumber,
		FullName:   booking.FullName,
		Email:      booking.Email,
		Price:      booking.Price,
		BookedAt:   booking.CreatedAt.UTC().Format(time.RFC3339),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.queue.PublishBookingConfirmed(ctx, msg); err != nil {
			s.log.Warn("Failed to publish booking confirmed event", zap.Error(err))
		}
	}()
}

func (s *bookingService) publishCancelled(booking *entity.Booking) {
	if s.queue == nil {
		return
	}

	msg := queue.BookingCancelledEvent{
		BookingID:   booking.ID.String(),
		EventID:     booking.EventID.String(),
		SeatNumber:  booking.SeatNumber,
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.queue.PublishBookingCancelled(ctx, msg); err != nil {
			s.log.Warn("Failed to publish booking cancelled event", zap.Error(err))
		}
	}()
}
