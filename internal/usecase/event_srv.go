package usecase

import (
	"context"
	"fmt"
	"time"

	"seat-reservation/internal/data/cache"
	"seat-reservation/internal/data/entity"
	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/dto/response"
	"seat-reservation/internal/notify"
	"seat-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	GetEvents(ctx context.Context) ([]response.EventResponse, error)
	GetEventByID(ctx context.Context, eventID string) (*response.EventResponse, error)
	CreateEvent(ctx context.Context, req *request.EventRequest) (*response.EventResponse, error)
	UpdateEvent(ctx context.Context, eventID string, req *request.EventUpdateRequest) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type eventService struct {
	repo  *repository.Repository
	seats *cache.SeatCache
	feed  notify.Notifier
	log   *zap.Logger
}

func NewEventService(
	repo *repository.Repository,
	seats *cache.SeatCache,
	feed notify.Notifier,
	log *zap.Logger,
) EventService {
	return &eventService{
		repo:  repo,
		seats: seats,
		feed:  feed,
		log:   log.With(zap.String("service", "event")),
	}
}

func (s *eventService) GetEvents(ctx context.Context) ([]response.EventResponse, error) {
	events, err := s.repo.Event.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]response.EventResponse, len(events))
	for i, event := range events {
		responses[i] = response.EventToResponse(event)
	}

	return responses, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*response.EventResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id %s", ErrValidation, eventID)
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", eventID, repository.ErrNotFound)
	}

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) CreateEvent(ctx context.Context, req *request.EventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %s", ErrValidation, req.Date)
	}

	event := &entity.Event{
		Base: entity.Base{
			ID: uuid.New(),
		},
		Name:  req.Name,
		Date:  date,
		Price: req.Price,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		return nil, err
	}

	s.feed.Notify(ctx, notify.TopicEvents)

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("name", event.Name),
	)

	resp := response.EventToResponse(event)
	return &resp, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req *request.EventUpdateRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid event id %s", ErrValidation, eventID)
	}

	event, err := s.repo.Event.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", eventID, repository.ErrNotFound)
	}

	// Only name, date and price are editable.
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Date != nil {
		date, err := parseEventDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %s", ErrValidation, *req.Date)
		}
		event.Date = date
	}
	if req.Price != nil {
		event.Price = *req.Price
	}

	if err := s.repo.Event.Update(ctx, event); err != nil {
		return nil, err
	}

	s.feed.Notify(ctx, notify.TopicEvents)

	s.log.Info("Event updated", zap.String("event_id", eventID))

	resp := response.EventToResponse(event)
	return &resp, nil
}

// DeleteEvent removes the event together with all of its bookings.
func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return fmt.Errorf("%w: invalid event id %s", ErrValidation, eventID)
	}

	if err := s.repo.Event.Delete(ctx, id); err != nil {
		return err
	}

	s.seats.Invalidate(ctx, id)
	s.feed.Notify(ctx, notify.TopicEvents)
	s.feed.Notify(ctx, notify.TopicBookings)

	s.log.Info("Event deleted", zap.String("event_id", eventID))
	return nil
}

// parseEventDate accepts RFC 3339 and the HTML datetime-local form the
// booking page submits.
func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", value)
}
