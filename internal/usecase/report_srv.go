package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"seat-reservation/internal/data/entity"
	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/dto/response"
	"seat-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService serves the admin records view: booking statistics and the
// CSV export. Revenue counts confirmed bookings only.
type ReportService interface {
	GetStats(ctx context.Context, eventID string) (*response.StatsResponse, error)
	ExportCSV(ctx context.Context, filter request.BookingFilter) ([]byte, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) GetStats(ctx context.Context, eventID string) (*response.StatsResponse, error) {
	filter := repository.BookingFilter{}
	if eventID != "" {
		id, err := uuid.Parse(eventID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid event id %s", ErrValidation, eventID)
		}
		filter.EventID = &id
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &response.StatsResponse{TotalBookings: len(bookings)}
	for _, booking := range bookings {
		switch booking.Status {
		case entity.BookingStatusConfirmed:
			stats.Confirmed++
			stats.Revenue += booking.Price
		case entity.BookingStatusCancelled:
			stats.Cancelled++
		}
	}

	if stats.TotalBookings > 0 {
		stats.CancelledPercent = float64(stats.Cancelled) / float64(stats.TotalBookings) * 100
	}

	totalSeats := entity.SeatCapacity
	if filter.EventID == nil {
		events, err := s.repo.Event.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		totalSeats = entity.SeatCapacity * len(events)
	}
	if totalSeats > 0 {
		stats.OccupancyPercent = float64(stats.Confirmed) / float64(totalSeats) * 100
	}

	return stats, nil
}

func (s *reportService) ExportCSV(ctx context.Context, filter request.BookingFilter) ([]byte, error) {
	if errs := utils.ValidateStruct(filter); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	repoFilter := repository.BookingFilter{Status: filter.StatusValue()}
	if filter.EventID != "" {
		id, err := uuid.Parse(filter.EventID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid event id %s", ErrValidation, filter.EventID)
		}
		repoFilter.EventID = &id
	}

	bookings, err := s.repo.Booking.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.Event.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	eventNames := make(map[uuid.UUID]string, len(events))
	for _, event := range events {
		eventNames[event.ID] = event.Name
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Booking ID", "Event", "Seat", "Full Name", "Email", "Phone", "Price", "Status", "Created At"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, booking := range bookings {
		record := []string{
			booking.ID.String(),
			eventNames[booking.EventID],
			strconv.Itoa(booking.SeatNumber),
			booking.FullName,
			booking.Email,
			booking.Phone,
			strconv.FormatFloat(booking.Price, 'f', 2, 64),
			string(booking.Status),
			booking.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	s.log.Info("Bookings exported", zap.Int("count", len(bookings)))
	return buf.Bytes(), nil
}
