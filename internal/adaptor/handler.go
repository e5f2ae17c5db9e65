package adaptor

import (
	"errors"
	"net/http"

	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/usecase"
	"seat-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Event   *EventHandler
	Booking *BookingHandler
	Report  *ReportHandler
	Stream  *StreamHandler
}

func NewHandler(service *usecase.Service, stream *StreamHandler, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Event:   NewEventHandler(service.Event, log),
		Booking: NewBookingHandler(service.Booking, log),
		Report:  NewReportHandler(service.Report, log),
		Stream:  stream,
	}
}

// writeServiceError maps the service error taxonomy onto HTTP responses.
// Seat conflicts are an expected race outcome, not a server fault.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, repository.ErrSeatTaken):
		log.Info(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, repository.ErrNotFound):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
