package adaptor

import (
	"fmt"
	"net/http"
	"time"

	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/usecase"
	"seat-reservation/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetStats handles GET /api/admin/stats (admin only)
func (h *ReportHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context(), r.URL.Query().Get("event_id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// ExportCSV handles GET /api/admin/bookings/export (admin only).
// The response is a file download, not the JSON envelope.
func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := request.BookingFilter{
		EventID: query.Get("event_id"),
		Status:  query.Get("status"),
	}

	data, err := h.service.ExportCSV(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.log, err, "export bookings")
		return
	}

	filename := fmt.Sprintf("bookings-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.log.Warn("Failed to write CSV response", zap.Error(err))
	}
}
