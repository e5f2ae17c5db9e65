package usecase

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReportTestSetup(t *testing.T) (ReportService, BookingService, *fakeEventRepo) {
	t.Helper()

	events := newFakeEventRepo()
	bookings := newFakeBookingRepo(events)
	repo := &repository.Repository{
		Event:   events,
		Booking: bookings,
		Admin:   newFakeAdminRepo(),
		Session: newFakeSessionRepo(),
	}

	bookingSrv := newBookingTestService(events, bookings)
	return NewReportService(repo, zap.NewNop()), bookingSrv, events
}

func TestGetStatsRevenueExcludesCancelled(t *testing.T) {
	reports, bookings, events := newReportTestSetup(t)

	event := newTestEvent(50)
	require.NoError(t, events.Create(context.Background(), event))

	first, err := bookings.Reserve(context.Background(), validReserveRequest(event.ID))
	require.NoError(t, err)

	second := validReserveRequest(event.ID)
	second.SeatNumber = 43
	_, err = bookings.Reserve(context.Background(), second)
	require.NoError(t, err)

	require.NoError(t, bookings.Cancel(context.Background(), first.ID))

	stats, err := reports.GetStats(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 1, stats.Cancelled)
	assert.Equal(t, 50.0, stats.CancelledPercent)
	// Only the surviving booking counts toward revenue.
	assert.Equal(t, 50.0, stats.Revenue)
}

func TestGetStatsEmpty(t *testing.T) {
	reports, _, _ := newReportTestSetup(t)

	stats, err := reports.GetStats(context.Background(), "")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalBookings)
	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.CancelledPercent)
}

func TestGetStatsPerEvent(t *testing.T) {
	reports, bookings, events := newReportTestSetup(t)

	first := newTestEvent(10)
	second := newTestEvent(20)
	require.NoError(t, events.Create(context.Background(), first))
	require.NoError(t, events.Create(context.Background(), second))

	_, err := bookings.Reserve(context.Background(), validReserveRequest(first.ID))
	require.NoError(t, err)
	_, err = bookings.Reserve(context.Background(), validReserveRequest(second.ID))
	require.NoError(t, err)

	stats, err := reports.GetStats(context.Background(), second.ID.String())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalBookings)
	assert.Equal(t, 20.0, stats.Revenue)
}

func TestGetStatsOccupancy(t *testing.T) {
	reports, bookings, events := newReportTestSetup(t)

	first := newTestEvent(10)
	second := newTestEvent(20)
	require.NoError(t, events.Create(context.Background(), first))
	require.NoError(t, events.Create(context.Background(), second))

	booked, err := bookings.Reserve(context.Background(), validReserveRequest(first.ID))
	require.NoError(t, err)

	next := validReserveRequest(first.ID)
	next.SeatNumber = 43
	_, err = bookings.Reserve(context.Background(), next)
	require.NoError(t, err)

	// Event-scoped: 2 confirmed of 100 seats.
	stats, err := reports.GetStats(context.Background(), first.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2.0, stats.OccupancyPercent)

	// Global: 2 confirmed of 200 seats across both events.
	stats, err = reports.GetStats(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 1.0, stats.OccupancyPercent)

	// Cancelled bookings do not occupy seats.
	require.NoError(t, bookings.Cancel(context.Background(), booked.ID))
	stats, err = reports.GetStats(context.Background(), first.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1.0, stats.OccupancyPercent)
}

func TestExportCSV(t *testing.T) {
	reports, bookings, events := newReportTestSetup(t)

	event := newTestEvent(15)
	event.Name = "Open Mic"
	require.NoError(t, events.Create(context.Background(), event))

	created, err := bookings.Reserve(context.Background(), validReserveRequest(event.ID))
	require.NoError(t, err)

	data, err := reports.ExportCSV(context.Background(), request.BookingFilter{})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	assert.Equal(t, []string{"Booking ID", "Event", "Seat", "Full Name", "Email", "Phone", "Price", "Status", "Created At"}, header)

	row := records[1]
	assert.Equal(t, created.ID, row[0])
	assert.Equal(t, "Open Mic", row[1])
	assert.Equal(t, "42", row[2])
	assert.Equal(t, "Ada Lovelace", row[3])
	assert.Equal(t, "15.00", row[6])
	assert.Equal(t, "confirmed", row[7])
}

func TestExportCSVInvalidEventID(t *testing.T) {
	reports, _, _ := newReportTestSetup(t)

	_, err := reports.ExportCSV(context.Background(), request.BookingFilter{EventID: "broken"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestExportCSVInvalidStatus(t *testing.T) {
	reports, _, _ := newReportTestSetup(t)

	_, err := reports.ExportCSV(context.Background(), request.BookingFilter{Status: "bogus"})
	assert.ErrorIs(t, err, ErrValidation)
}
