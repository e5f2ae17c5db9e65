package usecase

import (
	"context"
	"testing"
	"time"

	"seat-reservation/internal/data/entity"
	"seat-reservation/internal/data/repository"
	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newEventTestService(events *fakeEventRepo) (EventService, *notify.Hub) {
	repo := &repository.Repository{
		Event:   events,
		Booking: newFakeBookingRepo(events),
		Admin:   newFakeAdminRepo(),
		Session: newFakeSessionRepo(),
	}
	hub := notify.NewHub(zap.NewNop())
	return NewEventService(repo, nil, hub, zap.NewNop()), hub
}

func TestCreateEvent(t *testing.T) {
	events := newFakeEventRepo()
	srv, hub := newEventTestService(events)

	signals, unsubscribe := hub.Subscribe(notify.TopicEvents)
	defer unsubscribe()

	resp, err := srv.CreateEvent(context.Background(), &request.EventRequest{
		Name:  "Jazz Evening",
		Date:  "2026-10-01T19:30:00Z",
		Price: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jazz Evening", resp.Name)
	assert.Equal(t, 45.0, resp.Price)
	assert.Equal(t, entity.SeatCapacity, resp.Capacity)
	assert.Equal(t, time.Date(2026, 10, 1, 19, 30, 0, 0, time.UTC), resp.Date)

	select {
	case <-signals:
	case <-time.After(time.Second):
		t.Fatal("expected an event change signal")
	}
}

func TestCreateEventAcceptsDatetimeLocal(t *testing.T) {
	events := newFakeEventRepo()
	srv, _ := newEventTestService(events)

	resp, err := srv.CreateEvent(context.Background(), &request.EventRequest{
		Name:  "Matinee",
		Date:  "2026-10-01T14:00",
		Price: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 14, resp.Date.Hour())
}

func TestCreateEventValidation(t *testing.T) {
	events := newFakeEventRepo()
	srv, _ := newEventTestService(events)

	tests := []struct {
		name string
		req  request.EventRequest
	}{
		{"missing name", request.EventRequest{Date: "2026-10-01T19:30:00Z", Price: 10}},
		{"zero price", request.EventRequest{Name: "Show", Date: "2026-10-01T19:30:00Z"}},
		{"negative price", request.EventRequest{Name: "Show", Date: "2026-10-01T19:30:00Z", Price: -5}},
		{"unparseable date", request.EventRequest{Name: "Show", Date: "next friday", Price: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := srv.CreateEvent(context.Background(), &req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdateEventPartial(t *testing.T) {
	event := newTestEvent(30)
	events := newFakeEventRepo(event)
	srv, _ := newEventTestService(events)

	newPrice := 35.0
	resp, err := srv.UpdateEvent(context.Background(), event.ID.String(), &request.EventUpdateRequest{
		Price: &newPrice,
	})
	require.NoError(t, err)

	// Untouched fields keep their values.
	assert.Equal(t, event.Name, resp.Name)
	assert.Equal(t, 35.0, resp.Price)
}

func TestUpdateEventUnknown(t *testing.T) {
	events := newFakeEventRepo()
	srv, _ := newEventTestService(events)

	name := "Renamed"
	_, err := srv.UpdateEvent(context.Background(), uuid.New().String(), &request.EventUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteEventSignalsBothFeeds(t *testing.T) {
	event := newTestEvent(30)
	events := newFakeEventRepo(event)
	srv, hub := newEventTestService(events)

	eventSignals, unsubEvents := hub.Subscribe(notify.TopicEvents)
	defer unsubEvents()
	bookingSignals, unsubBookings := hub.Subscribe(notify.TopicBookings)
	defer unsubBookings()

	require.NoError(t, srv.DeleteEvent(context.Background(), event.ID.String()))

	for name, ch := range map[string]<-chan struct{}{"events": eventSignals, "bookings": bookingSignals} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("expected a %s change signal", name)
		}
	}

	_, err := srv.GetEventByID(context.Background(), event.ID.String())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
