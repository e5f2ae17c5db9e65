package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/dto/response"
	"seat-reservation/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubEventService struct {
	events []response.EventResponse
}

func (s *stubEventService) GetEvents(_ context.Context) ([]response.EventResponse, error) {
	return s.events, nil
}

func (s *stubEventService) GetEventByID(_ context.Context, _ string) (*response.EventResponse, error) {
	return nil, nil
}

func (s *stubEventService) CreateEvent(_ context.Context, _ *request.EventRequest) (*response.EventResponse, error) {
	return nil, nil
}

func (s *stubEventService) UpdateEvent(_ context.Context, _ string, _ *request.EventUpdateRequest) (*response.EventResponse, error) {
	return nil, nil
}

func (s *stubEventService) DeleteEvent(_ context.Context, _ string) error {
	return nil
}

func TestEventStreamPushesSnapshotOnConnect(t *testing.T) {
	hub := notify.NewHub(zap.NewNop())
	events := &stubEventService{events: []response.EventResponse{{Name: "Jazz Evening"}}}
	handler := NewStreamHandler(hub, events, &stubBookingService{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/events/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.Events(rec, req)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler did not exit on client disconnect")
	}

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	require.Contains(t, body, "data: ")
	assert.Contains(t, body, "Jazz Evening")
}

func TestEventStreamPushesSnapshotOnSignal(t *testing.T) {
	hub := notify.NewHub(zap.NewNop())
	events := &stubEventService{events: []response.EventResponse{{Name: "Jazz Evening"}}}
	handler := NewStreamHandler(hub, events, &stubBookingService{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/events/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.Events(rec, req)
		close(done)
	}()

	// Let the handler subscribe and write the initial snapshot first.
	time.Sleep(50 * time.Millisecond)
	hub.Notify(context.Background(), notify.TopicEvents)
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler did not exit on client disconnect")
	}

	pushes := strings.Count(rec.Body.String(), "data: ")
	assert.GreaterOrEqual(t, pushes, 2, "expected initial snapshot plus one signal-driven push")
}
