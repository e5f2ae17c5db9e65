// Package notify carries change signals from write paths to snapshot
// streams. Services announce that a collection changed; subscribers (the SSE
// handlers) reload the full collection and push it to connected clients.
package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Topic string

const (
	TopicEvents   Topic = "events.changed"
	TopicBookings Topic = "bookings.changed"
)

// Notifier is what write paths use to announce a change.
type Notifier interface {
	Notify(ctx context.Context, topic Topic)
}

// Hub fans change signals out to subscribers. Signals are coalesced: a
// subscriber that has not drained its channel yet will not queue duplicates.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[Topic]map[int]chan struct{}
	log    *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		subs: make(map[Topic]map[int]chan struct{}),
		log:  log.With(zap.String("component", "notify")),
	}
}

// Subscribe registers for change signals on a topic. The returned function
// unsubscribes; the caller owns the subscription lifecycle.
func (h *Hub) Subscribe(topic Topic) (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID

	ch := make(chan struct{}, 1)
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[int]chan struct{})
	}
	h.subs[topic][id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.subs[topic]; ok {
			delete(subs, id)
		}
	}

	return ch, unsubscribe
}

// Notify implements Notifier with an in-process fan-out.
func (h *Hub) Notify(_ context.Context, topic Topic) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
			// subscriber already has a pending signal
		}
	}
}
