package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisBridge relays change signals through Redis pub/sub so snapshot
// streams stay current when more than one instance serves traffic. Local
// writes are published to Redis; the listener forwards every received
// message (including our own) into the hub.
type RedisBridge struct {
	hub *Hub
	rdb *redis.Client
	log *zap.Logger
}

// NewRedisBridge wires the hub to Redis and starts the listener. With a nil
// client the bridge degrades to direct in-process delivery.
func NewRedisBridge(ctx context.Context, hub *Hub, rdb *redis.Client, log *zap.Logger) *RedisBridge {
	b := &RedisBridge{
		hub: hub,
		rdb: rdb,
		log: log.With(zap.String("component", "notify_bridge")),
	}

	if rdb != nil {
		go b.listen(ctx)
	}

	return b
}

func (b *RedisBridge) Notify(ctx context.Context, topic Topic) {
	if b.rdb == nil {
		b.hub.Notify(ctx, topic)
		return
	}

	if err := b.rdb.Publish(ctx, string(topic), "1").Err(); err != nil {
		b.log.Warn("Change signal publish failed, delivering locally",
			zap.Error(err),
			zap.String("topic", string(topic)),
		)
		b.hub.Notify(ctx, topic)
	}
}

func (b *RedisBridge) listen(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, string(TopicEvents), string(TopicBookings))
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			b.hub.Notify(ctx, Topic(msg.Channel))
		}
	}
}
