// Package cache keeps a short-lived Redis copy of each event's occupied
// seats. The cache serves seat-map reads only; it is never consulted by the
// reserve transaction, which always checks the database.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const seatKeyPrefix = "seats:"

type SeatCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewSeatCache wraps the Redis client. A nil client is allowed and turns
// every lookup into a miss.
func NewSeatCache(rdb *redis.Client, log *zap.Logger) *SeatCache {
	return &SeatCache{
		rdb: rdb,
		ttl: 30 * time.Second,
		log: log.With(zap.String("cache", "seats")),
	}
}

func (c *SeatCache) GetOccupied(ctx context.Context, eventID uuid.UUID) ([]int, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, seatKeyPrefix+eventID.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Seat cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var seats []int
	if err := json.Unmarshal(raw, &seats); err != nil {
		c.log.Warn("Seat cache entry malformed", zap.Error(err))
		return nil, false
	}

	return seats, true
}

func (c *SeatCache) SetOccupied(ctx context.Context, eventID uuid.UUID, seats []int) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(seats)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, seatKeyPrefix+eventID.String(), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Seat cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached seat list after a booking write so the next
// seat-map read reloads from the database.
func (c *SeatCache) Invalidate(ctx context.Context, eventID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, seatKeyPrefix+eventID.String()).Err(); err != nil {
		c.log.Warn("Seat cache invalidation failed", zap.Error(err))
	}
}
