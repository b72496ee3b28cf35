package events

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisPublisher pushes change events onto per-table Redis pub/sub channels.
// The persistence write has already committed by the time Publish runs, so a
// publish failure is logged and dropped, never surfaced to the caller.
type RedisPublisher struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisPublisher(rdb *redis.Client, log *zap.Logger) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, log: log}
}

func (p *RedisPublisher) Publish(change Change) {
	payload, err := json.Marshal(change)
	if err != nil {
		p.log.Warn("event marshal failed", zap.String("table", change.Table), zap.Error(err))
		return
	}

	if err := p.rdb.Publish(context.Background(), channelFor(change.Table), payload).Err(); err != nil {
		p.log.Warn("event publish failed",
			zap.String("table", change.Table),
			zap.String("action", change.Action),
			zap.Error(err))
	}
}
