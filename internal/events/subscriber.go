package events

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Subscription is a live change-stream handle. Events arrive on C until
// Close is called; Close tears down the underlying pub/sub channel and is
// safe to call exactly once per subscription.
type Subscription struct {
	C <-chan Change

	ps     *redis.PubSub
	cancel context.CancelFunc
}

func (s *Subscription) Close() error {
	s.cancel()
	return s.ps.Close()
}

type Subscriber struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewSubscriber(rdb *redis.Client, log *zap.Logger) *Subscriber {
	return &Subscriber{rdb: rdb, log: log}
}

// Subscribe opens a change stream over the given tables. Delivery is
// at-most-once per received pub/sub message; consumers are expected to
// refetch current state rather than apply deltas, so redelivered or dropped
// events do not corrupt anything.
func (s *Subscriber) Subscribe(ctx context.Context, tables ...string) (*Subscription, error) {
	channels := make([]string, 0, len(tables))
	for _, t := range tables {
		channels = append(channels, channelFor(t))
	}

	ps := s.rdb.Subscribe(ctx, channels...)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan Change, 64)

	go func() {
		defer close(out)
		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var change Change
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					s.log.Warn("bad event payload", zap.String("channel", msg.Channel), zap.Error(err))
					continue
				}
				select {
				case out <- change:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return &Subscription{C: out, ps: ps, cancel: cancel}, nil
}
