package realtime

import (
	"context"

	"go.uber.org/zap"

	"github.com/handykonnect/handykonnect-api/internal/events"
)

// Bridge pipes the Redis change stream into the hub. It owns exactly one
// subscription; closing the context releases it.
type Bridge struct {
	subscriber *events.Subscriber
	hub        *Hub
	log        *zap.Logger
}

func NewBridge(sub *events.Subscriber, hub *Hub, log *zap.Logger) *Bridge {
	return &Bridge{
		subscriber: sub,
		hub:        hub,
		log:        log,
	}
}

func (b *Bridge) Run(ctx context.Context) error {
	sub, err := b.subscriber.Subscribe(ctx,
		events.TableBookings,
		events.TablePayments,
		events.TableMessages,
	)
	if err != nil {
		return err
	}
	defer func() { _ = sub.Close() }()

	b.log.Info("realtime bridge started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case change, ok := <-sub.C:
			if !ok {
				return nil
			}
			b.hub.Notify(change)
		}
	}
}
