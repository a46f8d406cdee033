package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/order"
)

// EventPublisher delivers order events to a message broker.
// It is only called after the transaction that produced the events has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
