package order

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventCreated       EventType = "order.created"
	EventStatusChanged EventType = "order.status_changed"
)

// Event is recorded by the aggregate and published once the transaction
// that produced it has committed.
type Event struct {
	ID             kernel.UUID
	Type           EventType
	OrderID        kernel.UUID
	RestaurantID   kernel.UUID
	ClientID       kernel.UUID
	PreviousStatus Status
	Status         Status
	Total          decimal.Decimal
	OccurredAt     time.Time
}
