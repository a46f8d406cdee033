// Package ports defines the contracts between the order domain and infrastructure:
// repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its item snapshot and total.
	// A missing client or restaurant is reported as an ObjectNotFoundError.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus persists the status and completion time of an existing order.
	// Items and total are never written.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// DeleteByClient removes every order placed for the client and reports how many were removed.
	DeleteByClient(ctx context.Context, clientID kernel.UUID) (int64, error)

	// DeleteByRestaurant removes every order placed with the restaurant and reports how many were removed.
	DeleteByRestaurant(ctx context.Context, restaurantID kernel.UUID) (int64, error)
}
