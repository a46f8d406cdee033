package services

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderLifecycle is a stateless domain service deciding legal status transitions,
// computing totals and stamping completion times.
//
// Key responsibilities:
//   - Opening orders with a computed total and creation time
//   - Exposing the allowed next statuses as the single source for validation and option lists
//   - Applying status changes, stamping completedAt on the first move into COMPLETED
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle(nil)
//	o, err := lifecycle.Open(kernel.NewUUID(), restaurantID, clientID, order.Pending, items)
//	if err != nil {
//	    // invalid order data
//	}
//	err = lifecycle.ApplyStatusChange(o, order.Completed)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // rejected, o is unchanged
//	}
type OrderLifecycle struct {
	now func() time.Time
}

// NewOrderLifecycle returns a lifecycle using clock as the time source.
// A nil clock means time.Now.
func NewOrderLifecycle(clock func() time.Time) OrderLifecycle {
	if clock == nil {
		clock = time.Now
	}
	return OrderLifecycle{now: clock}
}

func (l OrderLifecycle) ComputeTotal(items []order.Item) decimal.Decimal {
	return order.ComputeTotal(items)
}

func (l OrderLifecycle) AllowedNextStatuses(current order.Status) []order.Status {
	return current.AllowedNextStatuses()
}

// Open creates a new order. An Unknown status defaults to PENDING.
func (l OrderLifecycle) Open(
	id kernel.UUID,
	restaurantID kernel.UUID,
	clientID kernel.UUID,
	status order.Status,
	items []order.Item,
) (*order.Order, error) {
	if status == order.Unknown {
		status = order.Pending
	}
	return order.NewOrder(id, restaurantID, clientID, status, items, l.clock())
}

// ApplyStatusChange validates and applies next. The order is not modified on error.
func (l OrderLifecycle) ApplyStatusChange(o *order.Order, next order.Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.ChangeStatus(next, l.clock())
}

func (l OrderLifecycle) clock() time.Time {
	if l.now == nil {
		return time.Now()
	}
	return l.now()
}
