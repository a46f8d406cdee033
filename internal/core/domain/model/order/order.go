package order

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")
)

// Order is a purchase request linking one client and one restaurant.
//
// Order follows these invariants:
//   - Items are a non-empty snapshot taken at creation
//   - Total equals ComputeTotal(items) at creation and is never recomputed
//   - completedAt is set if and only if status is COMPLETED, and never changes once set
//   - Status moves only along Status.AllowedNextStatuses
type Order struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	clientID     kernel.UUID
	status       Status
	items        []Item
	total        decimal.Decimal
	createdAt    time.Time
	completedAt  *time.Time

	events []Event

	isConstructed bool
}

// NewOrder opens an order with the given initial status.
// The total is computed from items; an order opened as COMPLETED is stamped with now.
//
// Example:
//
//	salad, _ := order.NewItem(1, decimal.NewFromInt(10), "Salad")
//	o, err := order.NewOrder(kernel.NewUUID(), restaurantID, clientID, order.Pending, []order.Item{salad}, time.Now())
//	o.Total()       // 10
//	o.CompletedAt() // nil
func NewOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	clientID kernel.UUID,
	status Status,
	items []Item,
	now time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     stamp(now),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setClientID(clientID),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.total = ComputeTotal(order.items)
	if status == Completed {
		completedAt := order.createdAt
		order.completedAt = &completedAt
	}

	order.record(EventCreated, Unknown, now)
	return order, nil
}

// RestoreOrder rebuilds an order from persistence. The stored total is trusted,
// the completedAt invariant is checked.
func RestoreOrder(
	id kernel.UUID,
	restaurantID kernel.UUID,
	clientID kernel.UUID,
	status Status,
	items []Item,
	total decimal.Decimal,
	createdAt time.Time,
	completedAt *time.Time,
) (*Order, error) {
	order := &Order{
		total:         total,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurantID(restaurantID),
		order.setClientID(clientID),
		order.setStatus(status),
		order.setItems(items),
		order.setCompletedAt(status, completedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was built through one of its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the item snapshot.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() decimal.Decimal {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns nil until the order reaches COMPLETED.
func (o *Order) CompletedAt() *time.Time {
	if o.completedAt == nil {
		return nil
	}
	completedAt := *o.completedAt
	return &completedAt
}

func (o *Order) AllowedNextStatuses() []Status {
	return o.status.AllowedNextStatuses()
}

// ChangeStatus moves the order to next.
//
// Business rules:
//   - next must be in AllowedNextStatuses, otherwise an InvalidTransitionError is
//     returned and the order is left untouched
//   - requesting the current status is a no-op
//   - the first move into COMPLETED stamps completedAt with now
//
// Items and total are never touched.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}

	if next == o.status {
		return nil
	}

	previous := o.status
	o.status = next
	if next == Completed && o.completedAt == nil {
		completedAt := stamp(now)
		o.completedAt = &completedAt
	}

	o.record(EventStatusChanged, previous, now)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) record(eventType EventType, previous Status, now time.Time) {
	o.events = append(o.events, Event{
		ID:             kernel.NewUUID(),
		Type:           eventType,
		OrderID:        o.id,
		RestaurantID:   o.restaurantID,
		ClientID:       o.clientID,
		PreviousStatus: previous,
		Status:         o.status,
		Total:          o.total,
		OccurredAt:     stamp(now),
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	o.clientID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("item %d", i), err)
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setCompletedAt(status Status, completedAt *time.Time) error {
	if (status == Completed) != (completedAt != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"completed at",
			fmt.Errorf("completion time must be set only for %s orders", Completed),
		)
	}
	if completedAt != nil {
		t := *completedAt
		o.completedAt = &t
	}
	return nil
}

// stamp normalises timestamps to the precision postgres keeps.
func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
