package commands

import (
	"errors"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// CreateOrderCommand represents a request to place an order for a client with a restaurant.
// Encapsulates the initial status and the item snapshot; the total is derived when the
// order is opened.
//
// Example:
//
//	pizza, _ := order.NewItem(2, decimal.NewFromInt(10), "Pizza")
//	soda, _ := order.NewItem(1, decimal.NewFromInt(5), "Soda")
//	cmd, err := NewCreateOrderCommand(restaurantID, clientID, order.Pending, []order.Item{pizza, soda})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewOrderLifecycle(nil))
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	// order cmd.OrderID() now totals 25
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID
	clientID     kernel.UUID
	status       order.Status
	items        []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request. An Unknown status defaults to PENDING.
// At least one item is required and every item must have been built with order.NewItem.
func NewCreateOrderCommand(
	restaurantID kernel.UUID,
	clientID kernel.UUID,
	status order.Status,
	items []order.Item,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setClientID(clientID),
		command.setStatus(status),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the id the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Items returns a copy of the requested items.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if status == order.Unknown {
		status = order.Pending
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("item %d", i), err)
		}
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}
