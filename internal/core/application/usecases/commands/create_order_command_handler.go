package commands

import (
	"context"

	"orderdesk/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Business rules:
//   - The referenced client and restaurant must exist, otherwise ObjectNotFoundError
//   - The total is computed from the items once, when the order is opened
//   - An order created as COMPLETED is stamped with its creation time
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewOrderLifecycle(nil))
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning clients, restaurants and orders.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, lifecycle services.OrderLifecycle) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

// Handle opens the order and persists it in one transaction with the existence checks.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	newOrder, err := h.lifecycle.Open(cmd.OrderID(), cmd.RestaurantID(), cmd.ClientID(), cmd.Status(), cmd.Items())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
