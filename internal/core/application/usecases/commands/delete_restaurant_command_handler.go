package commands

import (
	"context"
)

// DeleteRestaurantCommandHandler cascades a restaurant deletion.
//
// Business rules:
//   - Orders referencing the restaurant are deleted first, in the same transaction
//   - An unknown restaurant id rolls the whole operation back with ObjectNotFoundError
type DeleteRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewDeleteRestaurantCommandHandler(uowFactory RestaurantUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) error {
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

	if _, err := uow.OrderRepository().DeleteByRestaurant(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	if err := uow.RestaurantRepository().Delete(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
