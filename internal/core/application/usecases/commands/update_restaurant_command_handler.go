package commands

import (
	"context"
)

type UpdateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewUpdateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) UpdateRestaurantCommandHandler {
	return UpdateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateRestaurantCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()
	restaurantEntity, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = restaurantEntity.Update(cmd.Name(), cmd.Address(), cmd.Phone()); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, restaurantEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
