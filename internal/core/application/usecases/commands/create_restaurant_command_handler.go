package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/restaurant"
)

type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
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

	restaurantEntity, err := restaurant.NewRestaurant(cmd.RestaurantID(), cmd.Name(), cmd.Address(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, restaurantEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
