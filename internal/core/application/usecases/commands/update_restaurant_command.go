package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
	"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor",
)

// UpdateRestaurantCommand replaces name, address and phone of an existing restaurant.
type UpdateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	contact      restaurantContact

	guard guard.ConstructorGuard
}

func NewUpdateRestaurantCommand(restaurantID kernel.UUID, name, address, phone string) (UpdateRestaurantCommand, error) {
	contact, err := newRestaurantContact(name, address, phone)
	if err = errors.Join(restaurantID.Validate(), err); err != nil {
		return UpdateRestaurantCommand{}, err
	}

	return UpdateRestaurantCommand{
		restaurantID: restaurantID,
		contact:      contact,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

func (c UpdateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c UpdateRestaurantCommand) Name() string {
	return c.contact.name
}

func (c UpdateRestaurantCommand) Address() string {
	return c.contact.address
}

func (c UpdateRestaurantCommand) Phone() kernel.Phone {
	return c.contact.phone
}
