package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to register a new restaurant.
// The restaurant id is generated by the constructor.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	contact      restaurantContact

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(name, address, phone string) (CreateRestaurantCommand, error) {
	contact, err := newRestaurantContact(name, address, phone)
	if err != nil {
		return CreateRestaurantCommand{}, err
	}

	return CreateRestaurantCommand{
		restaurantID: kernel.NewUUID(),
		contact:      contact,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateRestaurantCommand) Name() string {
	return c.contact.name
}

func (c CreateRestaurantCommand) Address() string {
	return c.contact.address
}

func (c CreateRestaurantCommand) Phone() kernel.Phone {
	return c.contact.phone
}
