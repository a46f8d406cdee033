package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
)

// clientContact holds the validated editable fields shared by the client commands.
type clientContact struct {
	name    string
	surname string
	address string
	phone   kernel.Phone
}

func newClientContact(name, surname, address, phone string) (clientContact, error) {
	var contact clientContact
	var errName, errSurname, errAddress, errPhone error

	contact.name, errName = kernel.RequireText("name", name, kernel.NameMinLength)
	contact.surname, errSurname = kernel.RequireText("surname", surname, kernel.NameMinLength)
	contact.address, errAddress = kernel.RequireText("address", address, kernel.AddressMinLength)
	contact.phone, errPhone = kernel.NewPhone(phone)

	if err := errors.Join(errName, errSurname, errAddress, errPhone); err != nil {
		return clientContact{}, err
	}
	return contact, nil
}

// restaurantContact holds the validated editable fields shared by the restaurant commands.
type restaurantContact struct {
	name    string
	address string
	phone   kernel.Phone
}

func newRestaurantContact(name, address, phone string) (restaurantContact, error) {
	var contact restaurantContact
	var errName, errAddress, errPhone error

	contact.name, errName = kernel.RequireText("name", name, kernel.NameMinLength)
	contact.address, errAddress = kernel.RequireText("address", address, kernel.AddressMinLength)
	contact.phone, errPhone = kernel.NewPhone(phone)

	if err := errors.Join(errName, errAddress, errPhone); err != nil {
		return restaurantContact{}, err
	}
	return contact, nil
}
