package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand replaces the editable fields of an existing client.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	contact  clientContact

	guard guard.ConstructorGuard
}

func NewUpdateClientCommand(clientID kernel.UUID, name, surname, address, phone string) (UpdateClientCommand, error) {
	contact, err := newClientContact(name, surname, address, phone)
	if err = errors.Join(clientID.Validate(), err); err != nil {
		return UpdateClientCommand{}, err
	}

	return UpdateClientCommand{
		clientID: clientID,
		contact:  contact,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

func (c UpdateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c UpdateClientCommand) Name() string {
	return c.contact.name
}

func (c UpdateClientCommand) Surname() string {
	return c.contact.surname
}

func (c UpdateClientCommand) Address() string {
	return c.contact.address
}

func (c UpdateClientCommand) Phone() kernel.Phone {
	return c.contact.phone
}
