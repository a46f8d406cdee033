package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a new client.
// A fresh client id is generated by the constructor so the caller can read the
// client back once the command has been handled.
//
// Example:
//
//	cmd, err := NewCreateClientCommand("Ada", "Lovelace", "12 Baker Street", "612 345 678")
//	if err != nil {
//	    return fmt.Errorf("invalid client: %w", err)
//	}
//
//	handler := NewCreateClientCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Println(cmd.ClientID())
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	contact  clientContact

	guard guard.ConstructorGuard
}

// NewCreateClientCommand validates the raw form fields into a typed command.
// All field errors are reported together.
func NewCreateClientCommand(name, surname, address, phone string) (CreateClientCommand, error) {
	contact, err := newClientContact(name, surname, address, phone)
	if err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		clientID: kernel.NewUUID(),
		contact:  contact,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CreateClientCommand) Name() string {
	return c.contact.name
}

func (c CreateClientCommand) Surname() string {
	return c.contact.surname
}

func (c CreateClientCommand) Address() string {
	return c.contact.address
}

func (c CreateClientCommand) Phone() kernel.Phone {
	return c.contact.phone
}
