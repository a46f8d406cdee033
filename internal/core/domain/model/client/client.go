package client

import (
	"errors"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient constructors")

// Client is a customer orders are placed for.
//
// Example usage:
//
//	phone, _ := kernel.NewPhone("612 345 678")
//	c, err := client.NewClient(kernel.NewUUID(), "Ada", "Lovelace", "12 Baker Street", phone)
//	if err != nil {
//	    // Handle construction error
//	}
//	c.Initials() // "AL"
type Client struct {
	id      kernel.UUID
	name    string
	surname string
	address string
	phone   kernel.Phone

	guard guard.ConstructorGuard
}

// NewClient creates a Client, trimming and validating every field.
// Validation errors for all fields are reported together.
func NewClient(id kernel.UUID, name, surname, address string, phone kernel.Phone) (*Client, error) {
	client := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		client.setID(id),
		client.setName(name),
		client.setSurname(surname),
		client.setAddress(address),
		client.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return client, nil
}

// RestoreClient reconstructs a Client loaded from storage. The same rules as
// NewClient apply, so corrupted rows surface as errors instead of half-built aggregates.
func RestoreClient(id kernel.UUID, name, surname, address string, phone kernel.Phone) (*Client, error) {
	return NewClient(id, name, surname, address, phone)
}

// Update replaces the editable fields. On error the client is left unchanged.
func (c *Client) Update(name, surname, address string, phone kernel.Phone) error {
	updated := &Client{id: c.id, guard: c.guard}
	if err := errors.Join(
		updated.setName(name),
		updated.setSurname(surname),
		updated.setAddress(address),
		updated.setPhone(phone),
	); err != nil {
		return err
	}

	*c = *updated
	return nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Client) ID() kernel.UUID {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) Surname() string {
	return c.surname
}

// FullName is "name surname".
func (c *Client) FullName() string {
	return strings.TrimSpace(c.name + " " + c.surname)
}

func (c *Client) Address() string {
	return c.address
}

func (c *Client) Phone() kernel.Phone {
	return c.phone
}

// Initials returns the first letter of the name and of the surname, upper-cased.
func (c *Client) Initials() string {
	return kernel.Initials(c.FullName())
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	value, err := kernel.RequireText("name", name, kernel.NameMinLength)
	if err != nil {
		return err
	}
	c.name = value
	return nil
}

func (c *Client) setSurname(surname string) error {
	value, err := kernel.RequireText("surname", surname, kernel.NameMinLength)
	if err != nil {
		return err
	}
	c.surname = value
	return nil
}

func (c *Client) setAddress(address string) error {
	value, err := kernel.RequireText("address", address, kernel.AddressMinLength)
	if err != nil {
		return err
	}
	c.address = value
	return nil
}

func (c *Client) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}
