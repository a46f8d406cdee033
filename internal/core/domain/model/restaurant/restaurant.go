package restaurant

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant constructors")

// Restaurant is a venue orders are placed with.
// Name holds at least two characters, address at least five, phone 9 to 12 digits.
type Restaurant struct {
	id      kernel.UUID
	name    string
	address string
	phone   kernel.Phone

	guard guard.ConstructorGuard
}

func NewRestaurant(id kernel.UUID, name, address string, phone kernel.Phone) (*Restaurant, error) {
	restaurant := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setAddress(address),
		restaurant.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

func RestoreRestaurant(id kernel.UUID, name, address string, phone kernel.Phone) (*Restaurant, error) {
	return NewRestaurant(id, name, address, phone)
}

// Update replaces name, address and phone. On error the restaurant is left unchanged.
func (r *Restaurant) Update(name, address string, phone kernel.Phone) error {
	updated := &Restaurant{id: r.id, guard: r.guard}
	if err := errors.Join(
		updated.setName(name),
		updated.setAddress(address),
		updated.setPhone(phone),
	); err != nil {
		return err
	}

	*r = *updated
	return nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Address() string {
	return r.address
}

func (r *Restaurant) Phone() kernel.Phone {
	return r.phone
}

// Initials returns up to two upper-cased letters taken from the words of the name.
func (r *Restaurant) Initials() string {
	return kernel.Initials(r.name)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	value, err := kernel.RequireText("name", name, kernel.NameMinLength)
	if err != nil {
		return err
	}
	r.name = value
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	value, err := kernel.RequireText("address", address, kernel.AddressMinLength)
	if err != nil {
		return err
	}
	r.address = value
	return nil
}

func (r *Restaurant) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	r.phone = phone
	return nil
}
