package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrGetOrderFormOptionsQueryIsNotConstructed = errors.New(
	"GetOrderFormOptionsQuery must be created via NewGetOrderFormOptionsQuery constructor",
)

// GetOrderFormOptionsQuery gathers what an order form needs to offer: restaurants
// and clients ordered by name and the status catalogue.
type GetOrderFormOptionsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderFormOptionsQuery() GetOrderFormOptionsQuery {
	return GetOrderFormOptionsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOrderFormOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderFormOptionsQueryIsNotConstructed)
}

// OrderFormOptions is the answer to GetOrderFormOptionsQuery.
type OrderFormOptions struct {
	Restaurants []RestaurantView `json:"restaurants"`
	Clients     []ClientView     `json:"clients"`
	Statuses    []StatusOption   `json:"statuses"`
}
