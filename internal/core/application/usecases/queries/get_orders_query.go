package queries

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, newest first, optionally narrowed to one
// restaurant and/or one client.
//
// Example:
//
//	query, err := NewGetOrdersQuery(&restaurantID, nil)
//	if err != nil {
//	    return err
//	}
//	orders, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQuery struct {
	restaurantID *kernel.UUID
	clientID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery builds the list filter. A nil id leaves that dimension unfiltered.
func NewGetOrdersQuery(restaurantID, clientID *kernel.UUID) (GetOrdersQuery, error) {
	query := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		id := *restaurantID
		query.restaurantID = &id
	}

	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		id := *clientID
		query.clientID = &id
	}

	return query, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}

func (q GetOrdersQuery) ClientID() *kernel.UUID {
	return q.clientID
}
