package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery lists every restaurant sorted by name.
type GetRestaurantsQuery struct {
	sortOrder SortOrder

	guard guard.ConstructorGuard
}

func NewGetRestaurantsQuery(sortOrder SortOrder) (GetRestaurantsQuery, error) {
	if err := sortOrder.Validate(); err != nil {
		return GetRestaurantsQuery{}, err
	}
	return GetRestaurantsQuery{sortOrder: sortOrder, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

func (q GetRestaurantsQuery) SortOrder() SortOrder {
	return q.sortOrder
}
