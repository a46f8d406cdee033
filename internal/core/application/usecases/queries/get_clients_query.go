package queries

import (
	"errors"

	"orderdesk/internal/pkg/guard"
)

var ErrGetClientsQueryIsNotConstructed = errors.New(
	"GetClientsQuery must be created via NewGetClientsQuery constructor",
)

// GetClientsQuery lists every client sorted by name, then surname.
type GetClientsQuery struct {
	sortOrder SortOrder

	guard guard.ConstructorGuard
}

func NewGetClientsQuery(sortOrder SortOrder) (GetClientsQuery, error) {
	if err := sortOrder.Validate(); err != nil {
		return GetClientsQuery{}, err
	}
	return GetClientsQuery{sortOrder: sortOrder, guard: guard.NewConstructorGuard()}, nil
}

func (q GetClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetClientsQueryIsNotConstructed)
}

func (q GetClientsQuery) SortOrder() SortOrder {
	return q.sortOrder
}
