package queries

import (
	"context"

	"orderdesk/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderFormOptionsQueryHandler reads the option lists straight from the database.
type GetOrderFormOptionsQueryHandler struct {
	clients     GetClientsQueryHandler
	restaurants GetRestaurantsQueryHandler
}

func NewGetOrderFormOptionsQueryHandler(db *gorm.DB) GetOrderFormOptionsQueryHandler {
	return GetOrderFormOptionsQueryHandler{
		clients:     NewGetClientsQueryHandler(db),
		restaurants: NewGetRestaurantsQueryHandler(db),
	}
}

func (h GetOrderFormOptionsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderFormOptionsQuery,
) (OrderFormOptions, error) {
	if err := query.Validate(); err != nil {
		return OrderFormOptions{}, err
	}

	restaurantsQuery, err := NewGetRestaurantsQuery(SortAscending)
	if err != nil {
		return OrderFormOptions{}, err
	}
	restaurants, err := h.restaurants.Handle(ctx, restaurantsQuery)
	if err != nil {
		return OrderFormOptions{}, err
	}

	clientsQuery, err := NewGetClientsQuery(SortAscending)
	if err != nil {
		return OrderFormOptions{}, err
	}
	clients, err := h.clients.Handle(ctx, clientsQuery)
	if err != nil {
		return OrderFormOptions{}, err
	}

	return OrderFormOptions{
		Restaurants: restaurants,
		Clients:     clients,
		Statuses:    StatusCatalogue(),
	}, nil
}

// StatusCatalogue lists every status with its display label, in lifecycle order.
func StatusCatalogue() []StatusOption {
	statuses := order.Statuses()
	options := make([]StatusOption, 0, len(statuses))
	for _, status := range statuses {
		options = append(options, StatusOption{Value: status, Label: status.Label()})
	}
	return options
}
