package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

func (h GetRestaurantsQueryHandler) Handle(ctx context.Context, query GetRestaurantsQuery) ([]RestaurantView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		restaurantViewSelect + "\n\t\tORDER BY name " + query.SortOrder().sql() + ", id",
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantView, 0)
	for rows.Next() {
		view, scanErr := scanRestaurantView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		restaurants = append(restaurants, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
