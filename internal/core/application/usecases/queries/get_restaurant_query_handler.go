package queries

import (
	"context"

	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle returns the restaurant or an ObjectNotFoundError.
func (h GetRestaurantQueryHandler) Handle(ctx context.Context, query GetRestaurantQuery) (RestaurantView, error) {
	if err := query.Validate(); err != nil {
		return RestaurantView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		restaurantViewSelect+"\n\t\tWHERE id = ?", query.RestaurantID().String(),
	).Rows()
	if err != nil {
		return RestaurantView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return RestaurantView{}, err
		}
		return RestaurantView{}, errs.NewObjectNotFoundError("restaurant", query.RestaurantID())
	}

	return scanRestaurantView(rows)
}
