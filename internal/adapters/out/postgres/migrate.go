package postgres

import (
	"orderdesk/internal/adapters/out/postgres/clientrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the clients, restaurants and orders tables.
// Parents come first so the orders foreign keys can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&restaurantrepo.RestaurantDTO{},
		&orderrepo.OrderDTO{},
	)
}
