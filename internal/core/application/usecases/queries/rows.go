package queries

import (
	"database/sql"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const orderViewSelect = `
		SELECT
			o.id,
			o.status,
			o.items,
			o.total,
			o.created_at,
			o.completed_at,
			r.id,
			r.name,
			c.id,
			c.name,
			c.surname
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		JOIN clients c ON c.id = o.client_id`

const clientViewSelect = `
		SELECT
			id,
			name,
			surname,
			address,
			phone
		FROM clients`

const restaurantViewSelect = `
		SELECT
			id,
			name,
			address,
			phone
		FROM restaurants`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		view         OrderView
		id           uuid.UUID
		restaurantID uuid.UUID
		clientID     uuid.UUID
		status       int
		items        datatypes.JSONSlice[ItemView]
		total        decimal.Decimal
		createdAt    time.Time
		completedAt  *time.Time
		err          error
	)

	if err = rows.Scan(
		&id,
		&status,
		&items,
		&total,
		&createdAt,
		&completedAt,
		&restaurantID,
		&view.Restaurant.Name,
		&clientID,
		&view.Client.Name,
		&view.Client.Surname,
	); err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.Restaurant.ID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderView{}, err
	}
	if view.Client.ID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return OrderView{}, err
	}

	view.Status = order.Status(status)
	if err = view.Status.Validate(); err != nil {
		return OrderView{}, err
	}
	view.AllowedStatuses = view.Status.AllowedNextStatuses()
	view.Items = []ItemView(items)
	if view.Items == nil {
		view.Items = []ItemView{}
	}
	view.Total = total
	view.CreatedAt = createdAt.UTC()
	if completedAt != nil {
		t := completedAt.UTC()
		view.CompletedAt = &t
	}

	return view, nil
}

func scanClientView(rows *sql.Rows) (ClientView, error) {
	var (
		view ClientView
		id   uuid.UUID
		err  error
	)

	if err = rows.Scan(&id, &view.Name, &view.Surname, &view.Address, &view.Phone); err != nil {
		return ClientView{}, err
	}
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ClientView{}, err
	}
	view.Initials = kernel.Initials(view.Name + " " + view.Surname)

	return view, nil
}

func scanRestaurantView(rows *sql.Rows) (RestaurantView, error) {
	var (
		view RestaurantView
		id   uuid.UUID
		err  error
	)

	if err = rows.Scan(&id, &view.Name, &view.Address, &view.Phone); err != nil {
		return RestaurantView{}, err
	}
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return RestaurantView{}, err
	}
	view.Initials = kernel.Initials(view.Name)

	return view, nil
}
