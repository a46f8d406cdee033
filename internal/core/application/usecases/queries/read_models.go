// Package queries contains read-only operations answered with raw SQL through gorm.
// Read models are plain structs shaped for API responses and caches; they are
// never turned back into aggregates.
package queries

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ClientView is a client as listed and shown to API callers.
type ClientView struct {
	ID       kernel.UUID `json:"id"`
	Name     string      `json:"name"`
	Surname  string      `json:"surname"`
	Address  string      `json:"address"`
	Phone    string      `json:"phone"`
	Initials string      `json:"initials"`
}

// RestaurantView is a restaurant as listed and shown to API callers.
type RestaurantView struct {
	ID       kernel.UUID `json:"id"`
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Phone    string      `json:"phone"`
	Initials string      `json:"initials"`
}

// RestaurantRef is the restaurant summary joined into order views.
type RestaurantRef struct {
	ID   kernel.UUID
	Name string
}

// ClientRef is the client summary joined into order views.
type ClientRef struct {
	ID      kernel.UUID
	Name    string
	Surname string
}

type ItemView struct {
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Description string          `json:"description"`
}

// OrderView is an order joined with its restaurant and client summaries.
// AllowedStatuses is derived from Status and tells callers which moves are legal.
type OrderView struct {
	ID              kernel.UUID
	Restaurant      RestaurantRef
	Client          ClientRef
	Status          order.Status
	AllowedStatuses []order.Status
	Items           []ItemView
	Total           decimal.Decimal
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// StatusOption is one entry of the status catalogue offered by order forms.
type StatusOption struct {
	Value order.Status `json:"value"`
	Label string       `json:"label"`
}
