// Package orderrepo persists order aggregates in the orders table.
// Items are stored as a jsonb snapshot next to the total they produced.
package orderrepo

import (
	"errors"
	"fmt"
	"time"

	"orderdesk/internal/adapters/out/postgres/clientrepo"
	"orderdesk/internal/adapters/out/postgres/restaurantrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the row layout of the orders table. Restaurant and Client are only
// declared so that migrations create the foreign keys; they are never loaded.
type OrderDTO struct {
	ID           uuid.UUID                     `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Restaurant   *restaurantrepo.RestaurantDTO `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ClientID     uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Client       *clientrepo.ClientDTO         `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Status       int                           `gorm:"type:smallint;not null;index"`
	Items        datatypes.JSONSlice[ItemDTO]  `gorm:"type:jsonb;not null"`
	Total        decimal.Decimal               `gorm:"type:numeric;not null"`
	CreatedAt    time.Time                     `gorm:"type:timestamptz;not null;index;autoCreateTime:false"`
	CompletedAt  *time.Time                    `gorm:"type:timestamptz"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one element of the items jsonb array.
type ItemDTO struct {
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Description string          `json:"description"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			Description: item.Description(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Raw(),
		RestaurantID: aggregate.RestaurantID().Raw(),
		ClientID:     aggregate.ClientID().Raw(),
		Status:       int(aggregate.Status()),
		Items:        items,
		Total:        aggregate.Total(),
		CreatedAt:    aggregate.CreatedAt(),
		CompletedAt:  aggregate.CompletedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	var itemErrs []error
	for i, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.Description)
		if itemErr != nil {
			itemErrs = append(itemErrs, fmt.Errorf("item %d: %w", i, itemErr))
			continue
		}
		items = append(items, item)
	}
	if err = errors.Join(itemErrs...); err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if dto.CompletedAt != nil {
		t := dto.CompletedAt.UTC()
		completedAt = &t
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		clientID,
		order.Status(dto.Status),
		items,
		dto.Total,
		dto.CreatedAt.UTC(),
		completedAt,
	)
}
