// Package clientrepo persists client aggregates in the clients table.
package clientrepo

import (
	"time"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO is the row layout of the clients table.
type ClientDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	Surname   string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:      aggregate.ID().Raw(),
		Name:    aggregate.Name(),
		Surname: aggregate.Surname(),
		Address: aggregate.Address(),
		Phone:   aggregate.Phone().String(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.Surname, dto.Address, phone)
}
