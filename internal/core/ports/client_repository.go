package ports

import (
	"context"

	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
// Get, Update and Delete report unknown ids as ObjectNotFoundError.
type ClientRepository interface {
	Add(ctx context.Context, aggregate *client.Client) error
	Update(ctx context.Context, aggregate *client.Client) error
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
