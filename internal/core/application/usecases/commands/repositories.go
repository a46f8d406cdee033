// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it writes through.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// OrderUoW manages transactions for order-only operations such as status changes.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ClientUoW manages client writes. Orders are included for the delete cascade.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
		OrderRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// RestaurantUoW manages restaurant writes. Orders are included for the delete cascade.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
		OrderRepoFactory
	}

	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// UoW spans every aggregate. Used by order creation, which checks the
	// referenced client and restaurant inside the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   if _, err = uow.ClientRepository().Get(ctx, clientID); err != nil { ... }
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ClientRepoFactory
		RestaurantRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
