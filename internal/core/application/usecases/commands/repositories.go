// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces narrow the transaction to the repositories a
// command actually touches.
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

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// CheckoutUoW spans everything order creation reads and writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   lines, err := uow.CartRepository().GetByShop(ctx, customerID, shopID)
	//   // ... build the order
	//   err = uow.CartRepository().DeleteLines(ctx, customerID, cart.IDs(lines))
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		UserRepoFactory
		ShopRepoFactory
		CartRepoFactory
		AddressRepoFactory
		OrderRepoFactory
		OutboxRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// LifecycleUoW serves status changes, rider claims and deletions.
	LifecycleUoW interface {
		TxManager
		UserRepoFactory
		ShopRepoFactory
		OrderRepoFactory
		OutboxRepoFactory
	}

	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// OutboxUoW serves the event relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
