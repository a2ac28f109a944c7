// Package queries contains read operations. Queries never modify state; they
// run inside a transaction only to read a consistent snapshot.
package queries

import (
	"context"

	"marketplace/internal/core/ports"
)

type (
	// ReadUoW is the read-only slice of the unit of work the queries need.
	ReadUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		UserRepository() ports.UserRepository
		ShopRepository() ports.ShopRepository
		OrderRepository() ports.OrderRepository
	}

	ReadUoWFactory interface {
		Create() ReadUoW
	}
)
