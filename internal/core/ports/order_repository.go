// Package ports defines the contracts between the order engine and its
// infrastructure: persistence, the unit of work, time, cover links and event
// publishing.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderListFilter selects and pages orders. Nil fields do not filter.
type OrderListFilter struct {
	CustomerID *kernel.UUID
	ShopID     *kernel.UUID
	RiderID    *kernel.UUID
	Status     *order.Status

	// Page is 1-based.
	Page     int
	PageSize int
}

// OrderRepository persists Order aggregates together with their line items.
type OrderRepository interface {
	// Add inserts a new order and its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its line items.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateLifecycle writes status, rider and lifecycle timestamps only if the
	// stored status still equals expected. A lost race returns errs.ConflictError.
	UpdateLifecycle(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Delete removes the order and its line items only if the stored status
	// still equals expected. A lost race returns errs.ConflictError.
	Delete(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// List returns orders matching filter, newest first.
	List(ctx context.Context, filter OrderListFilter) ([]*order.Order, error)
}
