package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Lifecycle writes are compare-and-set on the stored status: the row is only
// touched while its status still equals the one the caller read, so of two
// concurrent writers exactly one wins and the other gets errs.ConflictError.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order together with its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateLifecycle writes status, rider and timestamps if the stored status is
// still expected.
func (r *GormOrderRepository) UpdateLifecycle(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Raw(), expected.String()).
		Updates(lifecycleColumns(aggregate))
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order", id.String())
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", id.String())
	}

	r.tracker.TrackAggregate(id, aggregate)
	return nil
}

// Delete removes the order if the stored status is still expected. Line items
// go with it through the cascading foreign key.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	id := aggregate.ID()
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id.Raw(), expected.String()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "order", id.String())
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", id.String())
	}

	r.tracker.TrackAggregate(id, aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns one page of orders matching filter, newest first.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderListFilter) ([]*order.Order, error) {
	query := r.withItems(ctx)
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", filter.CustomerID.Raw())
	}
	if filter.ShopID != nil {
		query = query.Where("shop_id = ?", filter.ShopID.Raw())
	}
	if filter.RiderID != nil {
		query = query.Where("rider_id = ?", filter.RiderID.Raw())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.PageSize > 0 {
		page := max(filter.Page, 1)
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
