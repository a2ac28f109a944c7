// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Every repository handed out by a GormUnitOfWork shares its transaction once
// Begin has been called, so an order change and the event it records are
// committed or rolled back together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().UpdateLifecycle(ctx, o, from); err != nil {
//	    return err
//	}
//	if err := uow.OutboxRepository().Add(ctx, event); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Lifecycle writes are conditional on the stored status; the loser of a
//     race gets errs.ConflictError and its transaction should be rolled back
package postgres

import (
	"context"

	"marketplace/internal/adapters/out/postgres/addressrepo"
	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/outboxrepo"
	"marketplace/internal/adapters/out/postgres/shoprepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate changes
// for business operations.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction after Commit, which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the transaction if one is active, otherwise the main connection.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository provides access to order persistence operations within the unit of work.
// The returned repository tracks every order it adds, updates or deletes.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) ShopRepository() ports.ShopRepository {
	return shoprepo.NewGormShopRepository(uow.conn())
}

func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn())
}

func (uow *GormUnitOfWork) AddressRepository() ports.AddressRepository {
	return addressrepo.NewGormAddressRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit of work.
// Repository implementations call it after each successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs lists the identifiers of aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}

// Migrate creates or updates every table this service reads or writes. It is
// used by integration tests; deployments run the SQL migrations instead.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&shoprepo.ShopDTO{},
		&cartrepo.ItemDTO{},
		&cartrepo.CartItemDTO{},
		&addressrepo.AddressDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&outboxrepo.OrderEventDTO{},
	)
}
