// Package pgtest starts a disposable PostgreSQL for integration tests and
// seeds the tables this service only reads.
package pgtest

import (
	"context"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/addressrepo"
	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/shoprepo"
	"marketplace/internal/adapters/out/postgres/userrepo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Start runs a PostgreSQL container and returns it with a migrated connection.
func Start(ctx context.Context) (*pgcontainer.PostgresContainer, *gorm.DB, error) {
	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return container, nil, err
	}

	return container, db, postgres.Migrate(db)
}

// Truncate empties every table.
func Truncate(db *gorm.DB) error {
	return db.Exec(`TRUNCATE TABLE order_events, order_items, orders, cart_items, items,
		addresses, shops, users RESTART IDENTITY CASCADE`).Error
}

func SeedUser(db *gorm.DB, role string) (uuid.UUID, error) {
	dto := userrepo.UserDTO{ID: uuid.New(), Role: role}
	return dto.ID, db.Create(&dto).Error
}

// Snapshot returns an address column group at the given coordinate.
func Snapshot(lat, lon float64, contact string) addressrepo.SnapshotDTO {
	return addressrepo.SnapshotDTO{
		Latitude:     lat,
		Longitude:    lon,
		Province:     "Zhejiang",
		City:         "Hangzhou",
		District:     "Xihu",
		Town:         "Lingyin",
		Detail:       "18 Tea Garden Rd",
		ContactName:  contact,
		ContactPhone: "0571-1234",
	}
}

// SeedShop inserts a verified, open, always-open shop with a 2.00 fee,
// 20.00 threshold and 5 km range at (30.25, 120.15).
func SeedShop(db *gorm.DB, ownerID uuid.UUID) (uuid.UUID, error) {
	dto := shoprepo.ShopDTO{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Name:              "West Lake Noodles",
		Verified:          true,
		Opened:            true,
		OpenStart:         0,
		OpenEnd:           0,
		DeliveryFee:       decimal.RequireFromString("2.00"),
		DeliveryThreshold: decimal.RequireFromString("20.00"),
		MaxDistanceKm:     5,
		Address:           Snapshot(30.25, 120.15, "West Lake Noodles"),
	}
	return dto.ID, db.Create(&dto).Error
}

func SeedItem(db *gorm.DB, shopID uuid.UUID, name, price string) (uuid.UUID, error) {
	dto := cartrepo.ItemDTO{
		ID:        uuid.New(),
		ShopID:    shopID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: true,
	}
	return dto.ID, db.Create(&dto).Error
}

func SeedCartItem(db *gorm.DB, customerID, itemID uuid.UUID, quantity int, createdAt time.Time) error {
	return db.Create(&cartrepo.CartItemDTO{
		ID:         uuid.New(),
		CustomerID: customerID,
		ItemID:     itemID,
		Quantity:   quantity,
		CreatedAt:  createdAt,
	}).Error
}

// SeedAddress stores an address owned by ownerID at (lat, lon).
func SeedAddress(db *gorm.DB, ownerID uuid.UUID, lat, lon float64) (uuid.UUID, error) {
	dto := addressrepo.AddressDTO{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Address: Snapshot(lat, lon, "Chen Jing"),
	}
	return dto.ID, db.Create(&dto).Error
}
