// Package cartrepo reads a customer's cart joined with the catalog and clears
// it once an order has been placed.
package cartrepo

import (
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO is a catalog item row.
type ItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name      string          `gorm:"size:128;not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available bool            `gorm:"not null;default:true"`
	Stockout  bool            `gorm:"not null;default:false"`
}

func (ItemDTO) TableName() string {
	return "items"
}

// CartItemDTO is one entry of a customer's cart.
type CartItemDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	ItemID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity   int       `gorm:"not null"`
	CreatedAt  time.Time
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

// lineRow is the projection of cart_items joined with items.
type lineRow struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	Name      string
	Quantity  int
	Price     decimal.Decimal
	Available bool
	Stockout  bool
}

func (row lineRow) toDomain() (cart.Line, error) {
	id, err := kernel.UUIDFromGoogle(row.ID)
	if err != nil {
		return cart.Line{}, err
	}
	itemID, err := kernel.UUIDFromGoogle(row.ItemID)
	if err != nil {
		return cart.Line{}, err
	}
	return cart.NewLine(id, itemID, row.Name, row.Quantity, row.Price, row.Available, row.Stockout)
}
