// Package shoprepo reads shops for order placement and authorization.
package shoprepo

import (
	"marketplace/internal/adapters/out/postgres/addressrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopDTO is a catalog shop row. Opening hours are minutes since midnight.
type ShopDTO struct {
	ID                uuid.UUID               `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID               `gorm:"type:uuid;index;not null"`
	Name              string                  `gorm:"size:128;not null"`
	Verified          bool                    `gorm:"not null;default:false"`
	Opened            bool                    `gorm:"not null;default:false"`
	OpenStart         int                     `gorm:"type:smallint;not null"`
	OpenEnd           int                     `gorm:"type:smallint;not null"`
	DeliveryFee       decimal.Decimal         `gorm:"type:numeric(12,2);not null"`
	DeliveryThreshold decimal.Decimal         `gorm:"type:numeric(12,2);not null"`
	MaxDistanceKm     float64                 `gorm:"not null"`
	Address           addressrepo.SnapshotDTO `gorm:"embedded;embeddedPrefix:address_"`
}

func (ShopDTO) TableName() string {
	return "shops"
}

func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromGoogle(dto.OwnerID)
	if err != nil {
		return nil, err
	}
	hours, err := shop.NewOpeningHours(dto.OpenStart, dto.OpenEnd)
	if err != nil {
		return nil, err
	}
	address, err := dto.Address.ToDomain()
	if err != nil {
		return nil, err
	}

	return shop.NewShop(id, ownerID, dto.Name, dto.Verified, dto.Opened, hours, shop.Delivery{
		Fee:           dto.DeliveryFee,
		Threshold:     dto.DeliveryThreshold,
		MaxDistanceKm: dto.MaxDistanceKm,
	}, address)
}
