package shoprepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShopRepository implements ports.ShopRepository using GORM.
type GormShopRepository struct {
	db *gorm.DB
}

func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

func (r *GormShopRepository) Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShopDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shop", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
