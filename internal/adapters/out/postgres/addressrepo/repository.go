package addressrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAddressRepository implements ports.AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// GetOwned loads the address only when it belongs to ownerID. Another
// customer's address is reported as missing.
func (r *GormAddressRepository) GetOwned(ctx context.Context, id, ownerID kernel.UUID) (kernel.Address, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return kernel.Address{}, err
	}

	var dto AddressDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND owner_id = ?", id.Raw(), ownerID.Raw()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Address{}, errs.NewObjectNotFoundError("address", id.String())
		}
		return kernel.Address{}, err
	}

	return dto.Address.ToDomain()
}
