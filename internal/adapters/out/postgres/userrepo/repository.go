// Package userrepo reads platform users for authorization decisions.
package userrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role string    `gorm:"size:16;not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (user.User, error) {
	if err := id.Validate(); err != nil {
		return user.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Raw()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return user.User{}, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return user.User{}, err
	}
	return user.NewUser(id, role)
}
