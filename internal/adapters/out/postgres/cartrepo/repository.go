package cartrepo

import (
	"context"
	"errors"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetByShop returns the customer's lines for items sold by shopID, oldest first.
// The cart rows stay locked until the surrounding transaction ends.
func (r *GormCartRepository) GetByShop(ctx context.Context, customerID, shopID kernel.UUID) ([]cart.Line, error) {
	if err := errors.Join(customerID.Validate(), shopID.Validate()); err != nil {
		return nil, err
	}

	var rows []lineRow
	err := r.db.WithContext(ctx).
		Model(&CartItemDTO{}).
		Select("cart_items.id, cart_items.item_id, items.name, cart_items.quantity, items.price, items.available, items.stockout").
		Joins("JOIN items ON items.id = cart_items.item_id").
		Where("cart_items.customer_id = ? AND items.shop_id = ?", customerID.Raw(), shopID.Raw()).
		Order("cart_items.created_at, cart_items.id").
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: CartItemDTO{}.TableName()}}).
		Scan(&rows).Error
	if err != nil {
		return nil, pgerr.Translate(err, "cart", customerID.String())
	}

	lines := make([]cart.Line, 0, len(rows))
	for _, row := range rows {
		line, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// DeleteLines removes exactly the given cart entries of the customer. Entries
// added after they were read are kept. A line that is already gone is a conflict.
func (r *GormCartRepository) DeleteLines(ctx context.Context, customerID kernel.UUID, lineIDs []kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if len(lineIDs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(lineIDs))
	for _, id := range lineIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		ids = append(ids, id.Raw())
	}

	result := r.db.WithContext(ctx).
		Where("customer_id = ? AND id IN ?", customerID.Raw(), ids).
		Delete(&CartItemDTO{})
	if result.Error != nil {
		return pgerr.Translate(result.Error, "cart", customerID.String())
	}

	if result.RowsAffected != int64(len(ids)) {
		return errs.NewConflictError("cart", customerID.String())
	}
	return nil
}
