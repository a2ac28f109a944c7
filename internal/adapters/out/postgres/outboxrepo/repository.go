package outboxrepo

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, event order.Event) error {
	dto, err := fromDomain(event)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FetchPending locks up to limit unsent events. Rows locked by another relay
// are skipped, so parallel relays never publish the same batch.
func (r *GormOutboxRepository) FetchPending(ctx context.Context, limit int) ([]order.Event, error) {
	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&OrderEventDTO{}).
		Where("id IN ?", ids).
		Update("sent_at", at).Error
}
