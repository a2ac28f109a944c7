// Package orderrepo maps the Order aggregate to the orders and order_items
// tables. Status is stored as its lower-case label.
package orderrepo

import (
	"errors"
	"time"

	"marketplace/internal/adapters/out/postgres/addressrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Addresses are frozen snapshots embedded with their own column prefixes.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index;not null"`
	ShopID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	RiderID    *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"size:16;index;not null"`

	CreatedAt   time.Time `gorm:"index;not null"`
	PaidAt      *time.Time
	PreparedAt  *time.Time
	DeliveredAt *time.Time
	FinishedAt  *time.Time
	CanceledAt  *time.Time

	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Note        string          `gorm:"size:400;not null;default:''"`

	ShopAddress     addressrepo.SnapshotDTO `gorm:"embedded;embeddedPrefix:shop_address_"`
	CustomerAddress addressrepo.SnapshotDTO `gorm:"embedded;embeddedPrefix:customer_address_"`

	DeliveryLatitude  *float64
	DeliveryLongitude *float64

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a frozen line item. Position keeps the cart order.
type OrderItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	ItemID   uuid.UUID       `gorm:"type:uuid;not null"`
	Position int             `gorm:"not null"`
	Name     string          `gorm:"size:128;not null"`
	Quantity int             `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	ts := o.Timestamps()
	dto := OrderDTO{
		ID:              o.ID().Raw(),
		CustomerID:      o.CustomerID().Raw(),
		ShopID:          o.ShopID().Raw(),
		RiderID:         rawOrNil(o.Rider()),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		PaidAt:          ts.PaidAt,
		PreparedAt:      ts.PreparedAt,
		DeliveredAt:     ts.DeliveredAt,
		FinishedAt:      ts.FinishedAt,
		CanceledAt:      ts.CanceledAt,
		DeliveryFee:     o.DeliveryFee(),
		Total:           o.Total(),
		Note:            o.Note(),
		ShopAddress:     addressrepo.SnapshotFromDomain(o.ShopAddress()),
		CustomerAddress: addressrepo.SnapshotFromDomain(o.CustomerAddress()),
	}

	if p := o.DeliveryPosition(); p != nil {
		lat, lon := p.Latitude(), p.Longitude()
		dto.DeliveryLatitude, dto.DeliveryLongitude = &lat, &lon
	}

	for i, li := range o.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:       li.ID().Raw(),
			OrderID:  dto.ID,
			ItemID:   li.ItemID().Raw(),
			Position: i,
			Name:     li.Name(),
			Quantity: li.Quantity(),
			Price:    li.Price(),
		})
	}

	return dto
}

// lifecycleColumns are the only columns a status change or claim may write.
func lifecycleColumns(o *order.Order) map[string]any {
	ts := o.Timestamps()
	return map[string]any{
		"status":       o.Status().String(),
		"rider_id":     rawOrNil(o.Rider()),
		"paid_at":      ts.PaidAt,
		"prepared_at":  ts.PreparedAt,
		"delivered_at": ts.DeliveredAt,
		"finished_at":  ts.FinishedAt,
		"canceled_at":  ts.CanceledAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	shopID, err := kernel.UUIDFromGoogle(dto.ShopID)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromGoogle(*dto.RiderID)
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	shopAddress, err := dto.ShopAddress.ToDomain()
	if err != nil {
		return nil, err
	}
	customerAddress, err := dto.CustomerAddress.ToDomain()
	if err != nil {
		return nil, err
	}

	var position *kernel.GeoPoint
	if dto.DeliveryLatitude != nil && dto.DeliveryLongitude != nil {
		p, posErr := kernel.NewGeoPoint(*dto.DeliveryLatitude, *dto.DeliveryLongitude)
		if posErr != nil {
			return nil, posErr
		}
		position = &p
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		li, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, li)
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:         id,
		CustomerID: customerID,
		ShopID:     shopID,
		RiderID:    riderID,
		Status:     status,
		CreatedAt:  dto.CreatedAt,
		Timestamps: order.Timestamps{
			PaidAt:      dto.PaidAt,
			PreparedAt:  dto.PreparedAt,
			DeliveredAt: dto.DeliveredAt,
			FinishedAt:  dto.FinishedAt,
			CanceledAt:  dto.CanceledAt,
		},
		DeliveryFee:      dto.DeliveryFee,
		Total:            dto.Total,
		Note:             dto.Note,
		ShopAddress:      shopAddress,
		CustomerAddress:  customerAddress,
		Items:            items,
		DeliveryPosition: position,
	})
}

func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	itemID, itemErr := kernel.UUIDFromGoogle(dto.ItemID)
	if err = errors.Join(err, itemErr); err != nil {
		return order.LineItem{}, err
	}
	return order.RestoreLineItem(id, itemID, dto.Name, dto.Quantity, dto.Price)
}

func rawOrNil(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Raw()
	return &raw
}
