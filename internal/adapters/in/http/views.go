package http

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
)

// AddressView is a frozen address block. Coordinate is [latitude, longitude].
type AddressView struct {
	Coordinate [2]float64 `json:"coordinate"`
	Province   string     `json:"province"`
	City       string     `json:"city"`
	District   string     `json:"district"`
	Town       string     `json:"town"`
	Address    string     `json:"address"`
	Name       string     `json:"name"`
	Tel        string     `json:"tel"`
}

type CoverView struct {
	Origin    string `json:"origin"`
	Thumbnail string `json:"thumbnail"`
}

// LineItemView carries the catalog item id; the cover is keyed by the line item.
type LineItemView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Cover    CoverView `json:"cover"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
}

type PositionView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OrderView is the full order as seen by its participants.
type OrderView struct {
	ID              uuid.UUID      `json:"id"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	PaidAt          *time.Time     `json:"paidAt"`
	PreparedAt      *time.Time     `json:"preparedAt"`
	DeliveredAt     *time.Time     `json:"deliveredAt"`
	FinishedAt      *time.Time     `json:"finishedAt"`
	CanceledAt      *time.Time     `json:"canceledAt"`
	Customer        uuid.UUID      `json:"customer"`
	Shop            uuid.UUID      `json:"shop"`
	Rider           *uuid.UUID     `json:"rider"`
	Items           []LineItemView `json:"items"`
	DeliveryFee     float64        `json:"deliveryFee"`
	Total           float64        `json:"total"`
	Note            string         `json:"note"`
	Delivery        *PositionView  `json:"delivery"`
	ShopAddress     AddressView    `json:"shopAddress"`
	CustomerAddress AddressView    `json:"customerAddress"`
}

// OmittedOrderView is what an uninvolved user sees of a prepared order.
type OmittedOrderView struct {
	ID              uuid.UUID   `json:"id"`
	Status          string      `json:"status"`
	PreparedAt      *time.Time  `json:"preparedAt"`
	ShopAddress     AddressView `json:"shopAddress"`
	CustomerAddress AddressView `json:"customerAddress"`
}

func newAddressView(a kernel.Address) AddressView {
	return AddressView{
		Coordinate: [2]float64{a.Point().Latitude(), a.Point().Longitude()},
		Province:   a.Province(),
		City:       a.City(),
		District:   a.District(),
		Town:       a.Town(),
		Address:    a.Detail(),
		Name:       a.ContactName(),
		Tel:        a.ContactPhone(),
	}
}

func newOrderView(ctx context.Context, o *order.Order, covers ports.CoverLinker) (OrderView, error) {
	ts := o.Timestamps()
	view := OrderView{
		ID:              o.ID().Raw(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		PaidAt:          ts.PaidAt,
		PreparedAt:      ts.PreparedAt,
		DeliveredAt:     ts.DeliveredAt,
		FinishedAt:      ts.FinishedAt,
		CanceledAt:      ts.CanceledAt,
		Customer:        o.CustomerID().Raw(),
		Shop:            o.ShopID().Raw(),
		Items:           make([]LineItemView, 0, len(o.Items())),
		DeliveryFee:     o.DeliveryFee().InexactFloat64(),
		Total:           o.Total().InexactFloat64(),
		Note:            o.Note(),
		ShopAddress:     newAddressView(o.ShopAddress()),
		CustomerAddress: newAddressView(o.CustomerAddress()),
	}

	if rider := o.Rider(); rider != nil {
		id := rider.Raw()
		view.Rider = &id
	}
	if p := o.DeliveryPosition(); p != nil {
		view.Delivery = &PositionView{Latitude: p.Latitude(), Longitude: p.Longitude()}
	}

	for _, li := range o.Items() {
		links, err := covers.LineItemCover(ctx, li.ID())
		if err != nil {
			return OrderView{}, err
		}
		view.Items = append(view.Items, LineItemView{
			ID:       li.ItemID().Raw(),
			Name:     li.Name(),
			Cover:    CoverView{Origin: links.Origin, Thumbnail: links.Thumbnail},
			Quantity: li.Quantity(),
			Price:    li.Price().InexactFloat64(),
		})
	}

	return view, nil
}

func newOmittedOrderView(o *order.Order) OmittedOrderView {
	return OmittedOrderView{
		ID:              o.ID().Raw(),
		Status:          o.Status().String(),
		PreparedAt:      o.Timestamps().PreparedAt,
		ShopAddress:     newAddressView(o.ShopAddress()),
		CustomerAddress: newAddressView(o.CustomerAddress()),
	}
}

func newOrderViews(ctx context.Context, orders []*order.Order, covers ports.CoverLinker) ([]OrderView, error) {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v, err := newOrderView(ctx, o, covers)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}
