package http

import (
	"context"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	ClaimOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ClaimOrderCommand) (*order.Order, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error)
	}
	TransitionRecorder interface {
		TransitionInc(to string)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler
	ClaimOrder        ClaimOrderHandler
	DeleteOrder       DeleteOrderHandler
	GetOrder          GetOrderHandler
	ListOrders        ListOrdersHandler
}

// Server translates HTTP requests into commands and queries and renders
// their results. Errors are returned to echo and rendered by NewErrorHandler.
type Server struct {
	handlers    Handlers
	covers      ports.CoverLinker
	transitions TransitionRecorder
}

func NewServer(handlers Handlers, covers ports.CoverLinker, transitions TransitionRecorder) *Server {
	return &Server{
		handlers:    handlers,
		covers:      covers,
		transitions: transitions,
	}
}

type CreateOrderRequest struct {
	ShopID    string `json:"shopId"    validate:"required,uuid"`
	AddressID string `json:"addressId" validate:"required,uuid"`
	Note      string `json:"note"      validate:"max=100"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unpaid preparing prepared delivering finished canceled"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actorID, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	shopID, err := kernel.UUIDFromString(req.ShopID)
	if err != nil {
		return err
	}
	addressID, err := kernel.UUIDFromString(req.AddressID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), actorID, shopID, addressID, req.Note)
	if err != nil {
		return err
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	view, err := newOrderView(c.Request().Context(), o, s.covers)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	return s.listOrders(c, queries.ScopeAll, kernel.UUID{})
}

// ListOrdersAsCustomer handles GET /api/v1/orders/as-customer.
func (s *Server) ListOrdersAsCustomer(c echo.Context) error {
	return s.listOrders(c, queries.ScopeCustomer, kernel.UUID{})
}

// ListOrdersAsRider handles GET /api/v1/orders/as-rider.
func (s *Server) ListOrdersAsRider(c echo.Context) error {
	return s.listOrders(c, queries.ScopeRider, kernel.UUID{})
}

// ListOrdersAsShop handles GET /api/v1/orders/as-shop/:shopId.
func (s *Server) ListOrdersAsShop(c echo.Context) error {
	shopID, err := pathUUID(c, "shopId")
	if err != nil {
		return err
	}
	return s.listOrders(c, queries.ScopeShop, shopID)
}

func (s *Server) listOrders(c echo.Context, scope queries.ListScope, shopID kernel.UUID) error {
	actorID, err := actorFrom(c)
	if err != nil {
		return err
	}

	var page, pageSize int
	if err := runtime.BindQueryParameter("form", true, false, "p", c.QueryParams(), &page); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid parameter \"p\"")
	}
	if err := runtime.BindQueryParameter("form", true, false, "pn", c.QueryParams(), &pageSize); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid parameter \"pn\"")
	}

	var status *order.Status
	var label string
	if err := runtime.BindQueryParameter("form", true, false, "s", c.QueryParams(), &label); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid parameter \"s\"")
	}
	if label != "" {
		parsed, err := order.ParseStatus(label)
		if err != nil {
			return err
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(actorID, scope, shopID, page, pageSize, status)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	views, err := newOrderViews(c.Request().Context(), orders, s.covers)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	actorID, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(actorID, orderID)
	if err != nil {
		return err
	}

	resp, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	if resp.Redacted {
		return c.JSON(http.StatusOK, newOmittedOrderView(resp.Order))
	}
	view, err := newOrderView(c.Request().Context(), resp.Order, s.covers)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// ClaimOrder handles PATCH /api/v1/orders/:id/rider.
func (s *Server) ClaimOrder(c echo.Context) error {
	actorID, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewClaimOrderCommand(actorID, orderID)
	if err != nil {
		return err
	}

	o, err := s.handlers.ClaimOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.renderTransition(c, o)
}

// SetOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) SetOrderStatus(c echo.Context) error {
	actorID, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actorID, orderID, status)
	if err != nil {
		return err
	}

	o, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return s.renderTransition(c, o)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	actorID, err := actorFrom(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(actorID, orderID)
	if err != nil {
		return err
	}

	if err := s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) renderTransition(c echo.Context, o *order.Order) error {
	s.transitions.TransitionInc(o.Status().String())

	view, err := newOrderView(c.Request().Context(), o, s.covers)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid parameter \""+name+"\"")
	}
	return kernel.UUIDFromGoogle(raw)
}
