package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterConfig struct {
	JWTSecret []byte
	Logger    *slog.Logger
	Metrics   *metrics.ServerMetrics
}

// NewRouter wires the API routes, documentation and operational endpoints.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validateRequest, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)
	e.Validator = newRequestValidator()

	e.Use(middleware.Recover())
	e.Use(instrument(cfg.Metrics))
	e.Use(requestLogger(cfg.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics.Handler()))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", OpenAPISpec())
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yaml")))

	api := e.Group("/api/v1", BearerAuth(cfg.JWTSecret), validateRequest)
	api.POST("/orders", server.CreateOrder)
	api.GET("/orders", server.ListOrders)
	api.GET("/orders/as-customer", server.ListOrdersAsCustomer)
	api.GET("/orders/as-rider", server.ListOrdersAsRider)
	api.GET("/orders/as-shop/:shopId", server.ListOrdersAsShop)
	api.GET("/orders/:id", server.GetOrder)
	api.DELETE("/orders/:id", server.DeleteOrder)
	api.PATCH("/orders/:id/rider", server.ClaimOrder)
	api.PATCH("/orders/:id/status", server.SetOrderStatus)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "Request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "Request handled", attrs...)
			return nil
		},
	})
}

// instrument counts requests per route template and status. Errors are
// rendered before the status is read.
func instrument(m *metrics.ServerMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			handler := c.Request().Method + " " + c.Path()
			status := strconv.Itoa(c.Response().Status)
			m.Requests.WithLabelValues(handler, status).Inc()
			m.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
			return nil
		}
	}
}
