package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/objectstore"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/clock"
	"marketplace/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
	clock      *clock.Zoned
	covers     *objectstore.CoverLinker
	metrics    *metrics.ServerMetrics
	publisher  *kafka.OrderEventPublisher
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	zoned, err := clock.FromName(config.ShopTimezone)
	if err != nil {
		return nil, err
	}

	covers, err := objectstore.NewCoverLinker(objectstore.Config{
		Endpoint:  config.ObjectStorageEndpoint,
		AccessKey: config.ObjectStorageAccessKey,
		SecretKey: config.ObjectStorageSecretKey,
		Bucket:    config.ObjectStorageBucket,
		Region:    config.ObjectStorageRegion,
		UseSSL:    config.ObjectStorageUseSSL,
		LinkTTL:   config.ObjectStorageLinkTTL,
	})
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      zoned,
		covers:     covers,
		metrics:    metrics.NewServerMetrics(),
	}

	if brokers := kafka.ParseBrokers(config.KafkaHost); len(brokers) > 0 {
		root.publisher = kafka.NewOrderEventPublisher(kafka.NewWriter(brokers, config.KafkaOrderChangedTopic))
	}

	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.lifecycleUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.lifecycleUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.lifecycleUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRelayOrderEventsCommandHandler() commands.RelayOrderEventsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOrderEventsCommandHandler(f, c.publisher, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) readUoWFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

// CreateRouter builds the HTTP surface with every handler wired in.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		ClaimOrder:        c.CreateClaimOrderCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
	}, c.covers, c.metrics)

	return httpin.NewRouter(server, httpin.RouterConfig{
		JWTSecret: []byte(c.config.JWTSecret),
		Logger:    c.logger,
		Metrics:   c.metrics,
	})
}

// CreateJobManager returns the background jobs. The outbox relay runs only
// when a Kafka broker is configured.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	if c.publisher == nil {
		c.logger.Warn("KAFKA_HOST is empty, order events stay in the outbox")
		return jobs.NewJobManager(c.logger), nil
	}

	relayJob, err := jobs.NewOrderEventsRelayJob(c.CreateRelayOrderEventsCommandHandler(), c.config.OutboxRelaySchedule, c.config.OutboxRelayBatch, c.logger)
	if err != nil {
		return nil, fmt.Errorf("order events relay job: %w", err)
	}
	return jobs.NewJobManager(c.logger, relayJob), nil
}

// Close releases external clients.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.publisher != nil {
		errList = append(errList, c.publisher.Close())
	}
	return errors.Join(errList...)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
