package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpapi "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/messaging"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/rediscache"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	lifecycle    services.OrderLifecycle
	optionsCache queries.OrderFormOptionsCache
	logger       *slog.Logger
}

// NewCompositionRoot wires the use cases. publisher and optionsCache are optional.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	optionsCache queries.OrderFormOptionsCache,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		lifecycle:    services.NewOrderLifecycle(time.Now),
		optionsCache: optionsCache,
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	return commands.NewCreateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	return commands.NewUpdateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	return commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRestaurantCommandHandler() commands.UpdateRestaurantCommandHandler {
	return commands.NewUpdateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	return commands.NewDeleteRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.lifecycle)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.lifecycle)
}

func (c *CompositionRoot) CreateGetClientsQueryHandler() queries.GetClientsQueryHandler {
	return queries.NewGetClientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientQueryHandler() queries.GetClientQueryHandler {
	return queries.NewGetClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.gormDB)
}

// CreateGetOrderFormOptionsQueryHandler goes through Redis when a cache is configured.
func (c *CompositionRoot) CreateGetOrderFormOptionsQueryHandler() queries.OrderFormOptionsHandler {
	handler := queries.NewGetOrderFormOptionsQueryHandler(c.gormDB)
	if c.optionsCache == nil {
		return handler
	}
	return queries.NewCachedOrderFormOptionsQueryHandler(handler, c.optionsCache, c.logger)
}

// CreateHTTPServer builds the API on top of every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpapi.Server {
	createClient := c.CreateCreateClientCommandHandler()
	updateClient := c.CreateUpdateClientCommandHandler()
	deleteClient := c.CreateDeleteClientCommandHandler()
	createRestaurant := c.CreateCreateRestaurantCommandHandler()
	updateRestaurant := c.CreateUpdateRestaurantCommandHandler()
	deleteRestaurant := c.CreateDeleteRestaurantCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()

	return httpapi.NewServer(httpapi.Handlers{
		CreateClient:     &createClient,
		UpdateClient:     &updateClient,
		DeleteClient:     &deleteClient,
		CreateRestaurant: &createRestaurant,
		UpdateRestaurant: &updateRestaurant,
		DeleteRestaurant: &deleteRestaurant,
		CreateOrder:      &createOrder,
		ChangeStatus:     &changeStatus,
		GetClients:       c.CreateGetClientsQueryHandler(),
		GetClient:        c.CreateGetClientQueryHandler(),
		GetRestaurants:   c.CreateGetRestaurantsQueryHandler(),
		GetRestaurant:    c.CreateGetRestaurantQueryHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetOrderFormOpts: c.CreateGetOrderFormOptionsQueryHandler(),
	}, c.optionsCache, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderBacklogQueryHandler(), c.config.BacklogCron, c.logger)
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

// NewEventPublisher connects to the broker selected by EVENTS_BROKER.
// It returns a nil publisher and a no-op close for "none".
func NewEventPublisher(config Config, logger *slog.Logger) (ports.EventPublisher, func() error, error) {
	switch config.EventsBroker {
	case BrokerRabbitMQ:
		publisher, err := messaging.NewRabbitMQPublisher(config.RabbitMQURL, config.RabbitMQExchange, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create rabbitmq publisher: %w", err)
		}
		return publisher, publisher.Close, nil
	case BrokerKafka:
		publisher := messaging.NewKafkaPublisher(config.KafkaBrokers(), config.KafkaOrderChangedTopic, logger)
		return publisher, publisher.Close, nil
	default:
		return nil, func() error { return nil }, nil
	}
}

// NewOptionsCache connects to Redis when REDIS_URL is set.
// The close function is always safe to call.
func NewOptionsCache(ctx context.Context, config Config) (queries.OrderFormOptionsCache, func() error, error) {
	if config.RedisURL == "" {
		return nil, func() error { return nil }, nil
	}

	rdb, err := rediscache.Connect(ctx, config.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return rediscache.NewOrderFormOptionsCache(rdb, config.OptionsCacheDuration()), rdb.Close, nil
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
