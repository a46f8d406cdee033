// Package http exposes the order service as a JSON/form API on echo.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateClient     CommandHandler[commands.CreateClientCommand]
	UpdateClient     CommandHandler[commands.UpdateClientCommand]
	DeleteClient     CommandHandler[commands.DeleteClientCommand]
	CreateRestaurant CommandHandler[commands.CreateRestaurantCommand]
	UpdateRestaurant CommandHandler[commands.UpdateRestaurantCommand]
	DeleteRestaurant CommandHandler[commands.DeleteRestaurantCommand]
	CreateOrder      CommandHandler[commands.CreateOrderCommand]
	ChangeStatus     CommandHandler[commands.ChangeOrderStatusCommand]

	GetClients       QueryHandler[queries.GetClientsQuery, []queries.ClientView]
	GetClient        QueryHandler[queries.GetClientQuery, queries.ClientView]
	GetRestaurants   QueryHandler[queries.GetRestaurantsQuery, []queries.RestaurantView]
	GetRestaurant    QueryHandler[queries.GetRestaurantQuery, queries.RestaurantView]
	GetOrders        QueryHandler[queries.GetOrdersQuery, []queries.OrderView]
	GetOrder         QueryHandler[queries.GetOrderQuery, queries.OrderView]
	GetOrderFormOpts QueryHandler[queries.GetOrderFormOptionsQuery, queries.OrderFormOptions]
}

// Server turns HTTP requests into commands and queries.
type Server struct {
	handlers     Handlers
	optionsCache queries.OrderFormOptionsCache
	logger       *slog.Logger
}

// NewServer builds the API. optionsCache may be nil; when set it is invalidated
// after every client or restaurant change.
func NewServer(handlers Handlers, optionsCache queries.OrderFormOptionsCache, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers:     handlers,
		optionsCache: optionsCache,
		logger:       logger.With("component", "http"),
	}
}

// Register mounts the health check and the /api/v1 routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")

	api.GET("/clients", s.GetClients)
	api.POST("/clients", s.CreateClient)
	api.GET("/clients/:id", s.GetClient)
	api.PUT("/clients/:id", s.UpdateClient)
	api.DELETE("/clients/:id", s.DeleteClient)

	api.GET("/restaurants", s.GetRestaurants)
	api.POST("/restaurants", s.CreateRestaurant)
	api.GET("/restaurants/:id", s.GetRestaurant)
	api.PUT("/restaurants/:id", s.UpdateRestaurant)
	api.DELETE("/restaurants/:id", s.DeleteRestaurant)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/export", s.ExportOrders)
	api.GET("/orders/options", s.GetOrderFormOptions)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders", s.CreateOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
}

// NewEcho returns an echo instance with recovery and slog request logging.
func NewEcho(logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(requestLogger(logger))
	e.Use(recoverer())
	return e
}

func (s *Server) invalidateOptions(c echo.Context) {
	if s.optionsCache == nil {
		return
	}
	ctx := c.Request().Context()
	if err := s.optionsCache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate order form options", "error", err)
	}
}
