package rediscache_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/rediscache"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type OrderFormOptionsCacheTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
}

func (suite *OrderFormOptionsCacheTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	rdb, err := rediscache.Connect(ctx, "redis://"+endpoint+"/0")
	suite.Require().NoError(err)
	suite.rdb = rdb
}

func (suite *OrderFormOptionsCacheTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		suite.Require().NoError(suite.rdb.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderFormOptionsCacheTestSuite) SetupTest() {
	suite.Require().NoError(suite.rdb.FlushDB(context.Background()).Err())
}

func (suite *OrderFormOptionsCacheTestSuite) TestMissSetHitInvalidate() {
	ctx := context.Background()
	cache := rediscache.NewOrderFormOptionsCache(suite.rdb, time.Minute)

	_, found, err := cache.Get(ctx)
	suite.Require().NoError(err)
	suite.False(found)

	options := queries.OrderFormOptions{
		Restaurants: []queries.RestaurantView{{
			ID: kernel.NewUUID(), Name: "Green Fork", Address: "1 Market Square", Phone: "912 345 678", Initials: "GF",
		}},
		Clients: []queries.ClientView{{
			ID: kernel.NewUUID(), Name: "Ada", Surname: "Lovelace", Address: "12 Analytical Street", Phone: "612345678", Initials: "AL",
		}},
		Statuses: queries.StatusCatalogue(),
	}
	suite.Require().NoError(cache.Set(ctx, options))

	got, found, err := cache.Get(ctx)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(options, got)

	ttl, err := suite.rdb.TTL(ctx, "orderdesk:order-form-options").Result()
	suite.Require().NoError(err)
	suite.Positive(ttl)

	suite.Require().NoError(cache.Invalidate(ctx))
	_, found, err = cache.Get(ctx)
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *OrderFormOptionsCacheTestSuite) TestCorruptValue() {
	ctx := context.Background()
	suite.Require().NoError(suite.rdb.Set(ctx, "orderdesk:order-form-options", "not json", 0).Err())

	_, found, err := rediscache.NewOrderFormOptionsCache(suite.rdb, time.Minute).Get(ctx)

	suite.Require().Error(err)
	suite.False(found)
}

func (suite *OrderFormOptionsCacheTestSuite) TestConnect_BadURL() {
	_, err := rediscache.Connect(context.Background(), "mysql://nope")
	suite.Require().Error(err)
}

func TestOrderFormOptionsCacheTestSuite(t *testing.T) {
	suite.Run(t, new(OrderFormOptionsCacheTestSuite))
}
