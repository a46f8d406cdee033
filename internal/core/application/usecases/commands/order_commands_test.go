package commands_test

import (
	"testing"
	"time"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/model/restaurant"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.June, 1, 18, 0, 0, 0, time.UTC)

func fixedLifecycle() services.OrderLifecycle {
	return services.NewOrderLifecycle(func() time.Time { return now })
}

func mustItem(t *testing.T, quantity int, unitPrice int64, description string) order.Item {
	t.Helper()
	item, err := order.NewItem(quantity, decimal.NewFromInt(unitPrice), description)
	require.NoError(t, err)
	return item
}

func TestNewCreateOrderCommand(t *testing.T) {
	restaurantID := kernel.NewUUID()
	clientID := kernel.NewUUID()
	items := []order.Item{mustItem(t, 2, 10, "Pizza"), mustItem(t, 1, 5, "Soda")}

	t.Run("defaults status to pending", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(restaurantID, clientID, order.Unknown, items)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, cmd.Status())
		assert.Len(t, cmd.Items(), 2)
		require.NoError(t, cmd.OrderID().Validate())
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(restaurantID, clientID, order.InProgress, items)

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, cmd.Status())
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(restaurantID, clientID, order.Pending, nil)

		require.ErrorIs(t, err, commands.ErrItemsAreRequired)
		assert.True(t, errs.IsInvalidInput(err))
	})

	t.Run("rejects unconstructed items", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(restaurantID, clientID, order.Pending, []order.Item{{}})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("rejects missing references", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, order.Pending, items)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "restaurant id")
		assert.Contains(t, err.Error(), "client id")
	})

	t.Run("items are copied", func(t *testing.T) {
		input := []order.Item{mustItem(t, 1, 10, "Salad")}
		cmd, err := commands.NewCreateOrderCommand(restaurantID, clientID, order.Pending, input)
		require.NoError(t, err)

		input[0] = mustItem(t, 5, 50, "Steak")
		assert.Equal(t, "Salad", cmd.Items()[0].Description())
	})
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	phone, err := kernel.NewPhone("612345678")
	require.NoError(t, err)
	existingClient, err := client.NewClient(kernel.NewUUID(), "Ada", "Lovelace", "12 Baker Street", phone)
	require.NoError(t, err)
	existingRestaurant, err := restaurant.NewRestaurant(kernel.NewUUID(), "La Trattoria", "5 Market Square", phone)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(existingRestaurant.ID(), existingClient.ID(), order.Pending,
		[]order.Item{mustItem(t, 2, 10, "Pizza"), mustItem(t, 1, 5, "Soda")})
	require.NoError(t, err)

	mockClients := new(MockClientRepository)
	mockRestaurants := new(MockRestaurantRepository)
	mockOrders := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	var added *order.Order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockClients).Once(),
		mockClients.On("Get", ctx, existingClient.ID()).Return(existingClient, nil).Once(),
		mockUoW.On("RestaurantRepository").Return(mockRestaurants).Once(),
		mockRestaurants.On("Get", ctx, existingRestaurant.ID()).Return(existingRestaurant, nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrders).Once(),
		mockOrders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory, fixedLifecycle())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, cmd.OrderID().IsEqual(added.ID()))
	assert.Equal(t, "25", added.Total().String())
	assert.Equal(t, now, added.CreatedAt())
	assert.Nil(t, added.CompletedAt())
	mockUoW.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownClient(t *testing.T) {
	ctx := t.Context()
	clientID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), clientID, order.Pending,
		[]order.Item{mustItem(t, 1, 10, "Salad")})
	require.NoError(t, err)

	mockClients := new(MockClientRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockClients).Once(),
		mockClients.On("Get", ctx, clientID).
			Return((*client.Client)(nil), errs.NewObjectNotFoundError("client", clientID)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory, fixedLifecycle())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertNotCalled(t, "OrderRepository")
	mockUoW.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	newStored := func(t *testing.T, status order.Status) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), status,
			[]order.Item{mustItem(t, 1, 10, "Salad")}, now.Add(-time.Hour))
		require.NoError(t, err)
		o.ClearDomainEvents()
		return o
	}

	t.Run("in progress to completed stamps completedAt", func(t *testing.T) {
		ctx := t.Context()
		stored := newStored(t, order.InProgress)
		cmd, err := commands.NewChangeOrderStatusCommand(stored.ID(), order.Completed)
		require.NoError(t, err)

		mockOrders := new(MockOrderRepository)
		mockUoW := new(MockUoW)
		mockFactory := new(MockOrderUoWFactory)
		mock.InOrder(
			mockUoW.On("Begin", ctx).Return(nil).Once(),
			mockUoW.On("OrderRepository").Return(mockOrders).Once(),
			mockOrders.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
			mockOrders.On("UpdateStatus", ctx, stored).Return(nil).Once(),
			mockUoW.On("Commit", ctx).Return(nil).Once(),
			mockUoW.On("Rollback", ctx).Return(nil).Once(),
		)
		mockFactory.On("Create").Return(mockUoW).Once()

		handler := commands.NewChangeOrderStatusCommandHandler(mockFactory, fixedLifecycle())
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, stored.Status())
		require.NotNil(t, stored.CompletedAt())
		assert.Equal(t, now, *stored.CompletedAt())
		mockOrders.AssertExpectations(t)
		mockUoW.AssertExpectations(t)
	})

	t.Run("illegal transition writes nothing", func(t *testing.T) {
		ctx := t.Context()
		stored := newStored(t, order.InProgress)
		cmd, err := commands.NewChangeOrderStatusCommand(stored.ID(), order.Pending)
		require.NoError(t, err)

		mockOrders := new(MockOrderRepository)
		mockUoW := new(MockUoW)
		mockFactory := new(MockOrderUoWFactory)
		mock.InOrder(
			mockUoW.On("Begin", ctx).Return(nil).Once(),
			mockUoW.On("OrderRepository").Return(mockOrders).Once(),
			mockOrders.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
			mockUoW.On("Rollback", ctx).Return(nil).Once(),
		)
		mockFactory.On("Create").Return(mockUoW).Once()

		handler := commands.NewChangeOrderStatusCommandHandler(mockFactory, fixedLifecycle())
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.InProgress, stored.Status())
		mockOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
		mockUoW.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		ctx := t.Context()
		stored := newStored(t, order.Completed)
		completedAt := *stored.CompletedAt()
		cmd, err := commands.NewChangeOrderStatusCommand(stored.ID(), order.Completed)
		require.NoError(t, err)

		mockOrders := new(MockOrderRepository)
		mockUoW := new(MockUoW)
		mockFactory := new(MockOrderUoWFactory)
		mock.InOrder(
			mockUoW.On("Begin", ctx).Return(nil).Once(),
			mockUoW.On("OrderRepository").Return(mockOrders).Once(),
			mockOrders.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
			mockUoW.On("Rollback", ctx).Return(nil).Once(),
		)
		mockFactory.On("Create").Return(mockUoW).Once()

		handler := commands.NewChangeOrderStatusCommandHandler(mockFactory, fixedLifecycle())
		err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, completedAt, *stored.CompletedAt())
		mockOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("unknown order", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewChangeOrderStatusCommand(id, order.Completed)
		require.NoError(t, err)

		mockOrders := new(MockOrderRepository)
		mockUoW := new(MockUoW)
		mockFactory := new(MockOrderUoWFactory)
		mock.InOrder(
			mockUoW.On("Begin", ctx).Return(nil).Once(),
			mockUoW.On("OrderRepository").Return(mockOrders).Once(),
			mockOrders.On("Get", ctx, id).Return((*order.Order)(nil), errs.NewObjectNotFoundError("order", id)).Once(),
			mockUoW.On("Rollback", ctx).Return(nil).Once(),
		)
		mockFactory.On("Create").Return(mockUoW).Once()

		handler := commands.NewChangeOrderStatusCommandHandler(mockFactory, fixedLifecycle())
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewChangeOrderStatusCommand_Invalid(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.Pending)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero commands.ChangeOrderStatusCommand
	require.ErrorIs(t, zero.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
