package commands_test

import (
	"errors"
	"testing"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/domain/model/client"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateClientCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateClientCommand(" Ada ", "Lovelace", "12 Baker Street", "612-345-678")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.NoError(t, cmd.ClientID().Validate())
	assert.Equal(t, "Ada", cmd.Name())
	assert.Equal(t, "Lovelace", cmd.Surname())
	assert.Equal(t, "12 Baker Street", cmd.Address())
	assert.Equal(t, "612345678", cmd.Phone().Digits())
}

func TestNewCreateClientCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name     string
		first    string
		surname  string
		address  string
		phone    string
		expected error
	}{
		{"empty name", "", "Lovelace", "12 Baker Street", "612345678", errs.ErrValueIsRequired},
		{"short surname", "Ada", "L", "12 Baker Street", "612345678", errs.ErrValueIsOutOfRange},
		{"short address", "Ada", "Lovelace", "Home", "612345678", errs.ErrValueIsOutOfRange},
		{"short phone", "Ada", "Lovelace", "12 Baker Street", "12345", errs.ErrValueIsOutOfRange},
		{"long phone", "Ada", "Lovelace", "12 Baker Street", "1234567890123", errs.ErrValueIsOutOfRange},
		{"missing phone", "Ada", "Lovelace", "12 Baker Street", " ", errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := commands.NewCreateClientCommand(tc.first, tc.surname, tc.address, tc.phone)

			require.ErrorIs(t, err, tc.expected)
			assert.True(t, errs.IsInvalidInput(err))
			require.ErrorIs(t, cmd.Validate(), commands.ErrCreateClientCommandIsNotConstructed)
		})
	}
}

func TestNewUpdateClientCommand_InvalidID(t *testing.T) {
	_, err := commands.NewUpdateClientCommand(kernel.UUID{}, "Ada", "Lovelace", "12 Baker Street", "612345678")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewDeleteClientCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteClientCommand(id)
	require.NoError(t, err)
	assert.True(t, id.IsEqual(cmd.ClientID()))

	_, err = commands.NewDeleteClientCommand(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateClientCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateClientCommand("Ada", "Lovelace", "12 Baker Street", "612345678")
	require.NoError(t, err)

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockClientUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(c *client.Client) bool {
			return c.ID().IsEqual(cmd.ClientID()) && c.FullName() == "Ada Lovelace"
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateClientCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_InvalidCommand(t *testing.T) {
	mockFactory := new(MockClientUoWFactory)
	handler := commands.NewCreateClientCommandHandler(mockFactory)

	err := handler.Handle(t.Context(), commands.CreateClientCommand{})

	require.ErrorIs(t, err, commands.ErrCreateClientCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateClientCommand("Ada", "Lovelace", "12 Baker Street", "612345678")
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockUoW)
	mockFactory := new(MockClientUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateClientCommandHandler(mockFactory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, expectedError)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateClientCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateClientCommand("Ada", "Lovelace", "12 Baker Street", "612345678")
	require.NoError(t, err)

	expectedError := errs.NewStoreFailureError("add client", errors.New("connection reset"))
	mockRepo := new(MockClientRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockClientUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.Anything).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateClientCommandHandler(mockFactory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStoreFailure)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestUpdateClientCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	phone, err := kernel.NewPhone("612345678")
	require.NoError(t, err)
	existing, err := client.NewClient(kernel.NewUUID(), "Ada", "Lovelace", "12 Baker Street", phone)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateClientCommand(existing.ID(), "Ada", "King", "1 St James's Square", "+44 20 7946 0958")
	require.NoError(t, err)

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockClientUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once(),
		mockRepo.On("Update", ctx, existing).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateClientCommandHandler(mockFactory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Ada King", existing.FullName())
	assert.Equal(t, "1 St James's Square", existing.Address())
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestUpdateClientCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateClientCommand(id, "Ada", "King", "1 St James's Square", "612345678")
	require.NoError(t, err)

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockClientUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, id).Return((*client.Client)(nil), errs.NewObjectNotFoundError("client", id)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUpdateClientCommandHandler(mockFactory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	mockUoW.AssertExpectations(t)
}

func TestDeleteClientCommandHandler_Handle_CascadesOrders(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteClientCommand(id)
	require.NoError(t, err)

	mockClients := new(MockClientRepository)
	mockOrders := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockClientUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrders).Once(),
		mockOrders.On("DeleteByClient", ctx, id).Return(int64(2), nil).Once(),
		mockUoW.On("ClientRepository").Return(mockClients).Once(),
		mockClients.On("Delete", ctx, id).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteClientCommandHandler(mockFactory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
	mockClients.AssertExpectations(t)
}

func TestDeleteClientCommandHandler_Handle_UnknownClientRollsBack(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteClientCommand(id)
	require.NoError(t, err)

	mockClients := new(MockClientRepository)
	mockOrders := new(MockOrderRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockClientUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrders).Once(),
		mockOrders.On("DeleteByClient", ctx, id).Return(int64(0), nil).Once(),
		mockUoW.On("ClientRepository").Return(mockClients).Once(),
		mockClients.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("client", id)).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewDeleteClientCommandHandler(mockFactory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
}
