package commands

import (
	"context"

	"orderdesk/internal/core/domain/model/client"
)

// CreateClientCommandHandler persists new clients.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the Client aggregate and adds it within a transaction.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientEntity, err := client.NewClient(cmd.ClientID(), cmd.Name(), cmd.Surname(), cmd.Address(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = uow.ClientRepository().Add(ctx, clientEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
