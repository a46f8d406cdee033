package commands

import (
	"context"
)

// DeleteClientCommandHandler cascades a client deletion.
//
// Business rules:
//   - Orders referencing the client are deleted first, in the same transaction
//   - An unknown client id rolls the whole operation back with ObjectNotFoundError
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
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

	if _, err := uow.OrderRepository().DeleteByClient(ctx, cmd.ClientID()); err != nil {
		return err
	}

	if err := uow.ClientRepository().Delete(ctx, cmd.ClientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
