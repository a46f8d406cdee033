package commands

import (
	"context"
)

// UpdateClientCommandHandler loads a client, applies the new fields and saves it.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) error {
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

	clientRepo := uow.ClientRepository()
	clientEntity, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = clientEntity.Update(cmd.Name(), cmd.Surname(), cmd.Address(), cmd.Phone()); err != nil {
		return err
	}

	if err = clientRepo.Update(ctx, clientEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
