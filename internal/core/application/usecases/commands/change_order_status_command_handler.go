package commands

import (
	"context"

	"orderdesk/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler applies a status change to a stored order.
//
// Business rules:
//   - Illegal transitions fail with InvalidTransitionError before anything is written
//   - Requesting the current status is a no-op and writes nothing
//   - Only status and completion time are persisted
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	lifecycle  services.OrderLifecycle
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	lifecycle services.OrderLifecycle,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := existing.Status()
	if err = h.lifecycle.ApplyStatusChange(existing, cmd.Status()); err != nil {
		return err
	}

	if existing.Status() == previous {
		return nil
	}

	if err = orderRepo.UpdateStatus(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
