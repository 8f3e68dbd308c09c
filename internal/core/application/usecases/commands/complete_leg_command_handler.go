package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/ports"
)

// CompleteLegCommandHandler moves a leg from DISPATCHED to DELIVERED. A second
// completion fails with errs.ConflictError and leaves deliveredAt untouched.
type CompleteLegCommandHandler struct {
	uowFactory LegUoWFactory
	orders     ports.OrderDirectory
	hooks      CommitHooks
}

func NewCompleteLegCommandHandler(
	uowFactory LegUoWFactory,
	orders ports.OrderDirectory,
	hooks CommitHooks,
) CompleteLegCommandHandler {
	return CompleteLegCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		hooks:      hooks,
	}
}

func (h CompleteLegCommandHandler) Handle(ctx context.Context, command CompleteLegCommand) (*leg.Leg, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	legRepo := uow.LegRepository()

	l, err := legRepo.Get(ctx, command.LegID())
	if err != nil {
		return nil, err
	}

	if err = authorizeActor(ctx, h.orders, command.Actor(), l); err != nil {
		return nil, err
	}

	if err = l.Complete(time.Now()); err != nil {
		return nil, err
	}

	if err = legRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.hooks.changed(ctx, l.OrderID(), legKind(l.Type()), l.Status().String())
	return l, nil
}
