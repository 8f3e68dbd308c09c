package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/ports"
)

// DispatchLegCommandHandler moves a leg from CREATED to DISPATCHED.
//
// Two concurrent dispatches of the same leg both load version N; the store
// accepts only the first update and the second caller gets errs.ConflictError.
//
// Example:
//
//	handler := NewDispatchLegCommandHandler(uowFactory, orders, hooks)
//	l, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // already dispatched
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown leg, or not owned by the actor
//	}
type DispatchLegCommandHandler struct {
	uowFactory LegUoWFactory
	orders     ports.OrderDirectory
	hooks      CommitHooks
}

func NewDispatchLegCommandHandler(
	uowFactory LegUoWFactory,
	orders ports.OrderDirectory,
	hooks CommitHooks,
) DispatchLegCommandHandler {
	return DispatchLegCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		hooks:      hooks,
	}
}

// Handle dispatches the leg and returns its new state.
func (h DispatchLegCommandHandler) Handle(ctx context.Context, command DispatchLegCommand) (*leg.Leg, error) {
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

	if err = l.Dispatch(command.CourierName(), command.TrackingID(), time.Now()); err != nil {
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
