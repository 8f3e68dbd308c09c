package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"
)

// MarkLegReadyCommandHandler marks a CREATED garment leg ready for delivery.
type MarkLegReadyCommandHandler struct {
	uowFactory LegUoWFactory
	orders     ports.OrderDirectory
	hooks      CommitHooks
}

func NewMarkLegReadyCommandHandler(
	uowFactory LegUoWFactory,
	orders ports.OrderDirectory,
	hooks CommitHooks,
) MarkLegReadyCommandHandler {
	return MarkLegReadyCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		hooks:      hooks,
	}
}

func (h MarkLegReadyCommandHandler) Handle(ctx context.Context, command MarkLegReadyCommand) (*leg.Leg, error) {
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

	if err = l.MarkReady(command.DeliveryMethod(), time.Now()); err != nil {
		return nil, err
	}

	if err = legRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.hooks.changed(ctx, l.OrderID(), legKind(l.Type()), tracking.GarmentReadyForDelivery.String())
	return l, nil
}
