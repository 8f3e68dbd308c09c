package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/legacy"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"
)

// AdvanceLegacyDeliveryCommandHandler updates orders that only exist in the
// legacy schema. The record's overall status is re-derived by the aggregate,
// never taken from the caller. A record whose sub-state belongs to another
// actor is reported as not found.
type AdvanceLegacyDeliveryCommandHandler struct {
	uowFactory LegacyUoWFactory
	orders     ports.OrderDirectory
	hooks      CommitHooks
}

func NewAdvanceLegacyDeliveryCommandHandler(
	uowFactory LegacyUoWFactory,
	orders ports.OrderDirectory,
	hooks CommitHooks,
) AdvanceLegacyDeliveryCommandHandler {
	return AdvanceLegacyDeliveryCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		hooks:      hooks,
	}
}

func (h AdvanceLegacyDeliveryCommandHandler) Handle(
	ctx context.Context,
	command AdvanceLegacyDeliveryCommand,
) (*legacy.Record, error) {
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

	repo := uow.LegacyRecordRepository()

	record, err := repo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}
	if err = authorizeLegacyActor(ctx, h.orders, command.Actor(), record.OrderID(), command.Phase()); err != nil {
		return nil, err
	}

	fields := command.Fields()
	now := time.Now()
	var status string
	if command.Phase() == tracking.LegKindFabric {
		status = command.FabricStatus().String()
		err = record.AdvanceVendor(legacy.VendorUpdate{
			Status:            command.FabricStatus(),
			TrackingNumber:    fields.TrackingNumber,
			CourierName:       fields.CourierName,
			EstimatedDelivery: fields.EstimatedDelivery,
			Notes:             fields.Notes,
		}, now)
	} else {
		status = command.GarmentStatus().String()
		err = record.AdvanceTailor(legacy.TailorUpdate{
			Status:         command.GarmentStatus(),
			DeliveryMethod: fields.DeliveryMethod,
			TrackingNumber: fields.TrackingNumber,
			CourierName:    fields.CourierName,
			Notes:          fields.Notes,
		}, now)
	}
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.hooks.changed(ctx, record.OrderID(), command.Phase(), status)
	return record, nil
}
