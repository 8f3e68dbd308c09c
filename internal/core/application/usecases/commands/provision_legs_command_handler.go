package commands

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/ports"
)

// ProvisionLegsCommandHandler creates the missing CREATED legs of an order:
//
//	complete -> FABRIC and GARMENT
//	tailor   -> GARMENT
//	fabric   -> FABRIC
//
// Legs that already exist are kept as they are, so repeating the command is
// harmless. A concurrent provisioning of the same order loses on the store's
// one-leg-per-type constraint with errs.ConflictError.
type ProvisionLegsCommandHandler struct {
	uowFactory LegUoWFactory
	orders     ports.OrderDirectory
	hooks      CommitHooks
}

func NewProvisionLegsCommandHandler(
	uowFactory LegUoWFactory,
	orders ports.OrderDirectory,
	hooks CommitHooks,
) ProvisionLegsCommandHandler {
	return ProvisionLegsCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		hooks:      hooks,
	}
}

// Handle returns every leg of the order after provisioning, FABRIC first.
func (h ProvisionLegsCommandHandler) Handle(ctx context.Context, command ProvisionLegsCommand) ([]*leg.Leg, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	legRepo := uow.LegRepository()

	existing, err := legRepo.ListByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	byType := make(map[leg.Type]*leg.Leg, 2)
	for _, l := range existing {
		byType[l.Type()] = l
	}

	created := make([]*leg.Leg, 0, 2)
	now := time.Now()
	for _, legType := range requiredLegTypes(o.BookingType()) {
		if _, ok := byType[legType]; ok {
			continue
		}

		l, err := leg.NewLeg(kernel.NewUUID(), o.ID(), legType, now)
		if err != nil {
			return nil, err
		}
		if err = legRepo.Add(ctx, l); err != nil {
			return nil, err
		}

		byType[legType] = l
		created = append(created, l)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, l := range created {
		h.hooks.changed(ctx, l.OrderID(), legKind(l.Type()), l.Status().String())
	}

	legs := make([]*leg.Leg, 0, len(byType))
	for _, legType := range []leg.Type{leg.Fabric, leg.Garment} {
		if l, ok := byType[legType]; ok {
			legs = append(legs, l)
		}
	}
	return legs, nil
}

func requiredLegTypes(b order.BookingType) []leg.Type {
	types := make([]leg.Type, 0, 2)
	if b.RequiresFabricLeg() {
		types = append(types, leg.Fabric)
	}
	if b.RequiresGarmentLeg() {
		types = append(types, leg.Garment)
	}
	return types
}
