package commands

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// authorizeActor checks that actor owns l. A nil actor means the caller is a
// trusted back-office collaborator. Legs owned by somebody else are reported
// as not found so their existence is not disclosed.
func authorizeActor(ctx context.Context, orders ports.OrderDirectory, actor *kernel.ActorID, l *leg.Leg) error {
	return authorizeOwner(ctx, orders, actor, l.OrderID(), l.Type(), errs.NewObjectNotFoundError("legId", l.ID()))
}

// authorizeLegacyActor applies the same rule to a legacy sub-state: vendor
// dispatch belongs to the seller, tailor delivery to the tailor.
func authorizeLegacyActor(
	ctx context.Context,
	orders ports.OrderDirectory,
	actor *kernel.ActorID,
	orderID kernel.UUID,
	phase tracking.LegKind,
) error {
	legType := leg.Garment
	if phase == tracking.LegKindFabric {
		legType = leg.Fabric
	}
	return authorizeOwner(ctx, orders, actor, orderID, legType, errs.NewObjectNotFoundError("orderId", orderID))
}

func authorizeOwner(
	ctx context.Context,
	orders ports.OrderDirectory,
	actor *kernel.ActorID,
	orderID kernel.UUID,
	legType leg.Type,
	notFound error,
) error {
	if actor == nil {
		return nil
	}

	o, err := orders.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound
	}
	if err != nil {
		return err
	}

	if !services.NewAssignmentMatcher().Owns(*actor, legType, o) {
		return notFound
	}
	return nil
}
