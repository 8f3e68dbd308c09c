package queries

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
)

// GetLegsForActorQueryHandler filters the order pool with the AssignmentMatcher
// and returns the matching orders' legs of the requested type. Orders owned by
// somebody else are left out silently.
type GetLegsForActorQueryHandler struct {
	orders  ports.OrderDirectory
	legs    ports.LegReader
	matcher services.AssignmentMatcher
}

func NewGetLegsForActorQueryHandler(orders ports.OrderDirectory, legs ports.LegReader) GetLegsForActorQueryHandler {
	return GetLegsForActorQueryHandler{
		orders:  orders,
		legs:    legs,
		matcher: services.NewAssignmentMatcher(),
	}
}

func (h GetLegsForActorQueryHandler) Handle(ctx context.Context, query GetLegsForActorQuery) ([]LegResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pool, err := h.orders.All(ctx)
	if err != nil {
		return nil, err
	}

	owned := h.matcher.OrdersOwnedBy(query.ActorID(), query.LegType(), pool)
	if len(owned) == 0 {
		return []LegResponse{}, nil
	}

	orderIDs := make([]kernel.UUID, 0, len(owned))
	for _, o := range owned {
		orderIDs = append(orderIDs, o.ID())
	}

	legs, err := h.legs.ListByOrders(ctx, orderIDs, query.LegType())
	if err != nil {
		return nil, err
	}

	return newLegResponses(legs), nil
}
