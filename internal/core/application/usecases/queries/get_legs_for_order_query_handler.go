package queries

import (
	"context"

	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/ports"
)

// GetLegsForOrderQueryHandler lists an order's legs. An order without legs
// yields an empty list.
type GetLegsForOrderQueryHandler struct {
	legs ports.LegReader
}

func NewGetLegsForOrderQueryHandler(legs ports.LegReader) GetLegsForOrderQueryHandler {
	return GetLegsForOrderQueryHandler{legs: legs}
}

func (h GetLegsForOrderQueryHandler) Handle(ctx context.Context, query GetLegsForOrderQuery) ([]LegResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	legs, err := h.legs.ListByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	if query.LegType() == nil {
		return newLegResponses(legs), nil
	}

	filtered := make([]*leg.Leg, 0, len(legs))
	for _, l := range legs {
		if l.Type() == *query.LegType() {
			filtered = append(filtered, l)
		}
	}
	return newLegResponses(filtered), nil
}
