package queries

import (
	"context"

	"tracking/internal/core/ports"
)

// GetStaleDispatchesQueryHandler lists legs dispatched before the query's
// cutoff that have not been delivered, oldest dispatch first.
type GetStaleDispatchesQueryHandler struct {
	legs ports.LegReader
}

func NewGetStaleDispatchesQueryHandler(legs ports.LegReader) GetStaleDispatchesQueryHandler {
	return GetStaleDispatchesQueryHandler{legs: legs}
}

func (h GetStaleDispatchesQueryHandler) Handle(ctx context.Context, query GetStaleDispatchesQuery) ([]LegResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	legs, err := h.legs.ListDispatchedBefore(ctx, query.Cutoff())
	if err != nil {
		return nil, err
	}
	return newLegResponses(legs), nil
}
