package queries

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
)

// LegResponse is the read model of a DeliveryLeg returned by leg listings.
type LegResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	Type           leg.Type
	Status         leg.Status
	CourierName    string
	TrackingID     string
	DeliveryMethod string
	DispatchedAt   *time.Time
	DeliveredAt    *time.Time
	Version        int
}

// NewLegResponse copies the leg's current state.
func NewLegResponse(l *leg.Leg) LegResponse {
	return LegResponse{
		ID:             l.ID(),
		OrderID:        l.OrderID(),
		Type:           l.Type(),
		Status:         l.Status(),
		CourierName:    l.CourierName(),
		TrackingID:     l.TrackingID(),
		DeliveryMethod: l.DeliveryMethod(),
		DispatchedAt:   l.DispatchedAt(),
		DeliveredAt:    l.DeliveredAt(),
		Version:        l.Version(),
	}
}

func newLegResponses(legs []*leg.Leg) []LegResponse {
	responses := make([]LegResponse, 0, len(legs))
	for _, l := range legs {
		responses = append(responses, NewLegResponse(l))
	}
	return responses
}
