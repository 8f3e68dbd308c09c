package http

import (
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/generated/servers"
)

func toLeg(l queries.LegResponse) servers.Leg {
	return servers.Leg{
		Id:             l.ID.Bytes(),
		OrderId:        l.OrderID.Bytes(),
		LegType:        servers.LegType(l.Type.String()),
		Status:         servers.LegStatus(l.Status.String()),
		CourierName:    optional(l.CourierName),
		TrackingId:     optional(l.TrackingID),
		DeliveryMethod: optional(l.DeliveryMethod),
		DispatchedAt:   l.DispatchedAt,
		DeliveredAt:    l.DeliveredAt,
		Version:        l.Version,
	}
}

func toLegs(legs []queries.LegResponse) []servers.Leg {
	response := make([]servers.Leg, 0, len(legs))
	for _, l := range legs {
		response = append(response, toLeg(l))
	}
	return response
}

func toLegsFromDomain(legs []*leg.Leg) []servers.Leg {
	response := make([]servers.Leg, 0, len(legs))
	for _, l := range legs {
		response = append(response, toLeg(queries.NewLegResponse(l)))
	}
	return response
}

func toTracking(p tracking.Projection) servers.Tracking {
	response := servers.Tracking{
		OrderId:   p.OrderID.Bytes(),
		Available: p.Available,
	}
	if !p.Available {
		return response
	}

	schema := string(p.Schema)
	overall := string(p.Overall)
	progress := p.ProgressPercent
	history := make([]servers.TrackingEvent, 0, len(p.History))
	for _, e := range p.History {
		history = append(history, servers.TrackingEvent{
			Kind:   string(e.Kind),
			Status: e.Status,
			At:     e.At,
			Notes:  optional(e.Notes),
		})
	}

	response.Schema = &schema
	response.OverallStatus = &overall
	response.ProgressPercent = &progress
	response.Fabric = toLegView(p.Fabric)
	response.Garment = toLegView(p.Garment)
	response.Address = toAddress(p.Address)
	response.History = &history
	return response
}

func toLegView(v *tracking.LegView) *servers.LegView {
	if v == nil {
		return nil
	}

	view := &servers.LegView{
		Kind:           string(v.Kind),
		Status:         v.Status,
		Phase:          v.Phase,
		CourierName:    optional(v.CourierName),
		TrackingId:     optional(v.TrackingID),
		DeliveryMethod: optional(v.DeliveryMethod),
		DispatchedAt:   v.DispatchedAt,
		DeliveredAt:    v.DeliveredAt,
		Notes:          optional(v.Notes),
	}
	if v.LegID != nil {
		id := v.LegID.Bytes()
		view.LegId = &id
	}
	return view
}

func toAddress(a kernel.Address) *servers.Address {
	if a.IsZero() {
		return nil
	}

	f := a.Fields()
	return &servers.Address{
		Recipient:  optional(f.Recipient),
		Phone:      optional(f.Phone),
		Line1:      optional(f.Line1),
		Line2:      optional(f.Line2),
		City:       optional(f.City),
		State:      optional(f.State),
		PostalCode: optional(f.PostalCode),
		Country:    optional(f.Country),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
