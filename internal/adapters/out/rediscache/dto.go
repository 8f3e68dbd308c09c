package rediscache

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tracking"
)

type projectionJSON struct {
	OrderID         string               `json:"orderId"`
	Available       bool                 `json:"available"`
	Schema          string               `json:"schema,omitempty"`
	Fabric          *legJSON             `json:"fabric,omitempty"`
	Garment         *legJSON             `json:"garment,omitempty"`
	Overall         string               `json:"overall,omitempty"`
	ProgressPercent int                  `json:"progressPercent"`
	Address         kernel.AddressFields `json:"address"`
	History         []eventJSON          `json:"history,omitempty"`
}

type legJSON struct {
	LegID          string     `json:"legId,omitempty"`
	Kind           string     `json:"kind"`
	Status         string     `json:"status"`
	Phase          string     `json:"phase"`
	CourierName    string     `json:"courierName,omitempty"`
	TrackingID     string     `json:"trackingId,omitempty"`
	DeliveryMethod string     `json:"deliveryMethod,omitempty"`
	DispatchedAt   *time.Time `json:"dispatchedAt,omitempty"`
	DeliveredAt    *time.Time `json:"deliveredAt,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

type eventJSON struct {
	Kind   string    `json:"kind"`
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Notes  string    `json:"notes,omitempty"`
}

func fromProjection(p tracking.Projection) projectionJSON {
	out := projectionJSON{
		OrderID:         p.OrderID.String(),
		Available:       p.Available,
		Schema:          string(p.Schema),
		Fabric:          fromLegView(p.Fabric),
		Garment:         fromLegView(p.Garment),
		Overall:         string(p.Overall),
		ProgressPercent: p.ProgressPercent,
		Address:         p.Address.Fields(),
	}
	for _, e := range p.History {
		out.History = append(out.History, eventJSON{
			Kind:   string(e.Kind),
			Status: e.Status,
			At:     e.At,
			Notes:  e.Notes,
		})
	}
	return out
}

func fromLegView(v *tracking.LegView) *legJSON {
	if v == nil {
		return nil
	}
	out := &legJSON{
		Kind:           string(v.Kind),
		Status:         v.Status,
		Phase:          v.Phase,
		CourierName:    v.CourierName,
		TrackingID:     v.TrackingID,
		DeliveryMethod: v.DeliveryMethod,
		DispatchedAt:   v.DispatchedAt,
		DeliveredAt:    v.DeliveredAt,
		Notes:          v.Notes,
	}
	if v.LegID != nil {
		out.LegID = v.LegID.String()
	}
	return out
}

func (p projectionJSON) toProjection() (tracking.Projection, error) {
	orderID, err := kernel.UUIDFromString(p.OrderID)
	if err != nil {
		return tracking.Projection{}, err
	}

	fabric, err := p.Fabric.toLegView()
	if err != nil {
		return tracking.Projection{}, err
	}
	garment, err := p.Garment.toLegView()
	if err != nil {
		return tracking.Projection{}, err
	}

	address := kernel.RestoreAddress(p.Address)

	out := tracking.Projection{
		OrderID:         orderID,
		Available:       p.Available,
		Schema:          tracking.Schema(p.Schema),
		Fabric:          fabric,
		Garment:         garment,
		Overall:         tracking.OverallStatus(p.Overall),
		ProgressPercent: p.ProgressPercent,
		Address:         address,
	}
	for _, e := range p.History {
		out.History = append(out.History, tracking.Event{
			Kind:   tracking.LegKind(e.Kind),
			Status: e.Status,
			At:     e.At.UTC(),
			Notes:  e.Notes,
		})
	}
	return out, nil
}

func (l *legJSON) toLegView() (*tracking.LegView, error) {
	if l == nil {
		return nil, nil
	}
	out := &tracking.LegView{
		Kind:           tracking.LegKind(l.Kind),
		Status:         l.Status,
		Phase:          l.Phase,
		CourierName:    l.CourierName,
		TrackingID:     l.TrackingID,
		DeliveryMethod: l.DeliveryMethod,
		DispatchedAt:   l.DispatchedAt,
		DeliveredAt:    l.DeliveredAt,
		Notes:          l.Notes,
	}
	if l.LegID != "" {
		id, err := kernel.UUIDFromString(l.LegID)
		if err != nil {
			return nil, err
		}
		out.LegID = &id
	}
	return out, nil
}
