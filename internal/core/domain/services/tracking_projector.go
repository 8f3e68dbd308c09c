package services

import (
	"sort"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/legacy"
	"tracking/internal/core/domain/model/tracking"
)

// Source is the record an order's tracking is answered from. It is one of
// LegsSource, LegacySource or NoSource.
type Source interface {
	isSource()
}

// LegsSource holds the per-leg records of an order. Address comes from the
// order itself since legs carry no address.
type LegsSource struct {
	Legs    []*leg.Leg
	Address kernel.Address
}

// LegacySource holds the combined legacy record of an order.
type LegacySource struct {
	Record *legacy.Record
}

// NoSource means neither store knows the order yet.
type NoSource struct{}

func (LegsSource) isSource()   {}
func (LegacySource) isSource() {}
func (NoSource) isSource()     {}

// Project builds the tracking projection of orderID from exactly one source.
// Sources are never merged.
func Project(orderID kernel.UUID, source Source) tracking.Projection {
	switch s := source.(type) {
	case LegsSource:
		if len(s.Legs) == 0 {
			return tracking.NotAvailable(orderID)
		}
		return projectLegs(orderID, s)
	case LegacySource:
		if s.Record == nil {
			return tracking.NotAvailable(orderID)
		}
		return projectLegacy(s.Record)
	}
	return tracking.NotAvailable(orderID)
}

// SignalsFromLegs maps leg statuses to aggregator input. A CREATED garment leg
// that has been marked ready counts as ready for delivery.
func SignalsFromLegs(legs []*leg.Leg) tracking.Signals {
	var signals tracking.Signals
	fabric, garment := splitLegs(legs)
	if fabric != nil {
		phase := fabricPhase(fabric)
		signals.Fabric = &phase
	}
	if garment != nil {
		signals.Garment = garmentPhase(garment)
	}
	return signals
}

func projectLegs(orderID kernel.UUID, s LegsSource) tracking.Projection {
	summary := tracking.Aggregate(SignalsFromLegs(s.Legs))
	p := tracking.Projection{
		OrderID:         orderID,
		Available:       true,
		Schema:          tracking.SchemaLegs,
		Overall:         summary.Overall,
		ProgressPercent: summary.ProgressPercent,
		Address:         s.Address,
	}

	fabric, garment := splitLegs(s.Legs)
	if fabric != nil {
		p.Fabric = legView(fabric, tracking.LegKindFabric, fabricPhase(fabric).String())
	}
	if garment != nil {
		p.Garment = legView(garment, tracking.LegKindGarment, garmentPhase(garment).String())
	}

	type ordered struct {
		event    tracking.Event
		sequence int
	}
	events := make([]ordered, 0)
	for _, l := range s.Legs {
		kind := kindOf(l.Type())
		for _, e := range l.Events() {
			events = append(events, ordered{
				event:    tracking.Event{Kind: kind, Status: e.Status().String(), At: e.At(), Notes: e.Note()},
				sequence: e.Sequence(),
			})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].event.At.Equal(events[j].event.At) {
			return events[i].event.At.After(events[j].event.At)
		}
		return events[i].sequence > events[j].sequence
	})

	p.History = make([]tracking.Event, 0, len(events))
	for _, e := range events {
		p.History = append(p.History, e.event)
	}
	return p
}

func projectLegacy(r *legacy.Record) tracking.Projection {
	summary := tracking.Aggregate(r.Signals())
	vendor, tailor := r.Vendor(), r.Tailor()
	history := r.History()

	p := tracking.Projection{
		OrderID:         r.OrderID(),
		Available:       true,
		Schema:          tracking.SchemaLegacy,
		Overall:         summary.Overall,
		ProgressPercent: summary.ProgressPercent,
		Address:         r.Address(),
		Fabric: &tracking.LegView{
			Kind:         tracking.LegKindFabric,
			Status:       vendor.Status.String(),
			Phase:        vendor.Status.String(),
			CourierName:  vendor.CourierName,
			TrackingID:   vendor.TrackingNumber,
			DispatchedAt: firstAt(history, tracking.LegKindFabric, tracking.FabricDispatched.String(), tracking.FabricInTransit.String()),
			DeliveredAt:  firstAt(history, tracking.LegKindFabric, tracking.FabricDeliveredToTailor.String()),
			Notes:        vendor.Notes,
		},
		Garment: &tracking.LegView{
			Kind:           tracking.LegKindGarment,
			Status:         tailor.Status.String(),
			Phase:          tailor.Status.String(),
			CourierName:    tailor.CourierName,
			TrackingID:     tailor.TrackingNumber,
			DeliveryMethod: tailor.DeliveryMethod,
			DispatchedAt:   firstAt(history, tracking.LegKindGarment, tracking.GarmentOutForDelivery.String()),
			DeliveredAt:    firstAt(history, tracking.LegKindGarment, tracking.GarmentDelivered.String()),
			Notes:          tailor.Notes,
		},
	}

	p.History = make([]tracking.Event, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		h := history[i]
		p.History = append(p.History, tracking.Event{Kind: h.Phase, Status: h.Status, At: h.At, Notes: h.Notes})
	}
	return p
}

func legView(l *leg.Leg, kind tracking.LegKind, phase string) *tracking.LegView {
	id := l.ID()
	return &tracking.LegView{
		LegID:          &id,
		Kind:           kind,
		Status:         l.Status().String(),
		Phase:          phase,
		CourierName:    l.CourierName(),
		TrackingID:     l.TrackingID(),
		DeliveryMethod: l.DeliveryMethod(),
		DispatchedAt:   l.DispatchedAt(),
		DeliveredAt:    l.DeliveredAt(),
	}
}

func fabricPhase(l *leg.Leg) tracking.FabricPhase {
	switch l.Status() {
	case leg.Dispatched:
		return tracking.FabricDispatched
	case leg.Delivered:
		return tracking.FabricDeliveredToTailor
	case leg.Unknown, leg.Created:
	}
	return tracking.FabricPending
}

func garmentPhase(l *leg.Leg) tracking.GarmentPhase {
	switch l.Status() {
	case leg.Dispatched:
		return tracking.GarmentOutForDelivery
	case leg.Delivered:
		return tracking.GarmentDelivered
	case leg.Created:
		if l.IsReady() {
			return tracking.GarmentReadyForDelivery
		}
	case leg.Unknown:
	}
	return tracking.GarmentPending
}

func splitLegs(legs []*leg.Leg) (fabric, garment *leg.Leg) {
	for _, l := range legs {
		switch l.Type() {
		case leg.Fabric:
			if fabric == nil {
				fabric = l
			}
		case leg.Garment:
			if garment == nil {
				garment = l
			}
		case leg.UnknownType:
		}
	}
	return fabric, garment
}

func kindOf(t leg.Type) tracking.LegKind {
	if t == leg.Fabric {
		return tracking.LegKindFabric
	}
	return tracking.LegKindGarment
}

// firstAt returns the time of the earliest history entry of kind whose status
// is one of statuses.
func firstAt(history []legacy.HistoryEntry, kind tracking.LegKind, statuses ...string) *time.Time {
	for _, h := range history {
		if h.Phase != kind {
			continue
		}
		for _, s := range statuses {
			if h.Status == s {
				at := h.At
				return &at
			}
		}
	}
	return nil
}
