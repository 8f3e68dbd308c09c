// Package legrepo persists DeliveryLeg aggregates with GORM: one row per leg in
// delivery_legs and one row per history event in leg_events.
package legrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"

	"github.com/google/uuid"
)

// LegDTO is the delivery_legs row. (order_id, leg_type) is unique, which
// enforces one leg of each type per order.
type LegDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:ux_delivery_legs_order_type,priority:1"`
	LegType        string     `gorm:"type:varchar(16);not null;uniqueIndex:ux_delivery_legs_order_type,priority:2"`
	Status         string     `gorm:"type:varchar(16);not null;index"`
	CourierName    string     `gorm:"type:varchar(255)"`
	TrackingID     string     `gorm:"type:varchar(255)"`
	DeliveryMethod string     `gorm:"type:varchar(64)"`
	ReadyAt        *time.Time `gorm:"type:timestamptz"`
	DispatchedAt   *time.Time `gorm:"type:timestamptz;index"`
	DeliveredAt    *time.Time `gorm:"type:timestamptz"`
	Version        int        `gorm:"not null"`

	Events []LegEventDTO `gorm:"foreignKey:LegID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming.
func (LegDTO) TableName() string {
	return "delivery_legs"
}

// LegEventDTO is one leg_events row, keyed by (leg_id, sequence).
type LegEventDTO struct {
	LegID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence int       `gorm:"primaryKey;autoIncrement:false"`
	Status   string    `gorm:"type:varchar(16);not null"`
	Note     string    `gorm:"type:text"`
	At       time.Time `gorm:"type:timestamptz;not null"`
}

func (LegEventDTO) TableName() string {
	return "leg_events"
}

// fromDomain maps the leg row; events are mapped separately so only pending
// ones are written.
func fromDomain(l *leg.Leg) LegDTO {
	return LegDTO{
		ID:             l.ID().Bytes(),
		OrderID:        l.OrderID().Bytes(),
		LegType:        l.Type().String(),
		Status:         l.Status().String(),
		CourierName:    l.CourierName(),
		TrackingID:     l.TrackingID(),
		DeliveryMethod: l.DeliveryMethod(),
		ReadyAt:        l.ReadyAt(),
		DispatchedAt:   l.DispatchedAt(),
		DeliveredAt:    l.DeliveredAt(),
		Version:        l.Version(),
	}
}

func eventsFromDomain(legID uuid.UUID, events []leg.Event) []LegEventDTO {
	dtos := make([]LegEventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, LegEventDTO{
			LegID:    legID,
			Sequence: e.Sequence(),
			Status:   e.Status().String(),
			Note:     e.Note(),
			At:       e.At().UTC(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate through leg.Restore.
func toDomain(dto LegDTO) (*leg.Leg, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	legType, err := leg.ParseType(dto.LegType)
	if err != nil {
		return nil, err
	}

	status, err := leg.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	events := make([]leg.Event, 0, len(dto.Events))
	for _, e := range dto.Events {
		eventStatus, err := leg.ParseStatus(e.Status)
		if err != nil {
			return nil, err
		}
		events = append(events, leg.RestoreEvent(e.Sequence, eventStatus, e.Note, e.At.UTC()))
	}

	return leg.Restore(leg.State{
		ID:             id,
		OrderID:        orderID,
		Type:           legType,
		Status:         status,
		CourierName:    dto.CourierName,
		TrackingID:     dto.TrackingID,
		DeliveryMethod: dto.DeliveryMethod,
		ReadyAt:        utc(dto.ReadyAt),
		DispatchedAt:   utc(dto.DispatchedAt),
		DeliveredAt:    utc(dto.DeliveredAt),
		Version:        dto.Version,
		Events:         events,
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
