package tracking

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// Schema names the record shape a projection was built from.
type Schema string

const (
	SchemaLegs   Schema = "legs"
	SchemaLegacy Schema = "legacy"
)

// LegKind distinguishes the two shipping segments in projections and history.
type LegKind string

const (
	LegKindFabric  LegKind = "fabric"
	LegKindGarment LegKind = "garment"
)

// LegView is one leg as shown to callers. LegID is nil for legacy records,
// whose sub-states have no identity of their own.
type LegView struct {
	LegID          *kernel.UUID
	Kind           LegKind
	Status         string
	Phase          string
	CourierName    string
	TrackingID     string
	DeliveryMethod string
	DispatchedAt   *time.Time
	DeliveredAt    *time.Time
	Notes          string
}

// Event is one entry of the delivery history.
type Event struct {
	Kind   LegKind
	Status string
	At     time.Time
	Notes  string
}

// Projection is the read-only tracking view of an order. When Available is
// false the order has no delivery record yet and every other field is empty
// except OrderID.
type Projection struct {
	OrderID         kernel.UUID
	Available       bool
	Schema          Schema
	Fabric          *LegView
	Garment         *LegView
	Overall         OverallStatus
	ProgressPercent int
	Address         kernel.Address
	// History is ordered newest first.
	History []Event
}

// NotAvailable is the projection of an order that has no delivery record in
// either store. It is a regular result, not an error.
func NotAvailable(orderID kernel.UUID) Projection {
	return Projection{OrderID: orderID}
}
