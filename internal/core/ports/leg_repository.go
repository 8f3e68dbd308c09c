// Package ports defines the contracts between the tracking core and its
// infrastructure: record stores, the external order pool and the projection cache.
package ports

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
)

// LegReader is the read side of the Leg Record Store. Every leg is returned
// with its full event history.
type LegReader interface {
	// Get retrieves a leg by id. Returns errs.ObjectNotFoundError when unknown.
	Get(ctx context.Context, id kernel.UUID) (*leg.Leg, error)

	// ListByOrder returns all legs of an order, FABRIC before GARMENT.
	// An order without legs yields an empty slice, not an error.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*leg.Leg, error)

	// ListByOrders returns the legType legs of the given orders.
	ListByOrders(ctx context.Context, orderIDs []kernel.UUID, legType leg.Type) ([]*leg.Leg, error)

	// ListDispatchedBefore returns legs still DISPATCHED whose dispatch time is before cutoff.
	ListDispatchedBefore(ctx context.Context, cutoff time.Time) ([]*leg.Leg, error)
}

// LegRepository persists DeliveryLeg aggregates.
//
// Update is a compare-and-swap on the version the leg was loaded with: when
// another writer got there first it returns errs.ConflictError and stores nothing.
// Both Add and Update append the leg's pending events keyed by (leg id, sequence).
type LegRepository interface {
	LegReader

	// Add stores a new leg. A second leg of the same type for the same order
	// is rejected with errs.ConflictError.
	Add(ctx context.Context, l *leg.Leg) error

	Update(ctx context.Context, l *leg.Leg) error
}
