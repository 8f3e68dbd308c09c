package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tracking"
)

// TrackingCache keeps recently built projections. Writers invalidate after
// commit; every invalidation bumps the order's generation.
//
// A reader takes the generation before it loads from the stores and hands it
// back to Set, so a projection built from data read before a commit is never
// stored after that commit's invalidation.
type TrackingCache interface {
	// Get reports found=false on a miss.
	Get(ctx context.Context, orderID kernel.UUID) (p tracking.Projection, found bool, err error)
	// Generation returns the order's invalidation counter, 0 if never invalidated.
	Generation(ctx context.Context, orderID kernel.UUID) (int64, error)
	// Set stores p only while the order's generation still equals generation.
	// stored is false when an invalidation happened in between.
	Set(ctx context.Context, p tracking.Projection, generation int64) (stored bool, err error)
	Invalidate(ctx context.Context, orderID kernel.UUID) error
}

// TransitionRecorder observes successful leg and legacy transitions.
type TransitionRecorder interface {
	RecordTransition(kind tracking.LegKind, status string)
}
