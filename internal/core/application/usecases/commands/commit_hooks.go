package commands

import (
	"context"
	"log/slog"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"
)

// CommitHooks runs best-effort work after a transaction has committed: it drops
// the order's cached projection and reports the transition. Failures are logged
// and never turn a committed change into an error.
type CommitHooks struct {
	cache    ports.TrackingCache
	recorder ports.TransitionRecorder
	logger   *slog.Logger
}

// NewCommitHooks wires the hooks. Any argument may be nil.
func NewCommitHooks(cache ports.TrackingCache, recorder ports.TransitionRecorder, logger *slog.Logger) CommitHooks {
	if logger == nil {
		logger = slog.Default()
	}
	return CommitHooks{
		cache:    cache,
		recorder: recorder,
		logger:   logger.With("component", "commit-hooks"),
	}
}

func (h CommitHooks) changed(ctx context.Context, orderID kernel.UUID, kind tracking.LegKind, status string) {
	if h.recorder != nil {
		h.recorder.RecordTransition(kind, status)
	}

	if h.cache == nil {
		return
	}
	if err := h.cache.Invalidate(ctx, orderID); err != nil {
		h.log().WarnContext(ctx, "failed to invalidate tracking cache",
			"order_id", orderID.String(),
			"error", err,
		)
	}
}

func legKind(t leg.Type) tracking.LegKind {
	if t == leg.Fabric {
		return tracking.LegKindFabric
	}
	return tracking.LegKindGarment
}

func (h CommitHooks) log() *slog.Logger {
	if h.logger == nil {
		return slog.Default()
	}
	return h.logger
}
