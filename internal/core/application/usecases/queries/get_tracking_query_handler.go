package queries

import (
	"context"
	"errors"
	"log/slog"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/domain/services"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// GetTrackingQueryHandler answers tracking requests from whichever store knows
// the order:
//
//  1. legs exist        -> project from the legs, the legacy store is not read
//  2. legacy record     -> project from the legacy record
//  3. neither           -> tracking.NotAvailable, not an error
//
// Data from the two stores is never combined. Available projections are kept
// in the cache, guarded by the generation read before the stores are queried;
// a cache that fails is bypassed and logged.
type GetTrackingQueryHandler struct {
	legs   ports.LegReader
	legacy ports.LegacyRecordReader
	orders ports.OrderDirectory
	cache  ports.TrackingCache
	logger *slog.Logger
}

// NewGetTrackingQueryHandler wires the handler. cache and logger may be nil.
func NewGetTrackingQueryHandler(
	legs ports.LegReader,
	legacy ports.LegacyRecordReader,
	orders ports.OrderDirectory,
	cache ports.TrackingCache,
	logger *slog.Logger,
) GetTrackingQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return GetTrackingQueryHandler{
		legs:   legs,
		legacy: legacy,
		orders: orders,
		cache:  cache,
		logger: logger.With("component", "get-tracking"),
	}
}

func (h GetTrackingQueryHandler) Handle(ctx context.Context, query GetTrackingQuery) (tracking.Projection, error) {
	if err := query.Validate(); err != nil {
		return tracking.Projection{}, err
	}
	orderID := query.OrderID()

	generation, cacheable := int64(0), false
	if h.cache != nil {
		cached, found, err := h.cache.Get(ctx, orderID)
		if err != nil {
			h.logger.WarnContext(ctx, "tracking cache read failed", "order_id", orderID.String(), "error", err)
		}
		if found {
			return cached, nil
		}

		generation, err = h.cache.Generation(ctx, orderID)
		if err != nil {
			h.logger.WarnContext(ctx, "tracking cache generation read failed", "order_id", orderID.String(), "error", err)
		}
		cacheable = err == nil
	}

	source, err := h.resolveSource(ctx, orderID)
	if err != nil {
		return tracking.Projection{}, err
	}

	projection := services.Project(orderID, source)

	if cacheable && projection.Available {
		h.store(ctx, projection, generation)
	}

	return projection, nil
}

func (h GetTrackingQueryHandler) store(ctx context.Context, projection tracking.Projection, generation int64) {
	stored, err := h.cache.Set(ctx, projection, generation)
	if err != nil {
		h.logger.WarnContext(ctx, "tracking cache write failed", "order_id", projection.OrderID.String(), "error", err)
		return
	}
	if !stored {
		h.logger.DebugContext(ctx, "tracking cache write skipped, order changed while reading",
			"order_id", projection.OrderID.String())
	}
}

func (h GetTrackingQueryHandler) resolveSource(ctx context.Context, orderID kernel.UUID) (services.Source, error) {
	legs, err := h.legs.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if len(legs) > 0 {
		address, err := h.orderAddress(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return services.LegsSource{Legs: legs, Address: address}, nil
	}

	record, err := h.legacy.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return services.NoSource{}, nil
	}
	if err != nil {
		return nil, err
	}

	return services.LegacySource{Record: record}, nil
}

// orderAddress reads the delivery address from the order. An order the
// directory does not know yields an empty address rather than hiding legs
// that do exist.
func (h GetTrackingQueryHandler) orderAddress(ctx context.Context, orderID kernel.UUID) (kernel.Address, error) {
	if h.orders == nil {
		return kernel.Address{}, nil
	}

	o, err := h.orders.Get(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.Address{}, nil
	}
	if err != nil {
		return kernel.Address{}, err
	}
	return o.Address(), nil
}
