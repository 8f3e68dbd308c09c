package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
)

// OrderDirectory is read-only access to orders owned by the order-management
// service. The tracking core never writes orders.
type OrderDirectory interface {
	// Get returns errs.ObjectNotFoundError for unknown orders.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// All returns the order pool the Assignment Matcher filters.
	All(ctx context.Context) ([]*order.Order, error)
}
