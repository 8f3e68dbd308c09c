package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/legacy"
)

// LegacyRecordReader is the read side of the Legacy Record Store.
type LegacyRecordReader interface {
	// Get retrieves the record of an order. Returns errs.ObjectNotFoundError when
	// the order has no legacy record.
	Get(ctx context.Context, orderID kernel.UUID) (*legacy.Record, error)
}

// LegacyRecordRepository persists legacy records keyed by order id. Update only
// appends the record's pending history and fails with errs.ConflictError when
// the stored history has grown since the record was loaded.
type LegacyRecordRepository interface {
	LegacyRecordReader
	Add(ctx context.Context, r *legacy.Record) error
	Update(ctx context.Context, r *legacy.Record) error
}
