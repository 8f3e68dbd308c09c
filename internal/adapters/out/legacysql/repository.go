package legacysql

import (
	"context"
	"database/sql"
	"errors"

	"tracking/internal/adapters/out/postgres/pgerr"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/legacy"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var _ ports.LegacyRecordRepository = (*Repository)(nil)

// Repository implements ports.LegacyRecordRepository over legacy_delivery_records.
type Repository struct {
	q querier
}

// NewRepository creates a repository on db; pass a *sql.Tx to work inside a transaction.
func NewRepository(q querier) *Repository {
	return &Repository{q: q}
}

const selectRecord = `
SELECT order_id, customer_id, address, vendor_dispatch, tailor_delivery, overall_status, status_history
FROM legacy_delivery_records
WHERE order_id = $1`

func (r *Repository) Get(ctx context.Context, orderID kernel.UUID) (*legacy.Record, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var raw row
	err := r.q.QueryRowContext(ctx, selectRecord, orderID.String()).Scan(
		&raw.OrderID, &raw.CustomerID, &raw.Address, &raw.Vendor, &raw.Tailor, &raw.Overall, &raw.History,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID)
		}
		return nil, pgerr.Translate(err, resource)
	}

	return decode(raw)
}

const insertRecord = `
INSERT INTO legacy_delivery_records
	(order_id, customer_id, address, vendor_dispatch, tailor_delivery, overall_status, status_history)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *Repository) Add(ctx context.Context, rec *legacy.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	enc, err := encode(rec)
	if err != nil {
		return err
	}

	_, err = r.q.ExecContext(ctx, insertRecord,
		rec.OrderID().String(), rec.CustomerID().String(),
		enc.Address, enc.Vendor, enc.Tailor, string(rec.Overall()), enc.History,
	)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("legacy record", rec.OrderID(), err)
		}
		return pgerr.Translate(err, resource)
	}
	return nil
}

// updateRecord appends the pending history only if nobody has appended since
// the record was loaded.
const updateRecord = `
UPDATE legacy_delivery_records
SET vendor_dispatch = $2,
    tailor_delivery = $3,
    overall_status  = $4,
    status_history  = status_history || $5::jsonb,
    updated_at      = now()
WHERE order_id = $1 AND jsonb_array_length(status_history) = $6`

const recordExists = `SELECT EXISTS (SELECT 1 FROM legacy_delivery_records WHERE order_id = $1)`

func (r *Repository) Update(ctx context.Context, rec *legacy.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	enc, err := encode(rec)
	if err != nil {
		return err
	}

	res, err := r.q.ExecContext(ctx, updateRecord,
		rec.OrderID().String(), enc.Vendor, enc.Tailor, string(rec.Overall()), enc.Pending, rec.LoadedHistoryLen(),
	)
	if err != nil {
		return pgerr.Translate(err, resource)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return pgerr.Translate(err, resource)
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.q.QueryRowContext(ctx, recordExists, rec.OrderID().String()).Scan(&exists); err != nil {
		return pgerr.Translate(err, resource)
	}
	if !exists {
		return errs.NewObjectNotFoundError("orderId", rec.OrderID())
	}
	return errs.NewConflictError("legacy record", rec.OrderID())
}
