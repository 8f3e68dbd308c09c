package legacysql

import (
	"context"
	"database/sql"
	"errors"

	"tracking/internal/adapters/out/postgres/pgerr"
	"tracking/internal/core/ports"
)

var ErrTransactionNotStarted = errors.New("legacy transaction not started")

// UnitOfWorkFactory creates units of work sharing one connection pool.
type UnitOfWorkFactory struct {
	db *sql.DB
}

func NewUnitOfWorkFactory(db *sql.DB) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{db: db}
}

func (f *UnitOfWorkFactory) Create() ports.LegacyUnitOfWork {
	return &UnitOfWork{db: f.db}
}

// UnitOfWork wraps one *sql.Tx.
type UnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

// Begin starts a transaction. Calling Begin twice keeps the first transaction.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return pgerr.Translate(err, resource)
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrTransactionNotStarted
	}

	err := u.tx.Commit()
	u.tx = nil
	return pgerr.Translate(err, resource)
}

// Rollback is a no-op without an active transaction.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback()
	u.tx = nil
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}
	return pgerr.Translate(err, resource)
}

func (u *UnitOfWork) LegacyRecordRepository() ports.LegacyRecordRepository {
	if u.tx != nil {
		return NewRepository(u.tx)
	}
	return NewRepository(u.db)
}
