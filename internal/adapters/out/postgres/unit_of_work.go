// Package postgres provides the GORM-based Unit of Work over the Leg Record Store.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	l, err := uow.LegRepository().Get(ctx, legID)
//	if err != nil {
//	    return err
//	}
//	if err := l.Complete(time.Now()); err != nil {
//	    return err
//	}
//	if err := uow.LegRepository().Update(ctx, l); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance owns one transaction; goroutines must not share them
//   - Concurrent transitions on the same leg are resolved by the version check in
//     GormLegRepository.Update, not by row locks
package postgres

import (
	"context"

	"tracking/internal/adapters/out/postgres/legrepo"
	"tracking/internal/adapters/out/postgres/pgerr"
	"tracking/internal/core/ports"

	"gorm.io/gorm"
)

const resource = "leg store"

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction for a leg command.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerr.Translate(tx.Error, resource)
	}

	uow.tx = tx
	return nil
}

// Commit makes the transaction's writes permanent and closes it.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return pgerr.Translate(err, resource)
}

// Rollback discards the transaction. It returns nil when no transaction is
// active, so it can be deferred right after Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return pgerr.Translate(err, resource)
}

// LegRepository returns a repository bound to the active transaction, or to
// the connection pool when none is active.
func (uow *GormUnitOfWork) LegRepository() ports.LegRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return legrepo.NewGormLegRepository(db)
}
