package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the Leg Record Store.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	// LegRepository returns a LegRepository bound to the current transaction.
	LegRepository() LegRepository
}

// LegacyUnitOfWork is the transaction boundary over the Legacy Record Store,
// which may live in a different database than the legs.
type LegacyUnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	LegacyRecordRepository() LegacyRecordRepository
}

// LegacyUnitOfWorkFactory creates LegacyUnitOfWork instances.
type LegacyUnitOfWorkFactory interface {
	Create() LegacyUnitOfWork
}
