// Package commands contains business operations that modify delivery state.
// All commands follow the same pattern: constructor validation, a unit of work
// around the load-mutate-store cycle, and post-commit hooks.
package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LegRepoFactory provides access to the leg repository within a transaction.
	LegRepoFactory interface {
		LegRepository() ports.LegRepository
	}

	// LegacyRepoFactory provides access to the legacy record repository within a transaction.
	LegacyRepoFactory interface {
		LegacyRecordRepository() ports.LegacyRecordRepository
	}

	// LegUoW manages transactions for operations on delivery legs.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   legRepo := uow.LegRepository()
	//   // ... load, transition, update
	//
	//   err = uow.Commit(ctx)
	LegUoW interface {
		TxManager
		LegRepoFactory
	}

	// LegUoWFactory creates new leg unit of work instances.
	LegUoWFactory interface {
		Create() LegUoW
	}

	// LegacyUoW manages transactions for operations on legacy records.
	LegacyUoW interface {
		TxManager
		LegacyRepoFactory
	}

	// LegacyUoWFactory creates new legacy unit of work instances.
	LegacyUoWFactory interface {
		Create() LegacyUoW
	}
)
