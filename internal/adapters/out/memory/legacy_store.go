package memory

import (
	"context"
	"sync"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/legacy"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

var _ ports.LegacyRecordReader = (*LegacyStore)(nil)

// LegacyStore keeps legacy records keyed by order id.
type LegacyStore struct {
	mu      sync.RWMutex
	records map[kernel.UUID]legacy.RecordState
}

func NewLegacyStore() *LegacyStore {
	return &LegacyStore{records: make(map[kernel.UUID]legacy.RecordState)}
}

// NewUnitOfWork starts a unit of work over the store.
func (s *LegacyStore) NewUnitOfWork() *LegacyUnitOfWork {
	return &LegacyUnitOfWork{store: s}
}

func (s *LegacyStore) Get(_ context.Context, orderID kernel.UUID) (*legacy.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.records[orderID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}
	return legacy.RestoreRecord(st)
}

func (s *LegacyStore) checkAddLocked(r *legacy.Record) error {
	if _, ok := s.records[r.OrderID()]; ok {
		return errs.NewConflictError("legacy record", r.OrderID())
	}
	return nil
}

// checkUpdateLocked compares the stored history length with the loaded one.
func (s *LegacyStore) checkUpdateLocked(r *legacy.Record) error {
	st, ok := s.records[r.OrderID()]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", r.OrderID())
	}
	if len(st.History) != r.LoadedHistoryLen() {
		return errs.NewConflictError("legacy record", r.OrderID())
	}
	return nil
}

func (s *LegacyStore) putLocked(r *legacy.Record) {
	s.records[r.OrderID()] = legacy.RecordState{
		OrderID:    r.OrderID(),
		CustomerID: r.CustomerID(),
		Address:    r.Address(),
		Vendor:     r.Vendor(),
		Tailor:     r.Tailor(),
		History:    r.History(),
	}
}

var _ ports.LegacyUnitOfWork = (*LegacyUnitOfWork)(nil)

type stagedRecord struct {
	record *legacy.Record
	isNew  bool
}

// LegacyUnitOfWork stages record writes and applies them atomically on Commit.
type LegacyUnitOfWork struct {
	store  *LegacyStore
	staged []stagedRecord
	active bool
}

func (u *LegacyUnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTransactionAlreadyStarted
	}
	u.active = true
	u.staged = nil
	return nil
}

func (u *LegacyUnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrTransactionNotStarted
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	for _, s := range u.staged {
		var err error
		if s.isNew {
			err = u.store.checkAddLocked(s.record)
		} else {
			err = u.store.checkUpdateLocked(s.record)
		}
		if err != nil {
			u.reset()
			return err
		}
	}
	for _, s := range u.staged {
		u.store.putLocked(s.record)
	}

	u.reset()
	return nil
}

func (u *LegacyUnitOfWork) Rollback(_ context.Context) error {
	u.reset()
	return nil
}

func (u *LegacyUnitOfWork) LegacyRecordRepository() ports.LegacyRecordRepository {
	return &legacyTxRepository{uow: u}
}

func (u *LegacyUnitOfWork) reset() {
	u.active = false
	u.staged = nil
}

type legacyTxRepository struct {
	uow *LegacyUnitOfWork
}

func (r *legacyTxRepository) Get(ctx context.Context, orderID kernel.UUID) (*legacy.Record, error) {
	for i := len(r.uow.staged) - 1; i >= 0; i-- {
		if r.uow.staged[i].record.OrderID().IsEqual(orderID) {
			return r.uow.staged[i].record, nil
		}
	}
	return r.uow.store.Get(ctx, orderID)
}

func (r *legacyTxRepository) Add(_ context.Context, rec *legacy.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrTransactionNotStarted
	}

	r.uow.store.mu.RLock()
	err := r.uow.store.checkAddLocked(rec)
	r.uow.store.mu.RUnlock()
	if err != nil {
		return err
	}

	r.uow.staged = append(r.uow.staged, stagedRecord{record: rec, isNew: true})
	return nil
}

func (r *legacyTxRepository) Update(_ context.Context, rec *legacy.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrTransactionNotStarted
	}

	r.uow.store.mu.RLock()
	err := r.uow.store.checkUpdateLocked(rec)
	r.uow.store.mu.RUnlock()
	if err != nil {
		return err
	}

	r.uow.staged = append(r.uow.staged, stagedRecord{record: rec})
	return nil
}
