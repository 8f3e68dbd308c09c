package memory

import (
	"context"
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/ports"
)

var (
	ErrTransactionNotStarted     = errors.New("transaction not started")
	ErrTransactionAlreadyStarted = errors.New("transaction already started")
)

var _ ports.UnitOfWork = (*LegUnitOfWork)(nil)

type stagedLeg struct {
	leg   *leg.Leg
	isNew bool
}

// LegUnitOfWork stages writes and applies them atomically on Commit. The
// version checks are repeated under the store lock at commit time, so of two
// units of work that loaded the same leg only the first to commit succeeds.
type LegUnitOfWork struct {
	store  *LegStore
	staged []stagedLeg
	active bool
}

func (u *LegUnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTransactionAlreadyStarted
	}
	u.active = true
	u.staged = nil
	return nil
}

func (u *LegUnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrTransactionNotStarted
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	for _, s := range u.staged {
		var err error
		if s.isNew {
			err = u.store.checkAddLocked(s.leg)
		} else {
			err = u.store.checkUpdateLocked(s.leg)
		}
		if err != nil {
			u.reset()
			return err
		}
	}

	for _, s := range u.staged {
		u.store.putLocked(s.leg)
	}

	u.reset()
	return nil
}

func (u *LegUnitOfWork) Rollback(_ context.Context) error {
	u.reset()
	return nil
}

func (u *LegUnitOfWork) LegRepository() ports.LegRepository {
	return &legTxRepository{uow: u}
}

func (u *LegUnitOfWork) reset() {
	u.active = false
	u.staged = nil
}

// legTxRepository reads committed state and stages writes on its unit of work.
type legTxRepository struct {
	uow *LegUnitOfWork
}

func (r *legTxRepository) Get(ctx context.Context, id kernel.UUID) (*leg.Leg, error) {
	for i := len(r.uow.staged) - 1; i >= 0; i-- {
		if r.uow.staged[i].leg.ID().IsEqual(id) {
			return r.uow.staged[i].leg, nil
		}
	}
	return r.uow.store.Get(ctx, id)
}

func (r *legTxRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*leg.Leg, error) {
	committed, err := r.uow.store.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, s := range r.uow.staged {
		if s.isNew && s.leg.OrderID().IsEqual(orderID) {
			committed = append(committed, s.leg)
		}
	}
	return committed, nil
}

func (r *legTxRepository) ListByOrders(ctx context.Context, orderIDs []kernel.UUID, legType leg.Type) ([]*leg.Leg, error) {
	return r.uow.store.ListByOrders(ctx, orderIDs, legType)
}

func (r *legTxRepository) ListDispatchedBefore(ctx context.Context, cutoff time.Time) ([]*leg.Leg, error) {
	return r.uow.store.ListDispatchedBefore(ctx, cutoff)
}

func (r *legTxRepository) Add(_ context.Context, l *leg.Leg) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrTransactionNotStarted
	}

	r.uow.store.mu.RLock()
	err := r.uow.store.checkAddLocked(l)
	r.uow.store.mu.RUnlock()
	if err != nil {
		return err
	}

	r.uow.staged = append(r.uow.staged, stagedLeg{leg: l, isNew: true})
	return nil
}

func (r *legTxRepository) Update(_ context.Context, l *leg.Leg) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if !r.uow.active {
		return ErrTransactionNotStarted
	}
	for _, s := range r.uow.staged {
		if s.isNew && s.leg.ID().IsEqual(l.ID()) {
			return nil
		}
	}

	r.uow.store.mu.RLock()
	err := r.uow.store.checkUpdateLocked(l)
	r.uow.store.mu.RUnlock()
	if err != nil {
		return err
	}

	r.uow.staged = append(r.uow.staged, stagedLeg{leg: l})
	return nil
}
