package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

var _ ports.LegReader = (*LegStore)(nil)

// LegStore keeps committed legs as snapshots; every read rebuilds a fresh
// aggregate so callers never share state.
type LegStore struct {
	mu    sync.RWMutex
	legs  map[kernel.UUID]leg.State
	order []kernel.UUID
}

func NewLegStore() *LegStore {
	return &LegStore{legs: make(map[kernel.UUID]leg.State)}
}

// NewUnitOfWork starts a unit of work over the store.
func (s *LegStore) NewUnitOfWork() *LegUnitOfWork {
	return &LegUnitOfWork{store: s}
}

func (s *LegStore) Get(_ context.Context, id kernel.UUID) (*leg.Leg, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getLocked(id)
}

func (s *LegStore) ListByOrder(_ context.Context, orderID kernel.UUID) ([]*leg.Leg, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterLocked(func(st leg.State) bool {
		return st.OrderID.IsEqual(orderID)
	})
}

func (s *LegStore) ListByOrders(_ context.Context, orderIDs []kernel.UUID, legType leg.Type) ([]*leg.Leg, error) {
	wanted := make(map[kernel.UUID]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterLocked(func(st leg.State) bool {
		_, ok := wanted[st.OrderID]
		return ok && st.Type == legType
	})
}

func (s *LegStore) ListDispatchedBefore(_ context.Context, cutoff time.Time) ([]*leg.Leg, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterLocked(func(st leg.State) bool {
		return st.Status == leg.Dispatched && st.DispatchedAt != nil && st.DispatchedAt.Before(cutoff)
	})
}

func (s *LegStore) getLocked(id kernel.UUID) (*leg.Leg, error) {
	st, ok := s.legs[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("legId", id)
	}
	return leg.Restore(st)
}

func (s *LegStore) filterLocked(match func(leg.State) bool) ([]*leg.Leg, error) {
	result := make([]*leg.Leg, 0)
	for _, id := range s.order {
		st := s.legs[id]
		if !match(st) {
			continue
		}
		l, err := leg.Restore(st)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Type() < result[j].Type()
	})
	return result, nil
}

// checkAddLocked rejects a duplicate id or a second leg of the same type for an order.
func (s *LegStore) checkAddLocked(l *leg.Leg) error {
	if _, ok := s.legs[l.ID()]; ok {
		return errs.NewConflictError("leg", l.ID())
	}
	for _, st := range s.legs {
		if st.OrderID.IsEqual(l.OrderID()) && st.Type == l.Type() {
			return errs.NewConflictError("leg", l.ID())
		}
	}
	return nil
}

// checkUpdateLocked is the compare-and-swap on the loaded version.
func (s *LegStore) checkUpdateLocked(l *leg.Leg) error {
	st, ok := s.legs[l.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("legId", l.ID())
	}
	if st.Version != l.LoadedVersion() {
		return errs.NewConflictError("leg", l.ID())
	}
	return nil
}

func (s *LegStore) putLocked(l *leg.Leg) {
	if _, ok := s.legs[l.ID()]; !ok {
		s.order = append(s.order, l.ID())
	}
	s.legs[l.ID()] = snapshot(l)
}

func snapshot(l *leg.Leg) leg.State {
	return leg.State{
		ID:             l.ID(),
		OrderID:        l.OrderID(),
		Type:           l.Type(),
		Status:         l.Status(),
		CourierName:    l.CourierName(),
		TrackingID:     l.TrackingID(),
		DeliveryMethod: l.DeliveryMethod(),
		ReadyAt:        copyTime(l.ReadyAt()),
		DispatchedAt:   copyTime(l.DispatchedAt()),
		DeliveredAt:    copyTime(l.DeliveredAt()),
		Version:        l.Version(),
		Events:         l.Events(),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
