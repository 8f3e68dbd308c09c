package commands_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/legacy"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLegRepository struct{ mock.Mock }

func (m *MockLegRepository) Get(ctx context.Context, id kernel.UUID) (*leg.Leg, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leg.Leg), args.Error(1)
}

func (m *MockLegRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*leg.Leg, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leg.Leg), args.Error(1)
}

func (m *MockLegRepository) ListByOrders(ctx context.Context, orderIDs []kernel.UUID, legType leg.Type) ([]*leg.Leg, error) {
	args := m.Called(ctx, orderIDs, legType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leg.Leg), args.Error(1)
}

func (m *MockLegRepository) ListDispatchedBefore(ctx context.Context, cutoff time.Time) ([]*leg.Leg, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leg.Leg), args.Error(1)
}

func (m *MockLegRepository) Add(ctx context.Context, l *leg.Leg) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLegRepository) Update(ctx context.Context, l *leg.Leg) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

type MockLegUoW struct{ mock.Mock }

func (m *MockLegUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLegUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLegUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLegUoW) LegRepository() ports.LegRepository {
	args := m.Called()
	return args.Get(0).(ports.LegRepository)
}

type MockLegUoWFactory struct{ mock.Mock }

func (m *MockLegUoWFactory) Create() commands.LegUoW {
	args := m.Called()
	return args.Get(0).(commands.LegUoW)
}

type MockLegacyRepository struct{ mock.Mock }

func (m *MockLegacyRepository) Get(ctx context.Context, orderID kernel.UUID) (*legacy.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*legacy.Record), args.Error(1)
}

func (m *MockLegacyRepository) Add(ctx context.Context, r *legacy.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockLegacyRepository) Update(ctx context.Context, r *legacy.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockLegacyUoW struct{ mock.Mock }

func (m *MockLegacyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLegacyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLegacyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLegacyUoW) LegacyRecordRepository() ports.LegacyRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.LegacyRecordRepository)
}

type MockLegacyUoWFactory struct{ mock.Mock }

func (m *MockLegacyUoWFactory) Create() commands.LegacyUoW {
	args := m.Called()
	return args.Get(0).(commands.LegacyUoW)
}

type MockOrderDirectory struct{ mock.Mock }

func (m *MockOrderDirectory) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderDirectory) All(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTrackingCache struct{ mock.Mock }

func (m *MockTrackingCache) Get(ctx context.Context, orderID kernel.UUID) (tracking.Projection, bool, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(tracking.Projection), args.Bool(1), args.Error(2)
}

func (m *MockTrackingCache) Generation(ctx context.Context, orderID kernel.UUID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTrackingCache) Set(ctx context.Context, p tracking.Projection, generation int64) (bool, error) {
	args := m.Called(ctx, p, generation)
	return args.Bool(0), args.Error(1)
}

func (m *MockTrackingCache) Invalidate(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockTransitionRecorder struct{ mock.Mock }

func (m *MockTransitionRecorder) RecordTransition(kind tracking.LegKind, status string) {
	m.Called(kind, status)
}

var testNow = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

func newCreatedLeg(t *testing.T, orderID kernel.UUID, legType leg.Type) *leg.Leg {
	t.Helper()
	l, err := leg.NewLeg(kernel.NewUUID(), orderID, legType, testNow)
	require.NoError(t, err)
	return l
}

func newCompleteOrder(t *testing.T, seller, tailor string) *order.Order {
	t.Helper()
	return newCompleteOrderWithID(t, kernel.NewUUID(), seller, tailor)
}

func newCompleteOrderWithID(t *testing.T, id kernel.UUID, seller, tailor string) *order.Order {
	t.Helper()
	details, err := order.NewFabricDetails(kernel.MustNewActorID(seller), "silk")
	require.NoError(t, err)
	tailorID := kernel.MustNewActorID(tailor)
	o, err := order.RestoreOrder(id, order.CompleteBooking, kernel.MustNewActorID("customer"),
		kernel.Address{}, &details, &tailorID)
	require.NoError(t, err)
	return o
}

// legUoWSetup returns a factory whose unit of work hands out repo.
func legUoWSetup(repo *MockLegRepository) (*MockLegUoWFactory, *MockLegUoW) {
	uow := new(MockLegUoW)
	factory := new(MockLegUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("LegRepository").Return(repo).Maybe()
	return factory, uow
}
