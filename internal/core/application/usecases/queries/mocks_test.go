package queries_test

import (
	"context"
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/legacy"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLegReader struct{ mock.Mock }

func (m *MockLegReader) Get(ctx context.Context, id kernel.UUID) (*leg.Leg, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leg.Leg), args.Error(1)
}

func (m *MockLegReader) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*leg.Leg, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leg.Leg), args.Error(1)
}

func (m *MockLegReader) ListByOrders(ctx context.Context, orderIDs []kernel.UUID, legType leg.Type) ([]*leg.Leg, error) {
	args := m.Called(ctx, orderIDs, legType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leg.Leg), args.Error(1)
}

func (m *MockLegReader) ListDispatchedBefore(ctx context.Context, cutoff time.Time) ([]*leg.Leg, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leg.Leg), args.Error(1)
}

type MockLegacyReader struct{ mock.Mock }

func (m *MockLegacyReader) Get(ctx context.Context, orderID kernel.UUID) (*legacy.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*legacy.Record), args.Error(1)
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

var testNow = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

func newLeg(t *testing.T, orderID kernel.UUID, legType leg.Type) *leg.Leg {
	t.Helper()
	l, err := leg.NewLeg(kernel.NewUUID(), orderID, legType, testNow)
	require.NoError(t, err)
	return l
}

func newOrder(t *testing.T, booking order.BookingType, seller, tailor string) *order.Order {
	t.Helper()
	var fabric *order.FabricDetails
	if seller != "" {
		details, err := order.NewFabricDetails(kernel.MustNewActorID(seller), "wool")
		require.NoError(t, err)
		fabric = &details
	}
	tailorID := kernel.MustNewActorID(tailor)
	addr, err := kernel.NewAddress(kernel.AddressFields{Line1: "1 Ring Rd", City: "Jaipur"})
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), booking, kernel.MustNewActorID("customer"), addr, fabric, &tailorID)
	require.NoError(t, err)
	return o
}
