package memory_test

import (
	"testing"

	"tracking/internal/adapters/out/memory"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/legacy"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedLegacy(t *testing.T, store *memory.LegacyStore) *legacy.Record {
	t.Helper()
	ctx := t.Context()
	r, err := legacy.NewRecord(kernel.NewUUID(), kernel.MustNewActorID("customer"), kernel.Address{})
	require.NoError(t, err)

	uow := store.NewUnitOfWork()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.LegacyRecordRepository().Add(ctx, r))
	require.NoError(t, uow.Commit(ctx))
	return r
}

func TestLegacyStore_AppendOnlyHistory(t *testing.T) {
	ctx := t.Context()
	store := memory.NewLegacyStore()
	seeded := seedLegacy(t, store)

	first := store.NewUnitOfWork()
	second := store.NewUnitOfWork()
	require.NoError(t, first.Begin(ctx))
	require.NoError(t, second.Begin(ctx))

	a, err := first.LegacyRecordRepository().Get(ctx, seeded.OrderID())
	require.NoError(t, err)
	b, err := second.LegacyRecordRepository().Get(ctx, seeded.OrderID())
	require.NoError(t, err)

	require.NoError(t, a.AdvanceVendor(legacy.VendorUpdate{
		Status: tracking.FabricDispatched, CourierName: "BlueDart", TrackingNumber: "BD1",
	}, now))
	require.NoError(t, b.AdvanceTailor(legacy.TailorUpdate{
		Status: tracking.GarmentReadyForDelivery, DeliveryMethod: "pickup",
	}, now))

	require.NoError(t, first.LegacyRecordRepository().Update(ctx, a))
	require.NoError(t, first.Commit(ctx))
	require.NoError(t, second.LegacyRecordRepository().Update(ctx, b))
	require.ErrorIs(t, second.Commit(ctx), errs.ErrConflict)

	stored, err := store.Get(ctx, seeded.OrderID())
	require.NoError(t, err)
	assert.Equal(t, tracking.FabricDispatched, stored.Vendor().Status)
	assert.Equal(t, tracking.GarmentPending, stored.Tailor().Status)
	assert.Len(t, stored.History(), 1)
	assert.Equal(t, 1, stored.LoadedHistoryLen())
}

func TestLegacyStore_NotFoundAndDuplicate(t *testing.T) {
	ctx := t.Context()
	store := memory.NewLegacyStore()
	seeded := seedLegacy(t, store)

	_, err := store.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	uow := store.NewUnitOfWork()
	require.NoError(t, uow.Begin(ctx))
	require.ErrorIs(t, uow.LegacyRecordRepository().Add(ctx, seeded), errs.ErrConflict)
}
