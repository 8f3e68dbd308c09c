package queries_test

import (
	"errors"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStaleDispatchesQuery(t *testing.T) {
	query, err := queries.NewGetStaleDispatchesQuery(testNow, 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(-48*time.Hour), query.Cutoff())

	_, err = queries.NewGetStaleDispatchesQuery(testNow, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetStaleDispatchesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	query, err := queries.NewGetStaleDispatchesQuery(testNow, time.Hour)
	require.NoError(t, err)

	t.Run("returns dispatched legs", func(t *testing.T) {
		stale := newLeg(t, kernel.NewUUID(), leg.Garment)
		require.NoError(t, stale.Dispatch("DHL", "D-1", testNow.Add(-2*time.Hour)))

		legs := new(MockLegReader)
		legs.On("ListDispatchedBefore", ctx, query.Cutoff()).Return([]*leg.Leg{stale}, nil).Once()

		result, err := queries.NewGetStaleDispatchesQueryHandler(legs).Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, stale.ID(), result[0].ID)
		legs.AssertExpectations(t)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		legs := new(MockLegReader)
		storeErr := errs.NewUnavailableError("leg store", errors.New("timeout"))
		legs.On("ListDispatchedBefore", ctx, query.Cutoff()).Return(nil, storeErr).Once()

		_, err := queries.NewGetStaleDispatchesQueryHandler(legs).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrUnavailable)
	})

	t.Run("rejects unconstructed query", func(t *testing.T) {
		_, err := queries.NewGetStaleDispatchesQueryHandler(new(MockLegReader)).Handle(ctx, queries.GetStaleDispatchesQuery{})
		require.ErrorIs(t, err, queries.ErrGetStaleDispatchesQueryIsNotConstructed)
	})
}
