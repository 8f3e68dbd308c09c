package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteLegCommandHandler_Handle_Twice(t *testing.T) {
	ctx := t.Context()
	l := newCreatedLeg(t, kernel.NewUUID(), leg.Garment)
	require.NoError(t, l.Dispatch("BlueDart", "BD123", testNow))
	cmd, err := commands.NewCompleteLegCommand(l.ID(), nil)
	require.NoError(t, err)

	repo := new(MockLegRepository)
	uow := new(MockLegUoW)
	factory := new(MockLegUoWFactory)
	factory.On("Create").Return(uow).Twice()
	uow.On("LegRepository").Return(repo)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	repo.On("Get", ctx, l.ID()).Return(l, nil).Twice()
	repo.On("Update", ctx, l).Return(nil).Once()

	handler := commands.NewCompleteLegCommandHandler(factory, nil, commands.CommitHooks{})

	first, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, first.DeliveredAt())
	deliveredAt := *first.DeliveredAt()

	_, err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, deliveredAt, *l.DeliveredAt())
	repo.AssertNumberOfCalls(t, "Update", 1)
	uow.AssertNumberOfCalls(t, "Commit", 1)
}

func TestCompleteLegCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	legID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteLegCommand(legID, nil)

	repo := new(MockLegRepository)
	factory, uow := legUoWSetup(repo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, legID).Return(nil, errs.NewObjectNotFoundError("legId", legID)).Once()

	handler := commands.NewCompleteLegCommandHandler(factory, nil, commands.CommitHooks{})
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMarkLegReadyCommandHandler_Handle(t *testing.T) {
	t.Run("should mark garment leg ready for its tailor", func(t *testing.T) {
		ctx := t.Context()
		o := newCompleteOrder(t, "seller-1", "tailor-1")
		l := newCreatedLeg(t, o.ID(), leg.Garment)
		tailor := kernel.MustNewActorID("tailor-1")
		cmd, err := commands.NewMarkLegReadyCommand(l.ID(), "courier", &tailor)
		require.NoError(t, err)

		repo := new(MockLegRepository)
		factory, uow := legUoWSetup(repo)
		orders := new(MockOrderDirectory)
		recorder := new(MockTransitionRecorder)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, l.ID()).Return(l, nil).Once()
		repo.On("Update", ctx, l).Return(nil).Once()
		orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		recorder.On("RecordTransition", mock.Anything, "ready_for_delivery").Once()

		handler := commands.NewMarkLegReadyCommandHandler(factory, orders, commands.NewCommitHooks(nil, recorder, nil))
		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.IsReady())
		assert.Equal(t, leg.Created, result.Status())
		recorder.AssertExpectations(t)
	})

	t.Run("fabric leg cannot be marked ready", func(t *testing.T) {
		ctx := t.Context()
		l := newCreatedLeg(t, kernel.NewUUID(), leg.Fabric)
		cmd, _ := commands.NewMarkLegReadyCommand(l.ID(), "courier", nil)

		repo := new(MockLegRepository)
		factory, uow := legUoWSetup(repo)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, l.ID()).Return(l, nil).Once()

		handler := commands.NewMarkLegReadyCommandHandler(factory, nil, commands.CommitHooks{})
		_, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
