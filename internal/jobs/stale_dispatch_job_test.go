package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tracking/internal/adapters/out/memory"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/tracking"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jobNow = time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)

type recordingReporter struct {
	mu     sync.Mutex
	counts map[tracking.LegKind]int
}

func (r *recordingReporter) SetStaleDispatches(kind tracking.LegKind, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[tracking.LegKind]int)
	}
	r.counts[kind] = count
}

// failingReader answers every read with an unavailable store.
type failingReader struct{}

var errStoreDown = errs.NewUnavailableError("leg store", errors.New("connection refused"))

func (failingReader) Get(context.Context, kernel.UUID) (*leg.Leg, error) {
	return nil, errStoreDown
}

func (failingReader) ListByOrder(context.Context, kernel.UUID) ([]*leg.Leg, error) {
	return nil, errStoreDown
}

func (failingReader) ListByOrders(context.Context, []kernel.UUID, leg.Type) ([]*leg.Leg, error) {
	return nil, errStoreDown
}

func (failingReader) ListDispatchedBefore(context.Context, time.Time) ([]*leg.Leg, error) {
	return nil, errStoreDown
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dispatchedLeg(t *testing.T, store *memory.LegStore, legType leg.Type, at time.Time) {
	t.Helper()
	ctx := t.Context()
	l, err := leg.NewLeg(kernel.NewUUID(), kernel.NewUUID(), legType, at.Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, l.Dispatch("BlueDart", "BD-"+l.ID().String()[:8], at))

	uow := store.NewUnitOfWork()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.LegRepository().Add(ctx, l))
	require.NoError(t, uow.Commit(ctx))
}

func newTestJob(reader *memory.LegStore, reporter StaleDispatchReporter) *StaleDispatchJob {
	job := NewStaleDispatchJob(
		queries.NewGetStaleDispatchesQueryHandler(reader),
		reporter,
		48*time.Hour,
		"*/15 * * * *",
		discardLogger(),
	)
	job.now = func() time.Time { return jobNow }
	return job
}

func TestStaleDispatchJob_Run(t *testing.T) {
	store := memory.NewLegStore()
	dispatchedLeg(t, store, leg.Fabric, jobNow.Add(-72*time.Hour))
	dispatchedLeg(t, store, leg.Fabric, jobNow.Add(-50*time.Hour))
	dispatchedLeg(t, store, leg.Fabric, jobNow.Add(-time.Hour))

	reporter := &recordingReporter{}
	newTestJob(store, reporter).Run(t.Context())

	assert.Equal(t, map[tracking.LegKind]int{
		tracking.LegKindFabric:  2,
		tracking.LegKindGarment: 0,
	}, reporter.counts)
}

func TestStaleDispatchJob_RunKeepsCountsOnFailure(t *testing.T) {
	reporter := &recordingReporter{counts: map[tracking.LegKind]int{tracking.LegKindGarment: 3}}
	job := NewStaleDispatchJob(
		queries.NewGetStaleDispatchesQueryHandler(failingReader{}),
		reporter,
		48*time.Hour,
		"*/15 * * * *",
		discardLogger(),
	)

	job.Run(t.Context())

	assert.Equal(t, map[tracking.LegKind]int{tracking.LegKindGarment: 3}, reporter.counts)
}

func TestStaleDispatchJob_RunWithoutReporter(t *testing.T) {
	store := memory.NewLegStore()
	dispatchedLeg(t, store, leg.Garment, jobNow.Add(-72*time.Hour))

	assert.NotPanics(t, func() { newTestJob(store, nil).Run(t.Context()) })
}

func TestStaleDispatchJob_StartRejectsInvalidSchedule(t *testing.T) {
	job := NewStaleDispatchJob(
		queries.NewGetStaleDispatchesQueryHandler(memory.NewLegStore()),
		nil,
		time.Hour,
		"not a schedule",
		discardLogger(),
	)

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	manager := NewJobManager(
		queries.NewGetStaleDispatchesQueryHandler(memory.NewLegStore()),
		&recordingReporter{},
		StaleDispatchSettings{Threshold: time.Hour, Schedule: "@every 1h"},
		discardLogger(),
	)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
